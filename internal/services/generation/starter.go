package generation

import (
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Starter kit IDs
const (
	StarterSpellSpark  = "starter-spark"
	StarterSpellMend   = "starter-mend"
	StarterAbilityBash = "starter-bash"
	StarterItemTonic   = "starter-tonic"
)

const starterAttribute = 2

// StarterPlayer creates a fresh level 1 player with a small kit and full resources
func StarterPlayer(id, name string) *entities.Player {
	p := &entities.Player{
		ID:     id,
		Name:   name,
		Level:  1,
		Body:   starterAttribute,
		Mind:   starterAttribute,
		Reflex: starterAttribute,
		Spells: []entities.Spell{
			{
				ID: StarterSpellSpark, Name: "Spark", IconName: "bolt", ManaCost: 4, Damage: 10,
				DamageType: entities.DamageArcane, ScalesWith: entities.ScalesWithMind, ScalingFactor: 1,
				Tags: []entities.TagName{entities.TagArcane, entities.TagSingleTarget},
			},
			{
				ID: StarterSpellMend, Name: "Mend", IconName: "heart", ManaCost: 6, Damage: 12,
				DamageType: entities.DamageHealing,
				Tags:       []entities.TagName{entities.TagHealing, entities.TagSelfTarget},
			},
		},
		PreparedSpellIDs: []string{StarterSpellSpark, StarterSpellMend},
		Abilities: []entities.Ability{
			{
				ID: StarterAbilityBash, Name: "Shield Bash", EPCost: 6,
				Effect: entities.Effect{Type: entities.EffectEnemyDamage, Amount: 8},
			},
		},
		Inventory: entities.Inventory{
			Stacks: map[string]int{StarterItemTonic: 3},
			Catalog: map[string]entities.Consumable{
				StarterItemTonic: {
					ID: StarterItemTonic, Name: "Minor Tonic", IconName: "potion", Stackable: true,
					Effect: entities.Effect{Type: entities.EffectHPRestore, Amount: 20},
				},
			},
		},
		Resources: map[string]int{},
	}

	eff := stats.CalculateEffectiveStats(p)
	p.HP, p.MP, p.EP = eff.MaxHP, eff.MaxMP, eff.MaxEP
	return p
}
