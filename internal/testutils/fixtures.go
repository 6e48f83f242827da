package testutils

import (
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Fixture IDs shared across package tests
const (
	TestSpellBolt     = "spell-bolt"
	TestSpellMend     = "spell-mend"
	TestAbilityFocus  = "ability-focus"
	TestItemPotion    = "item-potion"
	TestResourceEmber = "ember"
)

// NewTestPlayer creates a level 1 player with balanced attributes, full resources and a
// small kit: a damage spell, a heal, one ability and a stack of potions.
//
// Caps at level 1 with 2/2/2: HP 70, MP 35, EP 29.
func NewTestPlayer(id string) *entities.Player {
	return &entities.Player{
		ID:     id,
		Name:   "Ayla",
		Level:  1,
		Body:   2,
		Mind:   2,
		Reflex: 2,
		HP:     70,
		MP:     35,
		EP:     29,
		Spells: []entities.Spell{
			{
				ID: TestSpellBolt, Name: "Arc Bolt", ManaCost: 5, Damage: 12,
				DamageType: entities.DamageLightning, ScalesWith: entities.ScalesWithMind, ScalingFactor: 1,
				Tags: []entities.TagName{entities.TagLightning},
			},
			{
				ID: TestSpellMend, Name: "Mend", ManaCost: 6, Damage: 10,
				DamageType: entities.DamageHealing,
				Tags:       []entities.TagName{entities.TagHealing, entities.TagSelfTarget},
			},
		},
		PreparedSpellIDs: []string{TestSpellBolt, TestSpellMend},
		Abilities: []entities.Ability{
			{
				ID: TestAbilityFocus, Name: "Focus", EPCost: 5,
				Effect: entities.Effect{Type: entities.EffectMPRestore, Amount: 10},
			},
		},
		Inventory: entities.Inventory{
			Stacks: map[string]int{TestItemPotion: 2},
			Catalog: map[string]entities.Consumable{
				TestItemPotion: {
					ID: TestItemPotion, Name: "Healing Draught", Stackable: true,
					Effect: entities.Effect{Type: entities.EffectHPRestore, Amount: 20},
				},
			},
		},
		Resources: map[string]int{TestResourceEmber: 3},
	}
}

// NewTestEnemy creates a plain level 1 enemy with 40 HP and no special ability
func NewTestEnemy(id string) *entities.Enemy {
	return &entities.Enemy{
		ID:     id,
		Name:   "Cave Rat",
		Level:  1,
		HP:     40,
		MaxHP:  40,
		Body:   2,
		Mind:   1,
		Reflex: 2,
	}
}

// NewTestEncounter wraps a player and enemies in an encounter at the start of turn 1
func NewTestEncounter(id string, player *entities.Player, enemies ...*entities.Enemy) *entities.Encounter {
	return &entities.Encounter{
		ID:       id,
		PlayerID: player.ID,
		Player:   player,
		Enemies:  enemies,
		Phase:    entities.PhasePlayerTurn,
		Turn:     1,
	}
}
