package player

import (
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Repair resets missing or out-of-range fields of a loaded save to safe values and
// returns the names of the fields it touched. A save is never rejected for bad values.
func Repair(p *entities.Player) []string {
	var repaired []string
	fix := func(field string) {
		repaired = append(repaired, field)
	}

	if p.Level < 1 {
		p.Level = 1
		fix("level")
	}
	for field, v := range map[string]*int{
		"xp": &p.XP, "gold": &p.Gold, "essence": &p.Essence,
		"statPoints": &p.StatPoints, "lootChests": &p.LootChests,
	} {
		if *v < 0 {
			*v = 0
			fix(field)
		}
	}
	for field, v := range map[string]*int{"body": &p.Body, "mind": &p.Mind, "reflex": &p.Reflex} {
		if *v < 1 {
			*v = 1
			fix(field)
		}
	}

	if p.Resources == nil {
		p.Resources = make(map[string]int)
	}
	for id, qty := range p.Resources {
		if id == "" || qty <= 0 {
			delete(p.Resources, id)
			fix("resources")
		}
	}

	if p.Inventory.Stacks == nil {
		p.Inventory.Stacks = make(map[string]int)
	}
	if p.Inventory.Catalog == nil {
		p.Inventory.Catalog = make(map[string]entities.Consumable)
	}
	for id, qty := range p.Inventory.Stacks {
		if _, known := p.Inventory.Catalog[id]; !known || qty <= 0 {
			delete(p.Inventory.Stacks, id)
			fix("inventory.stacks")
		}
	}

	kept := p.ActiveStatusEffects[:0]
	for _, active := range p.ActiveStatusEffects {
		if active.Duration <= 0 || active.Name == "" {
			fix("activeStatusEffects")
			continue
		}
		kept = append(kept, active)
	}
	p.ActiveStatusEffects = kept

	for i := range p.Spells {
		if p.Spells[i].ManaCost < 0 {
			p.Spells[i].ManaCost = 0
			fix("spells.manaCost")
		}
		if p.Spells[i].Damage < 0 {
			p.Spells[i].Damage = 0
			fix("spells.damage")
		}
	}
	for i := range p.Abilities {
		if p.Abilities[i].EPCost < 0 {
			p.Abilities[i].EPCost = 0
			fix("abilities.epCost")
		}
	}

	prepared := make([]string, 0, len(p.PreparedSpellIDs))
	limit := stats.CalculateMaxPreparedSpells(p.Level)
	for _, id := range p.PreparedSpellIDs {
		if _, ok := p.FindSpell(id); !ok || len(prepared) >= limit {
			fix("preparedSpellIds")
			continue
		}
		prepared = append(prepared, id)
	}
	p.PreparedSpellIDs = prepared

	eff := stats.CalculateEffectiveStats(p)
	if p.HP < 1 || p.HP > eff.MaxHP {
		p.HP = min(max(p.HP, 1), eff.MaxHP)
		fix("hp")
	}
	if p.MP < 0 || p.MP > eff.MaxMP {
		p.MP = min(max(p.MP, 0), eff.MaxMP)
		fix("mp")
	}
	if p.EP < 0 || p.EP > eff.MaxEP {
		p.EP = min(max(p.EP, 0), eff.MaxEP)
		fix("ep")
	}

	return dedupe(repaired)
}

func dedupe(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
