// Package actions resolves abilities and consumables through one shared effect switch.
package actions

import (
	"fmt"

	"github.com/KirkDiggler/spellforge/internal/engine/combat"
	"github.com/KirkDiggler/spellforge/internal/engine/effects"
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// DefaultEffectDuration is used by timed effects that do not name a duration
const DefaultEffectDuration = 3

var statBuffs = map[entities.Stat]entities.StatusEffectName{
	entities.StatBody:   entities.StatusBodyUp,
	entities.StatMind:   entities.StatusMindUp,
	entities.StatReflex: entities.StatusReflexUp,
}

// validateEffect checks everything an effect needs before any state changes
func validateEffect(c *combat.Context, effect entities.Effect, targetID string) string {
	switch effect.Type {
	case entities.EffectMPRestore, entities.EffectHPRestore, entities.EffectEPRestore, entities.EffectSelfHeal:
		return ""
	case entities.EffectTempStatBuff:
		if _, ok := statBuffs[effect.Stat]; !ok {
			return fmt.Sprintf("Unknown stat %q.", effect.Stat)
		}
		return ""
	case entities.EffectApplyBuff:
		if effect.Status == "" {
			return "This effect has no status to apply."
		}
		return ""
	case entities.EffectCureStatus:
		return ""
	case entities.EffectEnemyDebuff, entities.EffectEnemyDamage:
		if effect.Type == entities.EffectEnemyDebuff && effect.Status == "" {
			return "This effect has no status to apply."
		}
		enemy, ok := c.Encounter().FindEnemy(targetID)
		if !ok || !enemy.IsAlive() {
			return "No valid target."
		}
		return ""
	default:
		return fmt.Sprintf("Unknown effect type %q.", effect.Type)
	}
}

func durationOr(d int) int {
	if d <= 0 {
		return DefaultEffectDuration
	}
	return d
}

// applyEffect resolves an already validated effect, logs it and returns the message
func applyEffect(c *combat.Context, effect entities.Effect, targetID, source string) string {
	player := c.Player()
	var (
		msg      string
		logType  = entities.LogStatus
		defeated *entities.Enemy
	)

	switch effect.Type {
	case entities.EffectMPRestore:
		msg = fmt.Sprintf("%s restores %d MP.", source, c.RestoreMP(effect.Amount))
		logType = entities.LogHeal

	case entities.EffectEPRestore:
		msg = fmt.Sprintf("%s restores %d EP.", source, c.RestoreEP(effect.Amount))
		logType = entities.LogHeal

	case entities.EffectHPRestore, entities.EffectSelfHeal:
		msg = fmt.Sprintf("%s restores %d HP.", source, c.HealPlayer(effect.Amount))
		logType = entities.LogHeal

	case entities.EffectTempStatBuff:
		amount := max(effect.Amount, 0)
		c.ApplyStatusEffect(player.ID, entities.ActiveStatusEffect{
			Name:      statBuffs[effect.Stat],
			Duration:  durationOr(effect.Duration),
			Magnitude: amount,
		}, player.ID)
		msg = fmt.Sprintf("%s raises your %s by %d.", source, effect.Stat, amount)

	case entities.EffectApplyBuff:
		c.ApplyStatusEffect(player.ID, entities.ActiveStatusEffect{
			Name:      effect.Status,
			Duration:  durationOr(effect.Duration),
			Magnitude: effect.Magnitude,
		}, player.ID)
		msg = fmt.Sprintf("%s grants %s.", source, effect.Status)

	case entities.EffectCureStatus:
		msg = fmt.Sprintf("%s cures %d effect(s).", source, cure(player, effect.Cures))

	case entities.EffectEnemyDebuff:
		enemy, _ := c.Encounter().FindEnemy(targetID)
		c.ApplyStatusEffect(enemy.ID, entities.ActiveStatusEffect{
			Name:      effect.Status,
			Duration:  durationOr(effect.Duration),
			Magnitude: effect.Magnitude,
		}, player.ID)
		msg = fmt.Sprintf("%s afflicts %s with %s.", source, enemy.Name, effect.Status)

	case entities.EffectEnemyDamage:
		enemy, _ := c.Encounter().FindEnemy(targetID)
		eff := stats.CalculateEffectiveStats(player)
		damage := combat.CalculateDamage(max(effect.Amount, 0), eff.PhysicalPower, stats.EnemyDefense(enemy),
			combat.EffectivenessNormal, 0, 0)
		hit := c.ApplyDamageAndReflection(combat.PlayerCombatant(), combat.EnemyCombatant(enemy), damage)
		msg = fmt.Sprintf("%s hits %s for %d damage.", source, enemy.Name, hit.Dealt)
		logType = entities.LogDamage
		if hit.DefenderDown {
			defeated = enemy
		}
	}

	c.AddLog(entities.ActorPlayer, logType, "%s", msg)
	if defeated != nil {
		c.HandleEnemyDefeat(defeated)
	}
	return msg
}

// cure removes the named effects from the player, or every harmful effect when names is
// empty, and returns how many instances were removed
func cure(player *entities.Player, names []entities.StatusEffectName) int {
	want := make(map[entities.StatusEffectName]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	kept := make([]entities.ActiveStatusEffect, 0, len(player.ActiveStatusEffects))
	removed := 0
	for _, active := range player.ActiveStatusEffects {
		match := want[active.Name]
		if len(want) == 0 {
			match = effects.IsHarmful(active.Name)
		}
		if match {
			removed++
			continue
		}
		kept = append(kept, active)
	}
	player.ActiveStatusEffects = kept
	return removed
}
