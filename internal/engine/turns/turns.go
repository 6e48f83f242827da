// Package turns drives turn-start status ticking, enemy actions and turn advancement.
package turns

import (
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/engine/combat"
	"github.com/KirkDiggler/spellforge/internal/engine/effects"
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Enemy action constants
const (
	SpecialAbilityChance = 0.5

	specialBaseDamage     = 10
	specialDamagePerLevel = 2
	specialMindBonus      = 5
	basicBaseDamage       = 5

	// maxPhaseSteps bounds RunEnemyPhase when the player keeps losing turns
	maxPhaseSteps = 1000
)

// TurnStartResult is the outcome of ticking the player's effects
type TurnStartResult struct {
	Damage   int
	Healing  int
	SkipTurn bool
	Defeated bool
}

// ProcessPlayerTurnStartEffects ticks the player's status effects once. A lethal tick
// moves the encounter to defeat before the player can act; a control effect ends the
// player's turn.
func ProcessPlayerTurnStartEffects(c *combat.Context) TurnStartResult {
	if !c.IsPlayerTurn() {
		return TurnStartResult{}
	}

	player := c.Player()
	maxHP := stats.CalculateEffectiveStats(player).MaxHP
	tick := effects.Tick(player.ActiveStatusEffects, player.HP, maxHP)

	c.SetPlayer(func(p *entities.Player) {
		p.HP = max(tick.HP, 0)
		p.ActiveStatusEffects = tick.Remaining
	})
	logTick(c, entities.ActorPlayer, "You", tick)

	result := TurnStartResult{Damage: tick.Damage, Healing: tick.Healing, SkipTurn: tick.SkipTurn}
	if tick.HP <= 0 {
		result.Defeated = c.CheckPlayerDefeat()
		return result
	}

	if tick.SkipTurn {
		c.AddLog(entities.ActorPlayer, entities.LogStatus, "You are unable to act this turn.")
		c.EndPlayerTurn()
	}
	return result
}

// EnemyTurnResult is the outcome of one enemy turn step
type EnemyTurnResult struct {
	EnemyID     string
	Acted       bool
	Skipped     bool
	DiedToTick  bool
	UsedSpecial bool
	Hit         combat.HitResult
	// PhaseEnded reports control went back to the player
	PhaseEnded bool
}

// ProcessEnemyTurn resolves the acting enemy's turn. It is a no-op outside the enemy
// phase. Defeated enemies are skipped; after the last living enemy the turn counter
// advances and control returns to the player.
func ProcessEnemyTurn(c *combat.Context) EnemyTurnResult {
	if c.Phase() != entities.PhaseEnemyTurn {
		return EnemyTurnResult{}
	}

	enemy, ok := c.ActingEnemy()
	if !ok {
		return EnemyTurnResult{PhaseEnded: c.EndEnemyPhase()}
	}

	result := EnemyTurnResult{EnemyID: enemy.ID}

	tick := effects.Tick(enemy.ActiveStatusEffects, enemy.HP, enemy.MaxHP)
	c.UpdateEnemy(enemy.ID, func(e *entities.Enemy) {
		e.HP = max(tick.HP, 0)
		e.ActiveStatusEffects = tick.Remaining
	})
	logTick(c, entities.ActorEnemy, enemy.Name, tick)

	switch {
	case enemy.HP <= 0:
		result.DiedToTick = true
		c.HandleEnemyDefeat(enemy)
	case tick.SkipTurn:
		result.Skipped = true
		c.AddLog(entities.ActorEnemy, entities.LogStatus, "%s is unable to act.", enemy.Name)
	default:
		result.Acted = true
		result.UsedSpecial, result.Hit = enemyAttack(c, enemy)
	}

	if c.Phase() != entities.PhaseEnemyTurn {
		return result
	}
	result.PhaseEnded = advance(c)
	return result
}

func enemyAttack(c *combat.Context, enemy *entities.Enemy) (bool, combat.HitResult) {
	player := c.Player()
	defense := stats.CalculateEffectiveStats(player).Defense

	special := enemy.SpecialAbility
	if special != nil && !entities.HasStatus(enemy.ActiveStatusEffects, entities.StatusSilenced) &&
		c.Random().Chance(SpecialAbilityChance) {
		damage := combat.CalculateDamage(
			specialBaseDamage+enemy.Level*specialDamagePerLevel,
			enemy.Mind+specialMindBonus,
			defense, combat.EffectivenessNormal, 0, 0)
		hit := c.ApplyDamageAndReflection(combat.EnemyCombatant(enemy), combat.PlayerCombatant(), damage)
		c.AddLog(entities.ActorEnemy, entities.LogDamage, "%s uses %s for %d damage!", enemy.Name, special.Name, hit.Dealt)

		if special.StatusEffectInflict != nil && player.HP > 0 {
			c.Inflict(player.ID, player.Name, special.StatusEffectInflict, enemy.ID)
		}
		slog.Debug("enemy special",
			"enemy_id", enemy.ID,
			"ability", special.Name,
			"damage", hit.Dealt)
		return true, hit
	}

	damage := combat.CalculateDamage(basicBaseDamage+enemy.Level, enemy.Body, defense, combat.EffectivenessNormal, 0, 0)
	hit := c.ApplyDamageAndReflection(combat.EnemyCombatant(enemy), combat.PlayerCombatant(), damage)
	c.AddLog(entities.ActorEnemy, entities.LogDamage, "%s attacks you for %d damage.", enemy.Name, hit.Dealt)
	return false, hit
}

// advance moves to the next living enemy, or hands control back to the player
func advance(c *combat.Context) bool {
	c.Encounter().ActingEnemyIndex++
	if c.SkipToLivingEnemy() {
		return false
	}
	return c.EndEnemyPhase()
}

// PhaseResult summarises a full enemy phase
type PhaseResult struct {
	Turns      []EnemyTurnResult
	TurnStarts []TurnStartResult
	Phase      entities.Phase
}

// RunEnemyPhase resolves enemy turns until control rests with the player or combat ends.
// Each time control returns, the player's turn-start effects are processed; a player
// who must skip hands control straight back to the enemies.
func RunEnemyPhase(c *combat.Context) PhaseResult {
	var out PhaseResult
	for step := 0; step < maxPhaseSteps && c.Phase() == entities.PhaseEnemyTurn; step++ {
		turn := ProcessEnemyTurn(c)
		out.Turns = append(out.Turns, turn)
		if turn.PhaseEnded && c.IsPlayerTurn() {
			out.TurnStarts = append(out.TurnStarts, ProcessPlayerTurnStartEffects(c))
		}
	}
	if c.Phase() == entities.PhaseEnemyTurn {
		slog.Warn("enemy phase did not settle", "encounter_id", c.Encounter().ID)
	}
	out.Phase = c.Phase()
	return out
}

func logTick(c *combat.Context, actor entities.Actor, who string, tick effects.TickResult) {
	you := actor == entities.ActorPlayer
	for _, event := range tick.Events {
		def, _ := effects.Lookup(event.Name)
		switch event.Kind {
		case effects.KindDamageOverTime:
			if you {
				c.AddLog(actor, entities.LogDamage, "You take %d damage from %s.", event.Amount, def.Verb)
			} else {
				c.AddLog(actor, entities.LogDamage, "%s takes %d damage from %s.", who, event.Amount, def.Verb)
			}
		case effects.KindHealOverTime:
			if event.Amount == 0 {
				break
			}
			if you {
				c.AddLog(actor, entities.LogHeal, "You recover %d HP from %s.", event.Amount, def.Verb)
			} else {
				c.AddLog(actor, entities.LogHeal, "%s recovers %d HP from %s.", who, event.Amount, def.Verb)
			}
		case effects.KindControl:
			if you {
				c.AddLog(actor, entities.LogStatus, "You are %s.", def.Verb)
			} else {
				c.AddLog(actor, entities.LogStatus, "%s is %s.", who, def.Verb)
			}
		}
		if event.Expired {
			c.AddLog(actor, entities.LogInfo, "%s wears off.", event.Name)
		}
	}
}
