package combat

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Combatant identifies either side of a hit. A nil Enemy means the player.
type Combatant struct {
	Enemy *entities.Enemy
}

// PlayerCombatant is the player side of a hit
func PlayerCombatant() Combatant {
	return Combatant{}
}

// EnemyCombatant is an enemy side of a hit
func EnemyCombatant(enemy *entities.Enemy) Combatant {
	return Combatant{Enemy: enemy}
}

// IsPlayer reports whether the combatant is the player
func (cb Combatant) IsPlayer() bool {
	return cb.Enemy == nil
}

// HitResult is the outcome of one damage application
type HitResult struct {
	// Incoming is the damage after clamping to zero
	Incoming int
	// Absorbed is the part taken by a Shield
	Absorbed int
	// Dealt is the HP the defender actually lost
	Dealt int
	// Reflected is the HP the attacker lost to reflection
	Reflected int
	// DefenderDown reports the defender is at zero HP after the hit
	DefenderDown bool
}

// ApplyDamageAndReflection lands damage on defender and bounces the defender's
// reflection share back onto attacker. The reflected hit never reflects again. An enemy
// attacker killed by reflection is handled immediately; a player killed by either side
// moves the encounter to defeat immediately. A defending enemy's own defeat is left to
// the caller so a multi-target cast can settle all defeats after every target is hit.
func (c *Context) ApplyDamageAndReflection(attacker, defender Combatant, damage int) HitResult {
	result := HitResult{Incoming: max(damage, 0)}
	if result.Incoming == 0 {
		return result
	}

	result.Absorbed = c.absorbWithShield(defender, result.Incoming)
	remaining := result.Incoming - result.Absorbed

	var reflectPct float64
	if defender.IsPlayer() {
		player := c.encounter.Player
		before := player.HP
		player.HP = max(player.HP-remaining, 0)
		result.Dealt = before - player.HP
		result.DefenderDown = player.HP == 0
		reflectPct = stats.CalculateEffectiveStats(player).DamageReflectionPercent
	} else {
		enemy := defender.Enemy
		before := enemy.HP
		enemy.HP = max(enemy.HP-remaining, 0)
		result.Dealt = before - enemy.HP
		result.DefenderDown = enemy.HP == 0
		reflectPct = stats.EnemyReflectionPercent(enemy)
	}

	if reflectPct > 0 {
		result.Reflected = c.reflect(attacker, defender, int(math.Floor(float64(result.Incoming)*reflectPct)))
	}

	if defender.IsPlayer() {
		c.CheckPlayerDefeat()
	}
	return result
}

func (c *Context) reflect(attacker, defender Combatant, amount int) int {
	if amount <= 0 {
		return 0
	}

	if attacker.IsPlayer() {
		player := c.encounter.Player
		if player.HP <= 0 {
			return 0
		}
		before := player.HP
		player.HP = max(player.HP-amount, 0)
		dealt := before - player.HP
		c.AddLog(entities.ActorEnemy, entities.LogDamage, "%s reflects %d damage back at you!", defender.Enemy.Name, dealt)
		c.CheckPlayerDefeat()
		return dealt
	}

	enemy := attacker.Enemy
	if !enemy.IsAlive() {
		return 0
	}
	before := enemy.HP
	enemy.HP = max(enemy.HP-amount, 0)
	dealt := before - enemy.HP
	c.AddLog(entities.ActorPlayer, entities.LogDamage, "You reflect %d damage back at %s!", dealt, enemy.Name)
	slog.Debug("damage reflected",
		"encounter_id", c.encounter.ID,
		"enemy_id", enemy.ID,
		"amount", dealt)
	if enemy.HP == 0 {
		c.HandleEnemyDefeat(enemy)
	}
	return dealt
}

// absorbWithShield drains Shield magnitude, oldest instance first, and drops exhausted
// shields
func (c *Context) absorbWithShield(defender Combatant, damage int) int {
	var active *[]entities.ActiveStatusEffect
	if defender.IsPlayer() {
		active = &c.encounter.Player.ActiveStatusEffects
	} else {
		active = &defender.Enemy.ActiveStatusEffects
	}

	absorbed := 0
	kept := (*active)[:0]
	for _, effect := range *active {
		if effect.Name == entities.StatusShield && absorbed < damage && effect.Magnitude > 0 {
			take := min(effect.Magnitude, damage-absorbed)
			absorbed += take
			effect.Magnitude -= take
			if effect.Magnitude == 0 {
				continue
			}
		}
		kept = append(kept, effect)
	}
	*active = kept

	if absorbed > 0 {
		if defender.IsPlayer() {
			c.AddLog(entities.ActorPlayer, entities.LogStatus, "Your shield absorbs %d damage.", absorbed)
		} else {
			c.AddLog(entities.ActorEnemy, entities.LogStatus, "%s's shield absorbs %d damage.", defender.Enemy.Name, absorbed)
		}
	}
	return absorbed
}
