package combat

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/engine/tags"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// SpellHit is the outcome of a spell against one enemy
type SpellHit struct {
	Applied bool
	Damage  int
	Hit     HitResult
	Healed  int
}

// ScaledTarget is an enemy struck by a cast together with its power multiplier
type ScaledTarget struct {
	Enemy *entities.Enemy
	Power float64
}

// scalingFor returns the attacker power and scaling stat value for a spell
func scalingFor(spell *entities.Spell, eff stats.EffectiveStats) (int, int) {
	switch spell.ScalesWith {
	case entities.ScalesWithBody:
		return eff.PhysicalPower, eff.Body
	case entities.ScalesWithMind:
		return eff.MagicPower, eff.Mind
	default:
		return eff.MagicPower, 0
	}
}

// IsSelfTargeted reports whether a spell acts on its caster rather than on enemies
func IsSelfTargeted(spell *entities.Spell, effective []entities.TagName) bool {
	if entities.HasTag(effective, entities.TagSelfTarget) || spell.DamageType == entities.DamageHealingSource {
		return true
	}
	return spell.Damage <= 0 && (entities.HasTag(effective, entities.TagHealing) || entities.HasTag(effective, entities.TagShield))
}

// ApplySpellToEnemy resolves one spell hit against enemy at the given power multiplier.
// Defeat handling is left to the caller.
func (c *Context) ApplySpellToEnemy(spell *entities.Spell, effective []entities.TagName, enemy *entities.Enemy, power float64, state *CastState) SpellHit {
	if spell.Damage <= 0 {
		if entities.HasTag(effective, entities.TagHealing) || entities.HasTag(effective, entities.TagShield) {
			return SpellHit{Applied: true}
		}
		return SpellHit{}
	}
	if !enemy.IsAlive() {
		return SpellHit{}
	}

	player := c.encounter.Player
	eff := stats.CalculateEffectiveStats(player)
	attackerPower, scalingStat := scalingFor(spell, eff)

	ignoresArmor := entities.HasTag(effective, entities.TagArmorIgnoring) || entities.HasTag(effective, entities.TagTrueDamage)
	defense := 0
	if !ignoresArmor {
		defense = stats.EnemyDefense(enemy)
	}

	damage := CalculateDamage(spell.Damage, attackerPower, defense, EffectivenessNormal, spell.ScalingFactor, scalingStat)
	damage = ApplyTagDamageModifiers(c.random, damage, effective, enemy, state)
	damage = int(math.Floor(float64(damage) * GetElementalEffectiveness(effective, enemy)))

	switch {
	case ignoresArmor:
	case entities.HasTag(effective, entities.TagPiercing):
		damage -= enemy.Mind / PiercingMindDivisor
	default:
		damage = int(math.Floor(float64(damage) * EffectivenessAgainst(spell.DamageType, enemy).Multiplier()))
	}

	damage = max(int(math.Floor(float64(damage)*power)), 0)

	hit := c.ApplyDamageAndReflection(PlayerCombatant(), EnemyCombatant(enemy), damage)
	c.AddLog(entities.ActorPlayer, entities.LogDamage, "%s hits %s for %d damage.", spell.Name, enemy.Name, hit.Dealt)
	slog.Debug("spell hit",
		"encounter_id", c.encounter.ID,
		"spell_id", spell.ID,
		"enemy_id", enemy.ID,
		"damage", damage,
		"dealt", hit.Dealt,
		"power", power)

	result := SpellHit{Applied: true, Damage: damage, Hit: hit}

	share := 0.0
	switch {
	case entities.HasTag(effective, entities.TagVampiric):
		share = VampiricShare
	case entities.HasTag(effective, entities.TagLifesteal):
		share = LifestealShare
	}
	if share > 0 && player.HP > 0 {
		result.Healed = c.HealPlayer(int(math.Floor(float64(hit.Dealt) * share)))
		if result.Healed > 0 {
			c.AddLog(entities.ActorPlayer, entities.LogHeal, "You drain %d HP.", result.Healed)
		}
	}

	if inflict := spell.StatusEffectInflict; inflict != nil && enemy.IsAlive() {
		c.Inflict(enemy.ID, enemy.Name, inflict, player.ID)
	}

	return result
}

// Inflict rolls an action's status effect against its chance and applies it to targetID
func (c *Context) Inflict(targetID, targetName string, inflict *entities.StatusEffectInflict, sourceID string) bool {
	chance := inflict.Chance
	if chance <= 0 {
		chance = 1
	}
	if !c.random.Chance(chance) {
		return false
	}
	applied := c.ApplyStatusEffect(targetID, entities.ActiveStatusEffect{
		Name:      inflict.Name,
		Duration:  inflict.Duration,
		Magnitude: inflict.Magnitude,
	}, sourceID)
	if applied {
		c.AddLog(entities.ActorSystem, entities.LogStatus, "%s is afflicted with %s.", targetName, inflict.Name)
	}
	return applied
}

// ResolveTargets picks the enemies a cast strikes, in the order they are hit
func (c *Context) ResolveTargets(effective []entities.TagName, clicked *entities.Enemy) []ScaledTarget {
	living := c.encounter.LivingEnemies()
	if len(living) == 0 {
		return nil
	}

	switch {
	case entities.HasTag(effective, entities.TagAreaOfEffect), entities.HasTag(effective, entities.TagGlobalTarget):
		out := make([]ScaledTarget, 0, len(living))
		for _, enemy := range living {
			out = append(out, ScaledTarget{Enemy: enemy, Power: 1})
		}
		return out

	case entities.HasTag(effective, entities.TagRandomTarget):
		count := 1
		if entities.HasTag(effective, entities.TagChain) {
			count = ChainTargets
		}
		pool := append([]*entities.Enemy(nil), living...)
		out := make([]ScaledTarget, 0, count)
		for len(out) < count && len(pool) > 0 {
			i := c.random.Intn(len(pool))
			out = append(out, ScaledTarget{Enemy: pool[i], Power: 1})
			pool = append(pool[:i], pool[i+1:]...)
		}
		return out

	case entities.HasTag(effective, entities.TagMultiTarget):
		n := min(MultiTargetMax, len(living))
		out := make([]ScaledTarget, 0, n)
		for i, enemy := range living[:n] {
			out = append(out, ScaledTarget{Enemy: enemy, Power: MultiTargetPower(i)})
		}
		return out

	default:
		if clicked == nil || !clicked.IsAlive() {
			return nil
		}
		return []ScaledTarget{{Enemy: clicked, Power: 1}}
	}
}

// needsClickedTarget reports whether the targeting mode requires a chosen enemy
func needsClickedTarget(effective []entities.TagName) bool {
	return !entities.HasTag(effective, entities.TagMultiTarget) &&
		!entities.HasTag(effective, entities.TagAreaOfEffect) &&
		!entities.HasTag(effective, entities.TagGlobalTarget) &&
		!entities.HasTag(effective, entities.TagRandomTarget)
}

// castCost is what a cast will take from the player
type castCost struct {
	mana      int
	health    int
	freeCast  bool
	bloodCast bool
}

// resolveCost applies the cost tags and checks affordability without mutating state
func (c *Context) resolveCost(spell *entities.Spell, effective []entities.TagName) (castCost, string) {
	player := c.encounter.Player
	cost := castCost{mana: max(spell.ManaCost, 0)}

	if entities.HasTag(effective, entities.TagReducedCost) {
		cost.mana = int(math.Floor(float64(cost.mana) * ReducedCostMult))
	}
	if entities.HasTag(effective, entities.TagFreeCast) && cost.mana > 0 && c.random.Chance(FreeCastChance) {
		cost.mana = 0
		cost.freeCast = true
	}

	if player.MP >= cost.mana {
		return cost, ""
	}

	if entities.HasTag(effective, entities.TagBloodMagic) {
		hpCost := cost.mana / 2
		if player.HP <= hpCost {
			return castCost{}, "Not enough health to fuel blood magic!"
		}
		return castCost{health: hpCost, bloodCast: true}, ""
	}

	return castCost{}, "Not enough mana!"
}

// blockingStatus returns the status that prevents casting, if any
func blockingStatus(active []entities.ActiveStatusEffect) (entities.StatusEffectName, bool) {
	for _, name := range []entities.StatusEffectName{entities.StatusSilenced, entities.StatusStun, entities.StatusSleep} {
		if entities.HasStatus(active, name) {
			return name, true
		}
	}
	return "", false
}

// ExecutePlayerAttack validates and casts a spell. Validation failures return before any
// state changes. A completed cast ends the player's turn unless combat is over.
func (c *Context) ExecutePlayerAttack(spellID, targetID string) entities.ActionResult {
	if !c.IsPlayerTurn() {
		return entities.Failure("It is not your turn.")
	}

	player := c.encounter.Player
	spell, ok := player.FindSpell(spellID)
	if !ok {
		return entities.Failure("Spell not found.")
	}
	if len(player.PreparedSpellIDs) > 0 && !containsID(player.PreparedSpellIDs, spellID) {
		return entities.Failure("That spell is not prepared.")
	}
	if status, blocked := blockingStatus(player.ActiveStatusEffects); blocked {
		return entities.Failure("You cannot cast while affected by " + string(status) + ".")
	}

	effective := tags.GetEffectiveTags(spell.Tags)
	self := IsSelfTargeted(spell, effective)

	var clicked *entities.Enemy
	if targetID != "" {
		if enemy, found := c.encounter.FindEnemy(targetID); found && enemy.IsAlive() {
			clicked = enemy
		}
	}
	if !self {
		if len(c.encounter.LivingEnemies()) == 0 {
			return entities.Failure("No valid target.")
		}
		if needsClickedTarget(effective) && clicked == nil {
			return entities.Failure("No valid target.")
		}
	}

	cost, reason := c.resolveCost(spell, effective)
	if reason != "" {
		return entities.Failure(reason)
	}

	// Commit.
	player.MP -= cost.mana
	if cost.health > 0 {
		player.HP = max(player.HP-cost.health, 1)
	}
	switch {
	case cost.freeCast:
		c.AddLog(entities.ActorPlayer, entities.LogInfo, "You cast %s for free!", spell.Name)
	case cost.bloodCast:
		c.AddLog(entities.ActorPlayer, entities.LogInfo, "You cast %s, paying %d HP in blood.", spell.Name, cost.health)
	default:
		c.AddLog(entities.ActorPlayer, entities.LogInfo, "You cast %s.", spell.Name)
	}

	slog.Info("Spell cast",
		"encounter_id", c.encounter.ID,
		"spell_id", spell.ID,
		"target_id", targetID,
		"mana_cost", cost.mana,
		"hp_cost", cost.health,
		"effective_tags", effective)

	if self {
		c.applySelfSpell(spell, effective)
	} else {
		state := &CastState{}
		targets := c.ResolveTargets(effective, clicked)
		for _, target := range targets {
			c.ApplySpellToEnemy(spell, effective, target.Enemy, target.Power, state)
			if c.encounter.Phase.IsTerminal() {
				break
			}
		}
		for _, target := range targets {
			if target.Enemy.HP <= 0 {
				c.HandleEnemyDefeat(target.Enemy)
			}
		}
	}

	if c.IsPlayerTurn() {
		c.EndPlayerTurn()
	}

	return entities.Succeeded("Cast " + spell.Name + ".")
}

// applySelfSpell heals, shields or buffs the caster
func (c *Context) applySelfSpell(spell *entities.Spell, effective []entities.TagName) {
	player := c.encounter.Player
	eff := stats.CalculateEffectiveStats(player)
	_, scalingStat := scalingFor(spell, eff)
	amount := max(spell.Damage, 0) + int(math.Floor(float64(scalingStat)*spell.ScalingFactor))

	if entities.HasTag(effective, entities.TagShield) {
		if amount > 0 && c.ApplyStatusEffect(player.ID, entities.ActiveStatusEffect{
			Name:      entities.StatusShield,
			Duration:  ShieldDuration,
			Magnitude: amount,
		}, player.ID) {
			c.AddLog(entities.ActorPlayer, entities.LogStatus, "A shield absorbing %d damage surrounds you.", amount)
		}
	} else if amount > 0 {
		healed := c.HealPlayer(amount)
		c.AddLog(entities.ActorPlayer, entities.LogHeal, "%s restores %d HP.", spell.Name, healed)
	}

	if inflict := spell.StatusEffectInflict; inflict != nil {
		c.Inflict(player.ID, player.Name, inflict, player.ID)
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
