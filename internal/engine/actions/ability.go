package actions

import (
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/engine/combat"
	"github.com/KirkDiggler/spellforge/internal/engine/resources"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// UseAbility spends EP (and any resource bill) to resolve an ability, then ends the
// player's turn. Every check runs before the first mutation.
func UseAbility(c *combat.Context, abilityID, targetID string) entities.ActionResult {
	if !c.IsPlayerTurn() {
		return entities.Failure("It is not your turn.")
	}

	player := c.Player()
	ability, ok := player.FindAbility(abilityID)
	if !ok {
		return entities.Failure("Ability not found.")
	}

	if entities.HasStatus(player.ActiveStatusEffects, entities.StatusStun) ||
		entities.HasStatus(player.ActiveStatusEffects, entities.StatusSleep) {
		return entities.Failure("You cannot act right now.")
	}
	if entities.HasTag(ability.Tags, entities.TagSilence) &&
		entities.HasStatus(player.ActiveStatusEffects, entities.StatusSilenced) {
		return entities.Failure("You are silenced and cannot use " + ability.Name + ".")
	}
	if player.EP < ability.EPCost {
		return entities.Failure("Not enough EP!")
	}

	var paid *entities.Player
	if len(ability.ResourceCosts) > 0 {
		deduct := resources.DeductResources(player, ability.ResourceCosts)
		if !deduct.Success {
			return entities.Failure(deduct.Message)
		}
		paid = deduct.UpdatedPlayer
	}
	if reason := validateEffect(c, ability.Effect, targetID); reason != "" {
		return entities.Failure(reason)
	}

	// Commit.
	c.SetPlayer(func(p *entities.Player) {
		p.EP -= max(ability.EPCost, 0)
		if paid != nil {
			p.Resources = paid.Resources
		}
	})
	c.AddLog(entities.ActorPlayer, entities.LogInfo, "You use %s.", ability.Name)
	msg := applyEffect(c, ability.Effect, targetID, ability.Name)

	slog.Info("Ability used",
		"encounter_id", c.Encounter().ID,
		"ability_id", ability.ID,
		"effect", ability.Effect.Type,
		"target_id", targetID)

	if c.IsPlayerTurn() {
		c.EndPlayerTurn()
	}
	return entities.Succeeded(msg)
}
