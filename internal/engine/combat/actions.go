package combat

import (
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// FleeChance is the probability that a flee attempt succeeds
const FleeChance = 0.5

// Defend raises the player's defense until their next turn starts and ends the turn
func (c *Context) Defend() entities.ActionResult {
	if !c.IsPlayerTurn() {
		return entities.Failure("It is not your turn.")
	}

	player := c.encounter.Player
	c.ApplyStatusEffect(player.ID, entities.ActiveStatusEffect{
		Name:     entities.StatusDefending,
		Duration: 1,
	}, player.ID)
	c.AddLog(entities.ActorPlayer, entities.LogStatus, "You brace yourself for the next attack.")
	c.EndPlayerTurn()

	return entities.Succeeded("You take a defensive stance.")
}

// AttemptFlee tries to leave the encounter. A failed attempt still ends the turn.
func (c *Context) AttemptFlee() entities.ActionResult {
	if !c.IsPlayerTurn() {
		return entities.Failure("It is not your turn.")
	}

	if c.random.Chance(FleeChance) {
		c.Flee()
		c.AddLog(entities.ActorPlayer, entities.LogInfo, "You escaped from combat!")
		slog.Info("Player fled",
			"encounter_id", c.encounter.ID,
			"turn", c.encounter.Turn)
		return entities.Succeeded("You escaped!")
	}

	c.AddLog(entities.ActorPlayer, entities.LogInfo, "You failed to escape!")
	c.EndPlayerTurn()
	return entities.ActionResult{Success: true, Message: "You failed to escape!", Type: entities.LogInfo}
}
