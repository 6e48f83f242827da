package actions

import (
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/engine/combat"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// FindConsumable looks an item up in the player's inventory. Stackable items are found
// by their stack, unique items by their list entry.
func FindConsumable(inv entities.Inventory, itemID string) (entities.Consumable, bool) {
	if qty := inv.Stacks[itemID]; qty > 0 {
		if item, ok := inv.Catalog[itemID]; ok {
			item.Stackable = true
			return item, true
		}
	}
	for _, item := range inv.Items {
		if item.ID == itemID {
			item.Stackable = false
			return item, true
		}
	}
	return entities.Consumable{}, false
}

// consume removes one use of item from the inventory
func consume(inv *entities.Inventory, item entities.Consumable) {
	if item.Stackable {
		inv.Stacks[item.ID]--
		if inv.Stacks[item.ID] <= 0 {
			delete(inv.Stacks, item.ID)
		}
		return
	}
	for i, held := range inv.Items {
		if held.ID == item.ID {
			inv.Items = append(inv.Items[:i:i], inv.Items[i+1:]...)
			return
		}
	}
}

// UseConsumable spends one item from the inventory to resolve its effect, then ends the
// player's turn. Every check runs before the first mutation.
func UseConsumable(c *combat.Context, itemID, targetID string) entities.ActionResult {
	if !c.IsPlayerTurn() {
		return entities.Failure("It is not your turn.")
	}

	player := c.Player()
	item, ok := FindConsumable(player.Inventory, itemID)
	if !ok {
		return entities.Failure("Item not found.")
	}
	if entities.HasStatus(player.ActiveStatusEffects, entities.StatusStun) ||
		entities.HasStatus(player.ActiveStatusEffects, entities.StatusSleep) {
		return entities.Failure("You cannot act right now.")
	}
	if reason := validateEffect(c, item.Effect, targetID); reason != "" {
		return entities.Failure(reason)
	}

	// Commit.
	c.SetPlayer(func(p *entities.Player) {
		consume(&p.Inventory, item)
	})
	msg := applyEffect(c, item.Effect, targetID, item.Name)

	slog.Info("Consumable used",
		"encounter_id", c.Encounter().ID,
		"item_id", item.ID,
		"effect", item.Effect.Type)

	if c.IsPlayerTurn() {
		c.EndPlayerTurn()
	}
	return entities.Succeeded(msg)
}
