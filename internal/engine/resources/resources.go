// Package resources checks and deducts resource bills atomically.
package resources

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// CheckResult reports whether a bill is affordable
type CheckResult struct {
	Affordable bool
	// Missing maps each short resource to how many more are needed
	Missing map[string]int
	// Invalid is set when the bill itself is malformed
	Invalid string
}

// DeductResult is the outcome of DeductResources. UpdatedPlayer is nil on failure.
type DeductResult struct {
	Success       bool
	Message       string
	UpdatedPlayer *entities.Player
}

// totals merges duplicate lines so a bill listing one resource twice is checked as a whole
func totals(costs []entities.ResourceCost) (map[string]int, string) {
	out := make(map[string]int, len(costs))
	for _, cost := range costs {
		if cost.ResourceID == "" {
			return nil, "cost line without a resource"
		}
		if cost.Quantity < 0 {
			return nil, fmt.Sprintf("negative quantity for %s", cost.ResourceID)
		}
		out[cost.ResourceID] += cost.Quantity
	}
	return out, ""
}

// CheckResources reports whether player holds every line of costs
func CheckResources(player *entities.Player, costs []entities.ResourceCost) CheckResult {
	need, invalid := totals(costs)
	if invalid != "" {
		return CheckResult{Invalid: invalid}
	}

	missing := make(map[string]int)
	for id, qty := range need {
		var have int
		if player != nil {
			have = player.Resources[id]
		}
		if have < qty {
			missing[id] = qty - have
		}
	}
	if len(missing) > 0 {
		return CheckResult{Missing: missing}
	}
	return CheckResult{Affordable: true}
}

// DeductResources returns a copy of player with every line of costs removed, or nothing
// when any line is unaffordable. The input player is never modified.
func DeductResources(player *entities.Player, costs []entities.ResourceCost) DeductResult {
	if player == nil {
		return DeductResult{Message: "no player"}
	}

	check := CheckResources(player, costs)
	if !check.Affordable {
		if check.Invalid != "" {
			return DeductResult{Message: "Invalid cost: " + check.Invalid}
		}
		return DeductResult{Message: "Not enough resources: " + DescribeMissing(check.Missing)}
	}

	need, _ := totals(costs)
	updated := player.Clone()
	if updated.Resources == nil {
		updated.Resources = make(map[string]int)
	}
	for id, qty := range need {
		if qty == 0 {
			continue
		}
		updated.Resources[id] -= qty
		if updated.Resources[id] == 0 {
			delete(updated.Resources, id)
		}
	}
	return DeductResult{Success: true, Message: "Resources spent.", UpdatedPlayer: updated}
}

// AddResources merges drops into player's resources by ID
func AddResources(player *entities.Player, drops []entities.ResourceDrop) {
	for _, drop := range drops {
		if drop.ResourceID == "" || drop.Quantity <= 0 {
			continue
		}
		if player.Resources == nil {
			player.Resources = make(map[string]int)
		}
		player.Resources[drop.ResourceID] += drop.Quantity
	}
}

// DescribeMissing renders a missing map in a stable order
func DescribeMissing(missing map[string]int) string {
	ids := make([]string, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d more %s", missing[id], id)
	}
	return strings.Join(parts, ", ")
}
