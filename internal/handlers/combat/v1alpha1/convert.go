package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/spellforge/internal/engine/turns"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
)

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func intField(req *structpb.Struct, name string) int {
	return int(req.GetFields()[name].GetNumberValue())
}

func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

// componentsField reads [{"resource_id": "ember", "quantity": 2}, ...]
func componentsField(req *structpb.Struct, name string) []entities.ResourceCost {
	values := req.GetFields()[name].GetListValue().GetValues()
	out := make([]entities.ResourceCost, 0, len(values))
	for _, v := range values {
		item := v.GetStructValue()
		out = append(out, entities.ResourceCost{
			ResourceID: stringField(item, "resource_id"),
			Quantity:   intField(item, "quantity"),
		})
	}
	return out
}

// toStruct renders a response document through the entities' JSON shape
func toStruct(doc map[string]any) (*structpb.Struct, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}
	return out, nil
}

func enemyTurnDoc(r turns.EnemyTurnResult) map[string]any {
	return map[string]any{
		"enemyId":     r.EnemyID,
		"acted":       r.Acted,
		"skipped":     r.Skipped,
		"diedToTick":  r.DiedToTick,
		"usedSpecial": r.UsedSpecial,
		"phaseEnded":  r.PhaseEnded,
		"hit": map[string]any{
			"incoming":     r.Hit.Incoming,
			"absorbed":     r.Hit.Absorbed,
			"dealt":        r.Hit.Dealt,
			"reflected":    r.Hit.Reflected,
			"defenderDown": r.Hit.DefenderDown,
		},
	}
}

func turnStartDoc(r *turns.TurnStartResult) map[string]any {
	if r == nil {
		return nil
	}
	return map[string]any{
		"damage":   r.Damage,
		"healing":  r.Healing,
		"skipTurn": r.SkipTurn,
		"defeated": r.Defeated,
	}
}
