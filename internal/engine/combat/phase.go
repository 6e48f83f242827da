package combat

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Phase transition events
const (
	EventEndPlayerTurn = "end_player_turn"
	EventEndEnemyPhase = "end_enemy_phase"
	EventVictory       = "victory"
	EventDefeat        = "defeat"
	EventFlee          = "flee"
)

var phaseEvents = fsm.Events{
	{Name: EventEndPlayerTurn, Src: []string{string(entities.PhasePlayerTurn)}, Dst: string(entities.PhaseEnemyTurn)},
	{Name: EventEndEnemyPhase, Src: []string{string(entities.PhaseEnemyTurn)}, Dst: string(entities.PhasePlayerTurn)},
	{
		Name: EventVictory,
		Src:  []string{string(entities.PhasePlayerTurn), string(entities.PhaseEnemyTurn)},
		Dst:  string(entities.PhaseVictory),
	},
	{
		Name: EventDefeat,
		Src:  []string{string(entities.PhasePlayerTurn), string(entities.PhaseEnemyTurn)},
		Dst:  string(entities.PhaseDefeat),
	},
	{Name: EventFlee, Src: []string{string(entities.PhasePlayerTurn)}, Dst: string(entities.PhaseFled)},
}

// NewPhaseMachine builds the combat phase machine positioned at current
func NewPhaseMachine(current entities.Phase) *fsm.FSM {
	return fsm.NewFSM(string(current), phaseEvents, fsm.Callbacks{})
}

// CanTransition reports whether event is valid from phase
func CanTransition(phase entities.Phase, event string) bool {
	return NewPhaseMachine(phase).Can(event)
}

// transition fires event against the encounter phase and reports whether it moved
func (c *Context) transition(event string) bool {
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	machine := NewPhaseMachine(c.encounter.Phase)
	if err := machine.Event(ctx, event); err != nil {
		slog.Debug("phase transition rejected",
			"encounter_id", c.encounter.ID,
			"phase", c.encounter.Phase,
			"event", event,
			"error", err)
		return false
	}

	from := c.encounter.Phase
	c.encounter.Phase = entities.Phase(machine.Current())
	slog.Debug("phase transition",
		"encounter_id", c.encounter.ID,
		"from", from,
		"to", c.encounter.Phase)
	return true
}

// EndPlayerTurn hands control to the first living enemy
func (c *Context) EndPlayerTurn() bool {
	if !c.transition(EventEndPlayerTurn) {
		return false
	}
	c.encounter.ActingEnemyIndex = 0
	c.SkipToLivingEnemy()
	return true
}

// EndEnemyPhase advances the turn counter and returns control to the player
func (c *Context) EndEnemyPhase() bool {
	if !c.transition(EventEndEnemyPhase) {
		return false
	}
	c.encounter.Turn++
	c.encounter.ActingEnemyIndex = 0
	return true
}

// Flee ends the encounter without a winner
func (c *Context) Flee() bool {
	return c.transition(EventFlee)
}

// SkipToLivingEnemy moves the acting index forward past defeated enemies. It returns
// false when no enemy at or after the index can act.
func (c *Context) SkipToLivingEnemy() bool {
	for c.encounter.ActingEnemyIndex < len(c.encounter.Enemies) {
		if c.encounter.Enemies[c.encounter.ActingEnemyIndex].IsAlive() {
			return true
		}
		c.encounter.ActingEnemyIndex++
	}
	return false
}

// ActingEnemy returns the enemy whose turn it is, if any
func (c *Context) ActingEnemy() (*entities.Enemy, bool) {
	if c.encounter.Phase != entities.PhaseEnemyTurn || !c.SkipToLivingEnemy() {
		return nil, false
	}
	return c.encounter.Enemies[c.encounter.ActingEnemyIndex], true
}
