package entities

import "time"

// Phase is the combat-level state of an encounter
type Phase string

// Encounter phases
const (
	PhasePlayerTurn Phase = "player_turn"
	PhaseEnemyTurn  Phase = "enemy_turn"
	PhaseVictory    Phase = "victory"
	PhaseDefeat     Phase = "defeat"
	PhaseFled       Phase = "fled"
)

// IsTerminal reports whether no further actions are possible in this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseFled
}

// Actor identifies who produced a combat log entry
type Actor string

// Log actors
const (
	ActorPlayer Actor = "Player"
	ActorEnemy  Actor = "Enemy"
	ActorSystem Actor = "System"
)

// LogType classifies a combat log entry for display
type LogType string

// Log entry types
const (
	LogInfo    LogType = "info"
	LogDamage  LogType = "damage"
	LogHeal    LogType = "heal"
	LogStatus  LogType = "status"
	LogError   LogType = "error"
	LogSuccess LogType = "success"
	LogDefeat  LogType = "defeat"
	LogReward  LogType = "reward"
)

// CombatLogEntry is one line of the visible combat narrative
type CombatLogEntry struct {
	ID        string    `json:"id"`
	Actor     Actor     `json:"actor"`
	Message   string    `json:"message"`
	Type      LogType   `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionResult is the outcome of a player action. Failed actions never mutate state.
type ActionResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Type    LogType `json:"type"`
}

// Failure builds an unsuccessful result
func Failure(message string) ActionResult {
	return ActionResult{Success: false, Message: message, Type: LogError}
}

// Succeeded builds a successful result
func Succeeded(message string) ActionResult {
	return ActionResult{Success: true, Message: message, Type: LogSuccess}
}

// RewardSummary accumulates everything granted during an encounter
type RewardSummary struct {
	XP           int            `json:"xp"`
	Gold         int            `json:"gold"`
	Essence      int            `json:"essence"`
	Resources    map[string]int `json:"resources,omitempty"`
	LootChests   int            `json:"lootChests"`
	LevelsGained int            `json:"levelsGained"`
	Unlocked     []string       `json:"unlocked,omitempty"`
}

// Encounter is the full state of one fight
type Encounter struct {
	ID               string           `json:"id"`
	PlayerID         string           `json:"playerId"`
	Player           *Player          `json:"player"`
	Enemies          []*Enemy         `json:"enemies"`
	Phase            Phase            `json:"phase"`
	Turn             int              `json:"turn"`
	ActingEnemyIndex int              `json:"actingEnemyIndex"`
	Log              []CombatLogEntry `json:"log"`
	Rewards          RewardSummary    `json:"rewards"`
	StartedAt        time.Time        `json:"startedAt"`
}

// FindEnemy returns the enemy with the given ID
func (e *Encounter) FindEnemy(id string) (*Enemy, bool) {
	for _, enemy := range e.Enemies {
		if enemy.ID == id {
			return enemy, true
		}
	}
	return nil, false
}

// LivingEnemies returns the enemies with HP above zero, in encounter order
func (e *Encounter) LivingEnemies() []*Enemy {
	var out []*Enemy
	for _, enemy := range e.Enemies {
		if enemy.IsAlive() {
			out = append(out, enemy)
		}
	}
	return out
}

// Clone returns a deep copy of the encounter
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	out := *e
	out.Player = e.Player.Clone()
	out.Enemies = make([]*Enemy, len(e.Enemies))
	for i, enemy := range e.Enemies {
		out.Enemies[i] = enemy.Clone()
	}
	out.Log = append([]CombatLogEntry(nil), e.Log...)
	out.Rewards.Resources = cloneIntMap(e.Rewards.Resources)
	out.Rewards.Unlocked = append([]string(nil), e.Rewards.Unlocked...)
	return &out
}
