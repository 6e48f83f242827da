package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypePlayer = "player"
	EntityTypeEnemy  = "enemy"
)

// PlayerEntity wraps entities.Player to implement core.Entity
type PlayerEntity struct {
	*entities.Player
}

// GetID returns the player's ID
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

// EnemyEntity wraps entities.Enemy to implement core.Entity
type EnemyEntity struct {
	*entities.Enemy
}

// GetID returns the enemy's ID
func (e *EnemyEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *EnemyEntity) GetType() string {
	return EntityTypeEnemy
}

func wrapPlayer(player *entities.Player) *PlayerEntity {
	return &PlayerEntity{Player: player}
}

func wrapEnemy(enemy *entities.Enemy) *EnemyEntity {
	return &EnemyEntity{Enemy: enemy}
}

var (
	_ core.Entity = (*PlayerEntity)(nil)
	_ core.Entity = (*EnemyEntity)(nil)
)
