package player

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	redisclient "github.com/KirkDiggler/spellforge/internal/redis"
)

const (
	// KeyPrefix versions the save format; bump it when the layout changes incompatibly
	KeyPrefix = "spellforge:v1:player:"

	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, KeyPrefix+input.ID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to get player")
	}

	var p entities.Player
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal player data")
	}
	if p.ID == "" {
		p.ID = input.ID
	}

	repairs := Repair(&p)
	if len(repairs) > 0 {
		slog.Warn("Repaired player save",
			"player_id", p.ID,
			"fields", repairs)
	}

	return &GetOutput{Player: &p, Repairs: repairs}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal player data")
	}

	// No TTL for saves
	if err := r.client.Set(ctx, KeyPrefix+input.Player.ID, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to save player")
	}

	return &SaveOutput{Player: input.Player}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	removed, err := r.client.Del(ctx, KeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to delete player")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
