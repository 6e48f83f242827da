// Package config loads process settings from the environment and game balance from YAML.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/errors"
	redisclient "github.com/KirkDiggler/spellforge/internal/redis"
)

// Server holds the settings for the server and simulate commands
type Server struct {
	GRPCPort int `env:"SPELLFORGE_GRPC_PORT" envDefault:"50051"`

	RedisAddr     string `env:"SPELLFORGE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"SPELLFORGE_REDIS_PASSWORD"`
	RedisDB       int    `env:"SPELLFORGE_REDIS_DB" envDefault:"0"`
	RedisTLS      bool   `env:"SPELLFORGE_REDIS_TLS" envDefault:"false"`

	// GeneratorURL enables generated content; without it enemies come from the bestiary
	// and crafting is unavailable
	GeneratorURL     string        `env:"SPELLFORGE_GENERATOR_URL"`
	GeneratorAPIKey  string        `env:"SPELLFORGE_GENERATOR_API_KEY"`
	GeneratorTimeout time.Duration `env:"SPELLFORGE_GENERATOR_TIMEOUT" envDefault:"30s"`

	BalanceFile string `env:"SPELLFORGE_BALANCE_FILE"`

	// Seed fixes the random source; zero uses the toolkit's default roller
	Seed int64 `env:"SPELLFORGE_SEED"`

	Telemetry bool   `env:"SPELLFORGE_TELEMETRY" envDefault:"false"`
	LogLevel  string `env:"SPELLFORGE_LOG_LEVEL" envDefault:"info"`
}

// Validate checks ranges the environment parser cannot
func (s *Server) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.GRPCPort < 1 || s.GRPCPort > 65535 {
		vb.Fieldf("SPELLFORGE_GRPC_PORT", "must be between 1 and 65535, got %d", s.GRPCPort)
	}
	if s.RedisAddr == "" {
		vb.RequiredField("SPELLFORGE_REDIS_ADDR")
	}
	if s.RedisDB < 0 || s.RedisDB > 15 {
		vb.Fieldf("SPELLFORGE_REDIS_DB", "must be between 0 and 15, got %d", s.RedisDB)
	}
	if s.GeneratorTimeout < 0 {
		vb.Field("SPELLFORGE_GENERATOR_TIMEOUT", "must not be negative")
	}
	if s.GeneratorURL != "" && !strings.HasPrefix(s.GeneratorURL, "http://") && !strings.HasPrefix(s.GeneratorURL, "https://") {
		vb.InvalidField("SPELLFORGE_GENERATOR_URL", "must be an http or https URL")
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		vb.InvalidField("SPELLFORGE_LOG_LEVEL", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}

// RedisOptions returns the client settings for the player store
func (s *Server) RedisOptions() *redisclient.Options {
	return &redisclient.Options{
		Password: s.RedisPassword,
		DB:       s.RedisDB,
		TLS:      s.RedisTLS,
	}
}

// LoadServer parses and validates the server settings from the environment
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadBalance reads balance overrides from a YAML file on top of the defaults. An empty
// path or a missing file yields the defaults.
func LoadBalance(path string) (progression.Balance, error) {
	balance := progression.DefaultBalance()
	if path == "" {
		return balance, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return balance, nil
		}
		return balance, errors.Wrapf(err, "failed to read balance file %s", path)
	}

	if err := yaml.Unmarshal(data, &balance); err != nil {
		return balance, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse balance file %s", path)
	}
	if err := balance.Validate(); err != nil {
		return balance, errors.Wrapf(err, "invalid balance file %s", path)
	}

	return balance, nil
}
