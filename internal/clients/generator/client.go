// Package generator is the HTTP client for the generative content service that drafts
// spells, consumables and enemies.
package generator

//go:generate mockgen -destination=mock/mock_client.go -package=generatormock github.com/KirkDiggler/spellforge/internal/clients/generator Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
)

// DefaultTimeout bounds a single generation request
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response body is kept in the error
const maxErrorBody = 512

// Client defines the generative service operations. Responses are drafts: callers
// must sanitize them before they reach a player.
type Client interface {
	// GenerateEnemy drafts an enemy for the requested level and difficulty
	GenerateEnemy(ctx context.Context, input *EnemyRequest) (*entities.Enemy, error)

	// GenerateSpell drafts a spell from a prompt and the components being spent
	GenerateSpell(ctx context.Context, input *SpellRequest) (*entities.Spell, error)

	// GenerateConsumable drafts a consumable from a prompt
	GenerateConsumable(ctx context.Context, input *ConsumableRequest) (*entities.Consumable, error)
}

// EnemyRequest describes the enemy to draft
type EnemyRequest struct {
	PlayerLevel int    `json:"playerLevel"`
	Difficulty  string `json:"difficulty"`
	Elite       bool   `json:"elite,omitempty"`
	Theme       string `json:"theme,omitempty"`
}

// SpellRequest describes the spell to draft
type SpellRequest struct {
	Prompt      string         `json:"prompt"`
	PlayerLevel int            `json:"playerLevel"`
	Components  map[string]int `json:"components,omitempty"`
}

// ConsumableRequest describes the consumable to draft
type ConsumableRequest struct {
	Prompt      string         `json:"prompt"`
	PlayerLevel int            `json:"playerLevel"`
	Components  map[string]int `json:"components,omitempty"`
}

// Config holds the generator client settings
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate ensures the client can reach the service
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BaseURL == "" {
		vb.RequiredField("BaseURL")
	} else if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		vb.InvalidField("BaseURL", "must be an http or https URL")
	}
	if c.Timeout < 0 {
		vb.InvalidField("Timeout", "must not be negative")
	}

	return vb.Build()
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a generator client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    httpClient,
	}, nil
}

func (c *client) GenerateEnemy(ctx context.Context, input *EnemyRequest) (*entities.Enemy, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out entities.Enemy
	if err := c.post(ctx, "/v1/enemies", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GenerateSpell(ctx context.Context, input *SpellRequest) (*entities.Spell, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}

	var out entities.Spell
	if err := c.post(ctx, "/v1/spells", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GenerateConsumable(ctx context.Context, input *ConsumableRequest) (*entities.Consumable, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}

	var out entities.Consumable
	if err := c.post(ctx, "/v1/consumables", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "generator request to %s failed", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	slog.Debug("Generator responded",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Newf(errors.CodeFromHTTPStatus(resp.StatusCode), "generator returned %s", resp.Status).
			WithMeta("path", path).
			WithMeta("body", strings.TrimSpace(string(detail)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "generator returned malformed %s response", path)
	}
	return nil
}
