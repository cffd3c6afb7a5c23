package creationsession

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-chargen/internal/redis"
)

const (
	// Key pattern: creation_session:{id}
	sessionKeyPrefix = "creation_session:"
	defaultTTL       = 24 * time.Hour

	// Error messages
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	logger *zap.Logger
}

// NewRedisRepository creates a new Redis repository for creation sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		logger: logger.Named("creation_session_repo"),
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	session := input.Session.Clone()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(ttl)

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := buildKey(session.ID)
	created, err := r.client.SetNX(ctx, key, sessionJSON, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists("creation session already exists").WithMeta("session_id", session.ID)
	}

	r.logger.Debug("session created",
		zap.String("session_id", session.ID),
		zap.Duration("ttl", ttl),
	)

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	session, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

// Update replaces an existing session, keeping its expiry
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	existing, err := r.load(ctx, input.Session.ID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	remainingTTL := existing.ExpiresAt.Sub(now)

	session := input.Session.Clone()
	session.CreatedAt = existing.CreatedAt
	session.ExpiresAt = existing.ExpiresAt
	session.UpdatedAt = now

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	// XX guards against the key expiring between load and write
	updated, err := r.client.SetXX(ctx, buildKey(session.ID), sessionJSON, remainingTTL).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session in Redis")
	}
	if !updated {
		return nil, errors.NotFound("creation session has expired").WithMeta("session_id", session.ID)
	}

	return &UpdateOutput{Session: session}, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	deleted, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFound("creation session not found").WithMeta("session_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*chargen.Session, error) {
	key := buildKey(id)

	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound("creation session not found").WithMeta("session_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session chargen.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis TTL and the stored expiry can drift when clocks disagree
	if !r.clock.Now().Before(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("creation session has expired").WithMeta("session_id", id)
	}

	return &session, nil
}

// buildKey creates the Redis key for a session
func buildKey(id string) string {
	return sessionKeyPrefix + id
}
