package character

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-chargen/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"
	sessionIndexPrefix = "character:session:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errSessionIDEmpty   = "session ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	Logger *zap.Logger
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		logger: logger.Named("character_repo"),
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Character.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	c := *input.Character
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.clock.Now()
	}

	key := characterKeyPrefix + c.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExists("character already exists").WithMeta("character_id", c.ID)
	}

	data, err := json.Marshal(&c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// Claim the session first so a session yields at most one character
	sessionKey := sessionIndexPrefix + c.SessionID
	claimed, err := r.client.SetNX(ctx, sessionKey, c.ID, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to index character by session")
	}
	if !claimed {
		return nil, errors.AlreadyExists("session already has a character").WithMeta("session_id", c.SessionID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for characters
	if c.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+c.PlayerID, c.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		if delErr := r.client.Del(ctx, sessionKey).Err(); delErr != nil {
			r.logger.Warn("failed to release session index",
				zap.String("session_id", c.SessionID),
				zap.Error(delErr),
			)
		}
		return nil, errors.Wrapf(err, "failed to create character")
	}

	r.logger.Debug("character stored",
		zap.String("character_id", c.ID),
		zap.String("session_id", c.SessionID),
	)

	return &CreateOutput{Character: &c}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var c chargen.Character
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &GetOutput{Character: &c}, nil
}

func (r *redisRepository) GetBySessionID(ctx context.Context, input GetBySessionIDInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	id, err := r.client.Get(ctx, sessionIndexPrefix+input.SessionID).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("no character for session %s", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to read session index")
	}

	return r.Get(ctx, GetInput{ID: id})
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Get character to find indexes
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	c := getOutput.Character

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	pipe.Del(ctx, sessionIndexPrefix+c.SessionID)
	if c.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+c.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	characterIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*chargen.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If character doesn't exist, clean up the index
			if errors.IsNotFound(err) {
				r.logger.Warn("character not found, cleaning up index",
					zap.String("character_id", id),
					zap.String("index_key", indexKey),
				)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, getOutput.Character)
	}

	r.logger.Debug("listed characters by player",
		zap.String("player_id", input.PlayerID),
		zap.Int("count", len(characters)),
	)

	return &ListByPlayerIDOutput{Characters: characters}, nil
}
