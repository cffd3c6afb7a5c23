// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-chargen/internal/clients/external Client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Client defines the external reference lookups
type Client interface {
	// ListAvailableRaces returns all races with full details
	ListAvailableRaces(ctx context.Context) ([]*RaceData, error)

	// ListAvailableClasses returns all classes with full details
	ListAvailableClasses(ctx context.Context) ([]*ClassData, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
	logger      *zap.Logger
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Logger (optional)
	Logger *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
		logger:      cfg.Logger.Named("dnd5e"),
	}, nil
}

func (c *client) ListAvailableRaces(ctx context.Context) ([]*RaceData, error) {
	c.logger.Info("listing races from D&D 5e API")
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list races from D&D 5e API")
	}

	races := make([]*RaceData, len(refs))
	err = fetchAll(ctx, refs, func(idx int, ref *entities.ReferenceItem) error {
		race, err := c.dnd5eClient.GetRace(ref.Key)
		if err != nil {
			c.logger.Error("failed to get race details", zap.String("race", ref.Key), zap.Error(err))
			return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get race %s", ref.Key)
		}
		races[idx] = convertRace(race)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("loaded race details", zap.Int("count", len(races)))
	return races, nil
}

func (c *client) ListAvailableClasses(ctx context.Context) ([]*ClassData, error) {
	c.logger.Info("listing classes from D&D 5e API")
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list classes from D&D 5e API")
	}

	classes := make([]*ClassData, len(refs))
	err = fetchAll(ctx, refs, func(idx int, ref *entities.ReferenceItem) error {
		class, err := c.dnd5eClient.GetClass(ref.Key)
		if err != nil {
			c.logger.Error("failed to get class details", zap.String("class", ref.Key), zap.Error(err))
			return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get class %s", ref.Key)
		}
		classes[idx] = &ClassData{
			ID:     class.Key,
			Name:   class.Name,
			HitDie: class.HitDie,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return classes, nil
}

// fetchAll runs fetch for every reference concurrently and returns the
// first error reported
func fetchAll(ctx context.Context, refs []*entities.ReferenceItem, fetch func(int, *entities.ReferenceItem) error) error {
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		if ref == nil {
			continue
		}
		wg.Add(1)
		go func(idx int, ref *entities.ReferenceItem) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errChan <- errors.WrapWithCode(err, errors.CodeCanceled, "reference fetch canceled")
				return
			}
			if err := fetch(idx, ref); err != nil {
				errChan <- err
			}
		}(i, ref)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}

func convertRace(race *entities.Race) *RaceData {
	data := &RaceData{
		ID:             race.Key,
		Name:           race.Name,
		Size:           race.Size,
		Speed:          race.Speed,
		AbilityBonuses: make(map[string]int, len(race.AbilityBonuses)),
	}
	for _, bonus := range race.AbilityBonuses {
		if bonus == nil || bonus.AbilityScore == nil {
			continue
		}
		data.AbilityBonuses[bonus.AbilityScore.Key] += bonus.Bonus
	}
	return data
}
