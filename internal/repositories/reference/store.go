package reference

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

//go:generate mockgen -destination=mock/mock_store.go -package=referencemock github.com/KirkDiggler/rpg-chargen/internal/repositories/reference Store

// Store serves the current reference tables. Tables are swapped in whole, so
// readers never observe a partial load.
type Store interface {
	// Load reads src and publishes the result. On failure the previous
	// tables stay in place and the error matches chargen.ErrReferenceLoadFailed.
	Load(ctx context.Context, src Source) error

	// LoadAsync runs Load in the background. The channel receives the
	// result and is then closed.
	LoadAsync(ctx context.Context, src Source) <-chan error

	// Tables returns the current snapshot or chargen.ErrReferenceDataNotLoaded
	Tables() (*Tables, error)

	// Ready reports whether any tables have been published
	Ready() bool
}

// StoreConfig configures a Store
type StoreConfig struct {
	Logger *zap.Logger
}

type store struct {
	current atomic.Pointer[Tables]
	logger  *zap.Logger
}

// NewStore creates an empty store
func NewStore(cfg *StoreConfig) Store {
	logger := zap.NewNop()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}
	return &store{logger: logger.Named("reference")}
}

// NewLoadedStore creates a store that already serves tables
func NewLoadedStore(tables *Tables) Store {
	s := &store{logger: zap.NewNop()}
	s.current.Store(tables)
	return s
}

func (s *store) Load(ctx context.Context, src Source) error {
	if src == nil {
		return errors.InvalidArgument("reference source is required")
	}

	tables, err := src.Load(ctx)
	if err == nil && tables == nil {
		err = errors.Internalf("source %s returned no tables", src.Name())
	}
	if err != nil {
		s.logger.Error("reference data load failed",
			zap.String("source", src.Name()),
			zap.Bool("previous_tables_kept", s.Ready()),
			zap.Error(err),
		)
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to load reference data from %s", src.Name()).
			WithReason(chargen.ReasonReferenceLoadFailed).
			WithMeta("source", src.Name())
	}

	if tables.Source == "" {
		tables.Source = src.Name()
	}
	s.current.Store(tables)

	s.logger.Info("reference data loaded",
		zap.String("source", src.Name()),
		zap.Int("races", len(tables.races)),
		zap.Int("occupations", len(tables.occupations)),
	)
	return nil
}

func (s *store) LoadAsync(ctx context.Context, src Source) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- s.Load(ctx, src)
	}()
	return done
}

func (s *store) Tables() (*Tables, error) {
	t := s.current.Load()
	if t == nil {
		return nil, ErrNotLoaded()
	}
	return t, nil
}

func (s *store) Ready() bool {
	return s.current.Load() != nil
}

// ErrNotLoaded returns the error reported before the first successful load
func ErrNotLoaded() error {
	return errors.Wrap(chargen.ErrReferenceDataNotLoaded, "reference data is still loading")
}
