package reference

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_source.go -package=referencemock github.com/KirkDiggler/rpg-chargen/internal/repositories/reference Source

// Source produces a full set of reference tables
type Source interface {
	// Name identifies the source in logs and errors
	Name() string

	// Load reads every race and occupation. It either returns complete
	// tables or an error.
	Load(ctx context.Context) (*Tables, error)
}
