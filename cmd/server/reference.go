package main

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/clients/external"
	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/reference"
)

// newReferenceSource builds the source named by cfg.Source
func newReferenceSource(cfg config.ReferenceConfig, logger *zap.Logger) (reference.Source, error) {
	switch cfg.Source {
	case config.SourceText:
		return &reference.TextSource{
			RacesPath:       cfg.RacesPath,
			OccupationsPath: cfg.OccupationsPath,
		}, nil
	case config.SourceYAML:
		return &reference.YAMLSource{Path: cfg.YAMLPath}, nil
	case config.SourceDnD5e:
		client, err := external.New(&external.Config{
			BaseURL:     cfg.APIBaseURL,
			HTTPTimeout: cfg.APITimeout,
			CacheTTL:    cfg.CacheTTL,
			Logger:      logger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e client")
		}
		return external.NewSource(client)
	default:
		return nil, errors.InvalidArgumentf("unknown reference source %q", cfg.Source)
	}
}
