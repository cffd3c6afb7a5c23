package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/observability"
	"github.com/KirkDiggler/rpg-chargen/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
)

var auditFix bool

var auditCmd = &cobra.Command{
	Use:   "audit-characters",
	Short: "Scan stored characters for unusable records",
	Long: `Scan every stored character and report records that cannot be decoded or
break character invariants. With --fix those records and their index entries
are deleted.`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	auditCmd.Flags().BoolVar(&auditFix, "fix", false, "delete unusable records")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := redis.New(cfg.Redis.Endpoints, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	report, err := characterrepo.Audit(ctx, client, auditFix, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checked %d characters, found %d unusable\n", report.Checked, len(report.Findings))
	for _, f := range report.Findings {
		fmt.Fprintf(out, "  - %s: %s\n", f.Key, f.Problem)
	}
	if auditFix {
		fmt.Fprintf(out, "Deleted %d records\n", len(report.Removed))
	} else if len(report.Findings) > 0 {
		fmt.Fprintln(out, "Run again with --fix to delete them")
	}
	return nil
}
