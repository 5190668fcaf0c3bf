// Command migrate brings the database schema in line with migrations/.
//
// The SQL files are treated as the desired state and atlas plans the diff
// against a throwaway dev database, so re-running it is a no-op.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"booking-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the schema files")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "dev database atlas plans against")
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()
	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("failed to read database settings", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cfg, *dir, *devURL, *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.DBConfig, dir, devURL string, dryRun bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(abs, "atlas")
	if err != nil {
		return err
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.BuildDSN(),
		To:          "file://" + abs,
		DevURL:      devURL,
		AutoApprove: true,
		DryRun:      dryRun,
	})
	if err != nil {
		return err
	}

	if len(res.Changes.Pending) == 0 && len(res.Changes.Applied) == 0 {
		logger.Info("schema is up to date", "database", cfg.DBName)
		return nil
	}
	for _, stmt := range res.Changes.Pending {
		logger.Info("pending", "stmt", stmt)
	}
	logger.Info("schema applied", "database", cfg.DBName, "applied", len(res.Changes.Applied), "dry_run", dryRun)
	return nil
}
