package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/labour-seed/internal/config"
	"github.com/Spok95/labour-seed/internal/domain/catalog"
	"github.com/Spok95/labour-seed/internal/domain/labours"
	"github.com/Spok95/labour-seed/internal/infra/db"
	"github.com/Spok95/labour-seed/internal/infra/logger"
	"github.com/Spok95/labour-seed/internal/infra/metrics"
	"github.com/Spok95/labour-seed/internal/infra/xlsx"
	"github.com/Spok95/labour-seed/internal/seed"
)

func applySeed(ctx context.Context, dsn, scriptPath string, sum seed.Summary, log *slog.Logger) error {
	if err := db.Migrate(ctx, dsn); err != nil {
		return err
	}
	log.Info("migrations applied")

	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}
	if err := db.ApplyScript(ctx, pool, string(script), labours.Table, catalog.CategoriesTable); err != nil {
		return err
	}

	cats, err := catalog.NewRepo(pool).CountCategories(ctx)
	if err != nil {
		return err
	}
	roots, err := catalog.NewRepo(pool).CountRoots(ctx)
	if err != nil {
		return err
	}
	labs, err := labours.NewRepo(pool).Count(ctx)
	if err != nil {
		return err
	}
	log.Info("seed applied", "categories", cats, "roots", roots, "labours", labs)
	if cats != sum.Categories || roots != sum.Roots || labs != sum.Labours {
		log.Warn("database counts differ from generated script",
			"want_categories", sum.Categories, "want_roots", sum.Roots, "want_labours", sum.Labours)
	}
	return nil
}

func main() {
	cfg, err := config.Load("config/labourseed.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	gen := seed.NewGenerator(
		xlsx.NewReader(cfg.Input.Sheet),
		seed.Emitter{BatchSize: cfg.Output.BatchSize},
		log,
	)
	sum, err := gen.Run(cfg.Input.Path, cfg.Output.Path)
	if err != nil {
		log.Error("seed generation failed", "err", err)
		os.Exit(1)
	}
	sum.Print(os.Stdout)

	if cfg.Metrics.Enabled {
		rec := metrics.New()
		rec.Observe(sum, time.Now())
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Error("metrics write failed", "err", err)
		}
	}

	if cfg.Postgres.DSN == "" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := applySeed(ctx, cfg.Postgres.DSN, sum.OutputPath, sum, log); err != nil {
		log.Error("apply seed failed", "err", err)
		stop()
		os.Exit(1)
	}
}
