package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/pflag"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/logger"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
	pflag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.Logger)
	ctx := context.Background()

	var storage repository.Storage
	switch cfg.Persistence.Driver {
	case "postgres":
		pg, err := repository.NewPostgresStore(ctx, cfg.Persistence.PostgresURL, cfg.Persistence.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres storage unavailable")
		}
		defer pg.Close()
		storage = pg
	default:
		fs, err := repository.NewFileStore(cfg.Persistence.FilePath, cfg.Persistence.Compress)
		if err != nil {
			log.Fatal().Err(err).Msg("file storage unavailable")
		}
		storage = fs
	}

	store := usecase.NewStore(storage, log)
	store.Load(ctx)

	saver := usecase.NewAutosaver(cfg.Autosave.Delay, func() {
		store.Commit(context.Background())
	})

	html, err := render.NewHTMLRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("renderer setup failed")
	}
	exporter := render.NewExporter(html, infra.NewChromedpRenderer(cfg.Export.ChromePath, cfg.Export.Timeout))

	app := fiber.New(fiber.Config{AppName: "resume-builder"})
	h := httpadapter.NewHandler(store, saver, html, exporter, log)
	h.Register(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := app.Listen(addr); err != nil {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("server failed")
	}

	// pending edits are never dropped on the way out
	saver.Flush()

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("gracefully stopped")
}
