package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"howmanyq-sitegen/internal/sitemap"
	"howmanyq-sitegen/pkg/config"
	"howmanyq-sitegen/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting sitemap generator...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := generate(cfg); err != nil {
		log.Fatal("Failed to generate sitemap", zap.Error(err))
	}

	log.Info("Sitemap generated", zap.String("path", cfg.SitemapPath()))
}

// generate renders the sitemap from the persisted navigation document.
// The emitter never rescans the site; run navgen first.
func generate(cfg *config.Config) error {
	emitter := sitemap.NewEmitter(cfg.BaseURL)
	return emitter.EmitFile(cfg.NavPath(), cfg.SitemapPath())
}
