package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"howmanyq-sitegen/internal/nav"
	"howmanyq-sitegen/internal/report"
	"howmanyq-sitegen/internal/scan"
	"howmanyq-sitegen/internal/taxonomy"
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
	log.Info("Starting navigation generator...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	scanID := uuid.New().String()
	log.Info("Scanning site root",
		zap.String("site_root", cfg.SiteRoot),
		zap.String("scan_id", scanID),
	)

	doc, err := generate(cfg, scanID)
	if err != nil {
		log.Fatal("Navigation generation failed", zap.Error(err))
	}

	log.Info("Navigation document written",
		zap.String("path", cfg.NavPath()),
		zap.Int("tools", doc.Statistics.TotalTools),
		zap.Int("categories", doc.Statistics.TotalCategories),
	)

	report.Write(os.Stdout, doc)
}

// generate runs the full discovery pipeline: scan the site root,
// aggregate the navigation document, and persist it at the configured
// path. Returns the document for reporting.
func generate(cfg *config.Config, scanID string) (*nav.Document, error) {
	tax := taxonomy.Default()

	tools, err := scan.NewScanner(cfg.SiteRoot, tax).Discover()
	if err != nil {
		return nil, err
	}

	aggregator := nav.NewAggregator(tax)
	aggregator.ScanID = scanID
	doc := aggregator.Aggregate(tools)

	if err := nav.Save(doc, cfg.NavPath()); err != nil {
		return nil, err
	}
	return doc, nil
}
