package main

import (
	"os"

	"shopscrape/config"
	"shopscrape/scraper/shop"
	"shopscrape/services"
	"shopscrape/storage"
	"shopscrape/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Shop Scraping System starting ===")
	logger.Info("Config — base: %s | cutoff year: %d | output: %s",
		cfg.BaseURL, cfg.CutoffYear, cfg.OutputPath)

	jsonWriter, err := storage.NewJSONWriter(cfg.OutputPath)
	if err != nil {
		logger.Error("Failed to prepare JSON writer: %v", err)
		os.Exit(1)
	}
	defer jsonWriter.Close()

	shopScraper := shop.New(cfg, logger)
	doc, err := shopScraper.Scrape()
	if err != nil {
		logger.Error("Scrape failed: %v", err)
		os.Exit(1)
	}

	if err := jsonWriter.Write(doc); err != nil {
		logger.Error("JSON write failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Document saved to %s", cfg.OutputPath)

	if cfg.PostgresEnabled() {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
		} else {
			defer pgWriter.Close()
			if err := pgWriter.Write(doc); err != nil {
				logger.Error("PostgreSQL write failed: %v", err)
			} else {
				logger.Info("Records mirrored to PostgreSQL")
			}
		}
	}

	summarySvc := services.NewSummaryService(logger)
	summarySvc.Print(summarySvc.Generate(doc))
}
