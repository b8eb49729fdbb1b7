// Package main provides the catalog generator: fetch both sources,
// normalize, merge, serialize and write the schema-valid XML catalog.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"bfpogen/internal/config"
	"bfpogen/internal/formatter"
	"bfpogen/internal/logger"
	"bfpogen/internal/merger"
	"bfpogen/internal/models"
	"bfpogen/internal/normalizer"
	"bfpogen/internal/scraper"
	"bfpogen/internal/serializer"
	"bfpogen/internal/writer"
	"bfpogen/pkg/metadata"
)

func main() {
	// A .env next to the binary may override the defaults below.
	_ = godotenv.Load()

	configFile := flag.String("config", envOr("BFPOGEN_CONFIG", ""), "Path to YAML configuration file")
	govukFile := flag.String("govuk-file", "", "Pre-downloaded GOV.UK locations page (overrides config)")
	fcdoFile := flag.String("fcdo-file", "", "Pre-downloaded FCDO indicator list ODS (overrides config)")
	output := flag.String("output", "", "Output XML file path (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)

	if *govukFile != "" {
		cfg.Sources.GOVUK = config.SourceConfig{File: *govukFile}
	}

	if *fcdoFile != "" {
		cfg.Sources.FCDO = config.SourceConfig{File: *fcdoFile}
	}

	if *output != "" {
		cfg.Output.Path = *output
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if err := run(cfg, log); err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	return cfg
}

func run(cfg *config.Config, log *logger.Logger) error {
	log.Info("starting generation", "config", cfg.String())

	fetcher := scraper.NewScraperWithConfig(&cfg.Retry)

	// GOV.UK locations registry: the primary source of truth.
	page, err := fetcher.FetchSource(&cfg.Sources.GOVUK)
	if err != nil {
		return fmt.Errorf("fetching GOV.UK source: %w", err)
	}

	govukRaw, err := scraper.NewGOVUKParser(log).Parse(page)
	if err != nil {
		return fmt.Errorf("parsing GOV.UK source: %w", err)
	}

	govukRaw = append(govukRaw, detachmentRecords(cfg)...)

	log.Info("extracted GOV.UK records", "count", len(govukRaw))

	// FCDO diplomatic-posts list: optional supplement.
	var fcdoRaw []models.RawRecord

	if cfg.Sources.FCDO.IsConfigured() {
		ods, fetchErr := fetcher.FetchSource(&cfg.Sources.FCDO)
		if fetchErr != nil {
			return fmt.Errorf("fetching FCDO source: %w", fetchErr)
		}

		fcdoRaw, err = scraper.NewFCDOParser(log).Parse(ods)
		if err != nil {
			return fmt.Errorf("parsing FCDO source: %w", err)
		}

		log.Info("extracted FCDO records", "count", len(fcdoRaw))
	} else {
		log.Info("FCDO source not configured, skipping")
	}

	// Normalize both sources into canonical records.
	stats := models.NewRunStats()
	proc := normalizer.NewProcessor(log)

	primary := proc.ProcessAll(govukRaw, stats)
	secondary := proc.ProcessAll(fcdoRaw, stats)

	// Merge, deduplicate and order.
	catalog, mergeStats := merger.NewMerger(log).Merge(primary, secondary)

	// Serialize with schema validation. A violation here aborts the run.
	ser := serializer.NewSerializer()

	doc, docStats, err := ser.Serialize(catalog)
	if err != nil {
		return err
	}

	provenance := []string{cfg.Sources.GOVUK.GetSource()}
	if cfg.Sources.FCDO.IsConfigured() {
		provenance = append(provenance, cfg.Sources.FCDO.GetSource())
	}

	meta := metadata.New(cfg.Output.SchemaRef, provenance...)

	if err := writer.NewWriter(ser).Write(doc, meta, cfg.Output.Path, cfg.Output.PrettyPrint); err != nil {
		return err
	}

	log.Info("catalog written", "path", cfg.Output.Path, "addresses", docStats.Total, "run", meta.RunID)

	fmt.Print(formatter.RenderSummary(docStats, stats, mergeStats))

	return nil
}

// detachmentRecords converts the built-in isolated-detachment table into
// raw records so they flow through the same normalization contract.
func detachmentRecords(cfg *config.Config) []models.RawRecord {
	records := make([]models.RawRecord, 0, len(cfg.Detachments))

	for _, row := range cfg.Detachments {
		records = append(records, models.RawRecord{
			Origin:     models.OriginGOVUK,
			Designator: row.Group,
			Location:   row.Location,
			Postcode:   row.Postcode,
			Country:    row.Country,
			BoxNumber:  row.BoxNumber,
			Detachment: true,
		})
	}

	return records
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func printUsage() {
	fmt.Println("bfpogen - BFPO address catalog generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bfpogen [-config configs/bfpogen.yaml] [-output bfpo_catalog.xml]")
	fmt.Println("  bfpogen -govuk-file page.html [-fcdo-file list.ods]")
	fmt.Println()
	flag.PrintDefaults()
}
