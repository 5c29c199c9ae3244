package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/orders-tracker/internal/cache"
	"github.com/joseph-ayodele/orders-tracker/internal/common"
	"github.com/joseph-ayodele/orders-tracker/internal/export"
	"github.com/joseph-ayodele/orders-tracker/internal/extract"
	"github.com/joseph-ayodele/orders-tracker/internal/mail"
	"github.com/joseph-ayodele/orders-tracker/internal/mail/gmail"
	"github.com/joseph-ayodele/orders-tracker/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

const failureSample = 5

func main() {
	var (
		out     = flag.String("out", "", "output CSV file path (defaults to EXPORT_CSV_PATH)")
		xlsx    = flag.String("xlsx", "", "optional XLSX report path")
		fromStr = flag.String("from", "", "only messages after this date, YYYY-MM-DD")
		toStr   = flag.String("to", "", "only messages before this date, YYYY-MM-DD")
		max     = flag.Int64("max", 0, "max messages to process (0 = config default)")
		noCache = flag.Bool("no-cache", false, "bypass the local fetch cache")
		rules   = flag.String("rules", "", "JSON extraction-rules override file")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *out != "" {
		cfg.Export.CSVPath = *out
	}
	if *xlsx != "" {
		cfg.Export.XLSXPath = *xlsx
	}
	if *fromStr != "" {
		cfg.Mail.StartDate = *fromStr
	}
	if *toStr != "" {
		cfg.Mail.EndDate = *toStr
	}
	if *max > 0 {
		cfg.Mail.MaxMessages = *max
	}
	if *rules != "" {
		cfg.Extract.RulesFile = *rules
	}
	if *noCache {
		cfg.Cache.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Extraction rules: defaults, optionally overridden from a file.
	extractRules := extract.DefaultRules(cfg.Extract.Window)
	if cfg.Extract.RulesFile != "" {
		loaded, err := extract.LoadRules(cfg.Extract.RulesFile, cfg.Extract.Window)
		if err != nil {
			logger.Error("failed to load extraction rules", "file", cfg.Extract.RulesFile, "error", err)
			os.Exit(1)
		}
		extractRules = loaded
	}
	parser := extract.NewParser(logger, extractRules)

	// Provider chain: gmail -> retry -> cache.
	client, err := gmail.NewClient(ctx, cfg.Mail, logger)
	if err != nil {
		logger.Error("failed to create gmail client", "error", err)
		os.Exit(1)
	}
	var provider mail.Provider = mail.NewRetryingProvider(client, cfg.Mail.FetchMaxRetries, cfg.Mail.FetchBackoff, logger)
	if cfg.Cache.Enabled {
		store, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			logger.Error("failed to open fetch cache", "path", cfg.Cache.Path, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		provider = mail.NewCachingProvider(provider, store, logger)
	}

	filter := mail.NewMarkerFilter(cfg.Mail.Sender, cfg.Mail.ContentMarkers, cfg.Mail.MinMarkers)

	result, err := pipeline.New(logger, provider, filter, parser).Run(ctx)
	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	if err := export.WriteCSVFile(cfg.Export.CSVPath, result.Records); err != nil {
		logger.Error("failed to write CSV", "path", cfg.Export.CSVPath, "error", err)
		os.Exit(1)
	}
	logger.Info("dataset written", "path", cfg.Export.CSVPath, "records", len(result.Records))

	if cfg.Export.XLSXPath != "" {
		xlsxBytes, err := export.NewService(logger).WriteXLSX(result.Records)
		if err != nil {
			logger.Error("failed to build XLSX report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(cfg.Export.XLSXPath, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write XLSX report", "path", cfg.Export.XLSXPath, "error", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", cfg.Export.XLSXPath)
	}

	fmt.Printf("Pipeline run complete!\n")
	fmt.Printf("- Messages processed: %d\n", result.Stats.Processed)
	fmt.Printf("- Records extracted: %d\n", result.Stats.Succeeded)
	fmt.Printf("- Skipped (not order confirmations): %d\n", result.Stats.Skipped)
	fmt.Printf("- Failed: %d\n", result.Stats.Failed)
	fmt.Printf("- Success rate: %.1f%%\n", result.Stats.SuccessRate()*100)
	fmt.Printf("- Output: %s\n", cfg.Export.CSVPath)

	if len(result.Failures) > 0 {
		fmt.Printf("\nFirst failures (up to %d):\n", failureSample)
		for i, f := range result.Failures {
			if i >= failureSample {
				break
			}
			fmt.Printf("- %s %q (%s): %s\n", f.EmailID, f.Subject, f.Date, f.Reason)
		}
	}
}
