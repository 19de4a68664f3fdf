package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"outagecli/internal/config"
	"outagecli/internal/dataprocessing"
	"outagecli/internal/exporter"
	"outagecli/internal/infrastructure"
	"outagecli/internal/services"
)

func main() {
	inPath := flag.String("in", "", "input file path (HTML table exported as .xls)")
	outPath := flag.String("out", "", "output file path (defaults to the generated report filename)")
	dateFilter := flag.String("date", "", "optional date filter (YYYY-MM-DD): keep only outages covering this date")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = "text"

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *inPath == "" {
		logger.Error("input file is required, use -in")
		os.Exit(1)
	}

	content, err := os.ReadFile(*inPath)
	if err != nil {
		logger.Error("Failed to read input file", "path", *inPath, "error", err)
		os.Exit(1)
	}

	records, err := dataprocessing.Parse(content)
	if err != nil {
		logger.Error("Failed to parse schedule", "path", *inPath, "error", err)
		os.Exit(1)
	}
	logger.Info("parsed schedule", "records", len(records))

	if *dateFilter != "" {
		target, err := time.Parse("2006-01-02", *dateFilter)
		if err != nil {
			logger.Error("Invalid -date value, expected YYYY-MM-DD", "value", *dateFilter)
			os.Exit(1)
		}
		records = dataprocessing.FilterByDate(records, target)
	}

	report, err := dataprocessing.Transform(records)
	if err != nil {
		logger.Error("Failed to transform records", "error", err)
		os.Exit(1)
	}
	logger.Info("transformed records",
		"output_records", len(report),
		"dropped", len(records)-len(report))

	reportDate := time.Now()
	file, err := exporter.Build(report, reportDate)
	if err != nil {
		logger.Error("Failed to build report", "error", err)
		os.Exit(1)
	}

	output := *outPath
	if output == "" {
		output = services.Filename(reportDate)
	}
	if err := os.WriteFile(output, file, 0644); err != nil {
		logger.Error("Failed to write report", "path", output, "error", err)
		os.Exit(1)
	}

	logger.Info("report written",
		"input", *inPath,
		"output", output,
		"records", len(report))
}
