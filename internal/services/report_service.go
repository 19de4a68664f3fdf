package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"outagecli/internal/config"
	"outagecli/internal/dataprocessing"
	"outagecli/internal/exporter"
	"outagecli/pkg/contracts/domain"
)

// ConversionResult carries the rendered report and its metadata.
type ConversionResult struct {
	File        []byte
	Filename    string
	RecordCount int
}

// ReportService is the canonical conversion pipeline: extract, transform,
// render. All transport adapters and the CLI go through it.
type ReportService struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewReportService creates a new report service. The now function supplies
// the report date; pass nil for the wall clock.
func NewReportService(logger *slog.Logger, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{
		logger: logger.With(slog.String("component", "report_service")),
		now:    now,
	}
}

// Convert runs the full pipeline over the raw schedule bytes and returns
// the rendered workbook. Domain "no data" conditions surface as
// domain.ErrNoData / domain.ErrNoAllowedSites.
func (s *ReportService) Convert(ctx context.Context, content []byte) (*ConversionResult, error) {
	records, err := dataprocessing.Parse(content)
	if err != nil {
		s.observeFailure(ctx, "extract", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "parsed outage schedule",
		slog.Int("records", len(records)),
		slog.Int("input_bytes", len(content)))

	report, err := dataprocessing.Transform(records)
	if err != nil {
		s.observeFailure(ctx, "transform", err)
		return nil, err
	}

	reportDate := s.now()
	file, err := exporter.Build(report, reportDate)
	if err != nil {
		s.observeFailure(ctx, "render", err)
		return nil, fmt.Errorf("failed to build report workbook: %w", err)
	}

	conversionsTotal.WithLabelValues("success").Inc()
	recordsConverted.Add(float64(len(report)))

	s.logger.InfoContext(ctx, "conversion complete",
		slog.Int("input_records", len(records)),
		slog.Int("output_records", len(report)),
		slog.Int("file_bytes", len(file)))

	return &ConversionResult{
		File:        file,
		Filename:    Filename(reportDate),
		RecordCount: len(report),
	}, nil
}

// observeFailure records a failed conversion in the metrics and log.
func (s *ReportService) observeFailure(ctx context.Context, stage string, err error) {
	outcome := "error"
	switch {
	case errors.Is(err, domain.ErrNoData):
		outcome = "empty_input"
	case errors.Is(err, domain.ErrNoAllowedSites):
		outcome = "empty_after_filter"
	}
	conversionsTotal.WithLabelValues(outcome).Inc()

	s.logger.WarnContext(ctx, "conversion failed",
		slog.String("stage", stage),
		slog.String("outcome", outcome),
		slog.String("error", err.Error()))
}

// Filename returns the deterministic report filename for a report date,
// e.g. 일일_휴전계획_보고_08.25.xlsx.
func Filename(reportDate time.Time) string {
	return config.ReportFilePrefix + reportDate.Format(config.ReportDateFormat) + config.ReportFileExtension
}
