package http

import (
	"context"

	"outagecli/internal/services"
)

// ReportServiceInterface defines the conversion capability consumed by the
// transport adapters. services.ReportService is the production
// implementation; tests substitute mocks.
type ReportServiceInterface interface {
	Convert(ctx context.Context, content []byte) (*services.ConversionResult, error)
}
