package services

//go:generate mockgen -source=report.go -destination=report_mock.go -package=services

import (
	"context"
	"errors"
	"io"
	"math"

	"github.com/sbilibin2017/gw-payment-intake/internal/export"
	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedFormat is returned for unknown export formats.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// TransactionReader reads stored transactions.
type TransactionReader interface {
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	TotalsByMethod(ctx context.Context, filter models.TransactionFilter) ([]models.MethodTotal, error)
}

// SummaryCache caches computed summaries.
type SummaryCache interface {
	Get(ctx context.Context, filter models.TransactionFilter) (*models.Summary, error)
	Set(ctx context.Context, filter models.TransactionFilter, summary *models.Summary) error
}

// ReportService serves history, dashboard metrics and exports.
type ReportService struct {
	reader TransactionReader
	cache  SummaryCache
}

// NewReportService creates a new ReportService. cache is optional.
func NewReportService(reader TransactionReader, cache SummaryCache) *ReportService {
	return &ReportService{reader: reader, cache: cache}
}

// History returns the transactions matching filter, newest first.
func (s *ReportService) History(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	txns, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "filter", filter, "error", err)
		return nil, err
	}
	return txns, nil
}

// Summary returns the aggregate metrics for filter, served from cache when possible.
func (s *ReportService) Summary(ctx context.Context, filter models.TransactionFilter) (*models.Summary, error) {
	if s.cache != nil {
		summary, err := s.cache.Get(ctx, filter)
		if err == nil {
			return summary, nil
		}
		logger.Log.Debugw("summary cache miss", "filter", filter, "error", err)
	}

	totals, err := s.reader.TotalsByMethod(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to aggregate transactions", "filter", filter, "error", err)
		return nil, err
	}
	summary := Summarize(totals)

	if s.cache != nil {
		if err := s.cache.Set(ctx, filter, summary); err != nil {
			logger.Log.Errorw("failed to cache summary", "filter", filter, "error", err)
		}
	}
	return summary, nil
}

// Export writes the transactions matching filter to w in the given format.
func (s *ReportService) Export(ctx context.Context, filter models.TransactionFilter, format string, w io.Writer) error {
	var write func(io.Writer, []models.Transaction) error
	switch format {
	case FormatCSV:
		write = export.WriteCSV
	case FormatXLSX:
		write = export.WriteXLSX
	default:
		return ErrUnsupportedFormat
	}

	txns, err := s.History(ctx, filter)
	if err != nil {
		return err
	}
	if err := write(w, txns); err != nil {
		logger.Log.Errorw("failed to export transactions", "format", format, "error", err)
		return err
	}
	return nil
}

// Summarize folds per-method totals into dashboard metrics. The top method is
// the one with most transactions; ties go to the first in input order.
func Summarize(totals []models.MethodTotal) *models.Summary {
	summary := &models.Summary{
		TotalAmount:    decimal.Zero,
		ApprovedAmount: decimal.Zero,
		ByMethod:       totals,
	}
	if summary.ByMethod == nil {
		summary.ByMethod = []models.MethodTotal{}
	}

	var topCount int64
	for _, t := range totals {
		summary.TotalCount += t.Count
		summary.TotalAmount = summary.TotalAmount.Add(t.Amount)
		summary.ApprovedCount += t.ApprovedCount
		summary.ApprovedAmount = summary.ApprovedAmount.Add(t.ApprovedAmount)
		if t.Count > topCount {
			topCount = t.Count
			summary.TopMethod = t.Method
		}
	}
	summary.DeclinedCount = summary.TotalCount - summary.ApprovedCount

	if summary.TotalCount > 0 {
		rate := float64(summary.ApprovedCount) / float64(summary.TotalCount) * 100
		summary.SuccessRate = math.Round(rate*10) / 10
	}
	return summary
}
