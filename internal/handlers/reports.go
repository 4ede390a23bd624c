package handlers

//go:generate mockgen -source=reports.go -destination=reports_mock.go -package=handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/sbilibin2017/gw-payment-intake/internal/services"
)

// SummaryReader computes dashboard metrics.
type SummaryReader interface {
	Summary(ctx context.Context, filter models.TransactionFilter) (*models.Summary, error)
}

// Exporter renders transaction reports.
type Exporter interface {
	Export(ctx context.Context, filter models.TransactionFilter, format string, w io.Writer) error
}

var exportContentTypes = map[string]string{
	services.FormatCSV:  "text/csv",
	services.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// NewSummaryHandler returns an HTTP handler with aggregate payment metrics.
// @Summary Payment summary
// @Description Totals, success rate and per-method breakdown for the filtered transactions.
// @Tags reports
// @Produce json
// @Param method query string false "Payment method"
// @Param status query string false "approved or declined"
// @Param from query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param to query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param user query string false "Owner login"
// @Success 200 {object} models.Summary "Summary"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/summary [get]
// @Security BearerAuth
func NewSummaryHandler(svc SummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		summary, err := svc.Summary(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to build summary", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// NewExportHandler returns an HTTP handler downloading transactions as CSV or XLSX.
// @Summary Export transactions
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Param method query string false "Payment method"
// @Param status query string false "approved or declined"
// @Param from query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param to query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param user query string false "Owner login"
// @Success 200 {file} file "Report"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query or format"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/export [get]
// @Security BearerAuth
func NewExportHandler(svc Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		format := q.Get("format")
		if format == "" {
			format = services.FormatCSV
		}

		filter, err := parseFilter(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var buf bytes.Buffer
		if err := svc.Export(r.Context(), filter, format, &buf); err != nil {
			if errors.Is(err, services.ErrUnsupportedFormat) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to export transactions", "format", format, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		filename := fmt.Sprintf("transactions_%s.%s", time.Now().Format("20060102_150405"), format)
		w.Header().Set("Content-Type", exportContentTypes[format])
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}
