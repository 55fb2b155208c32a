package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"client-directory/internal/models"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

type requestIDKey struct{}

// WithRequestID stores the request id so service logs can be correlated with the access log
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// SheetLogger provides structured logging for sheet ingestion and client lookups
type SheetLogger struct {
	logger *slog.Logger
}

// NewSheetLogger creates a new sheet logger
func NewSheetLogger(logger *slog.Logger) *SheetLogger {
	return &SheetLogger{
		logger: logger,
	}
}

// LogSheetFetchStarted logs the start of a sheet fetch
func (sl *SheetLogger) LogSheetFetchStarted(ctx context.Context, sheet models.SheetName) {
	sl.logger.DebugContext(ctx, "sheet fetch started",
		slog.String("event_type", "sheet_fetch_started"),
		slog.String("sheet", string(sheet)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSheetFetchCompleted logs a fetch that produced a record set
func (sl *SheetLogger) LogSheetFetchCompleted(ctx context.Context, sheet models.SheetName, records, rejected, warnings int, durationMs int64) {
	sl.logger.InfoContext(ctx, "sheet fetch completed",
		slog.String("event_type", "sheet_fetch_completed"),
		slog.String("sheet", string(sheet)),
		slog.Int("records", records),
		slog.Int("rejected", rejected),
		slog.Int("warnings", warnings),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSheetFetchFailed logs a failed sheet fetch
func (sl *SheetLogger) LogSheetFetchFailed(ctx context.Context, sheet models.SheetName, errorMsg string, durationMs int64) {
	sl.logger.WarnContext(ctx, "sheet fetch failed",
		slog.String("event_type", "sheet_fetch_failed"),
		slog.String("sheet", string(sheet)),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRowRejected logs a source row that was excluded from its record set.
// The cell value is redacted; only its position is logged.
func (sl *SheetLogger) LogRowRejected(ctx context.Context, rowErr models.RowError) {
	sl.logger.WarnContext(ctx, "sheet row rejected",
		slog.String("event_type", "sheet_row_rejected"),
		slog.String("sheet", string(rowErr.Sheet)),
		slog.Int("line", rowErr.Line),
		slog.String("column", rowErr.Column),
		slog.String("value", redactCell(rowErr.Value)),
		slog.String("reason", rowErr.Reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRowWarning logs a kept row with a degraded field
func (sl *SheetLogger) LogRowWarning(ctx context.Context, rowErr models.RowError) {
	sl.logger.DebugContext(ctx, "sheet row degraded",
		slog.String("event_type", "sheet_row_degraded"),
		slog.String("sheet", string(rowErr.Sheet)),
		slog.Int("line", rowErr.Line),
		slog.String("column", rowErr.Column),
		slog.String("reason", rowErr.Reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCircuitBreakerStateChange logs a transition of the source circuit breaker
func (sl *SheetLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	sl.logger.WarnContext(ctx, "circuit breaker state changed",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogClientListed logs a served page of the client list
func (sl *SheetLogger) LogClientListed(ctx context.Context, query string, total, returned int, durationMs int64) {
	q := ""
	if query != "" {
		q = RedactedValue
	}
	sl.logger.InfoContext(ctx, "client list served",
		slog.String("event_type", "client_list_served"),
		slog.String("query", q),
		slog.Int("total", total),
		slog.Int("returned", returned),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogClientLookup logs the outcome of a detail lookup
func (sl *SheetLogger) LogClientLookup(ctx context.Context, clientID, taxID string, found bool, durationMs int64) {
	sl.logger.InfoContext(ctx, "client lookup completed",
		slog.String("event_type", "client_lookup_completed"),
		slog.String("client_id", clientID),
		slog.String("tax_id", MaskTaxID(taxID)),
		slog.Bool("found", found),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogClientLookupFailed logs a detail lookup that could not resolve the client
func (sl *SheetLogger) LogClientLookupFailed(ctx context.Context, clientID string, errorMsg string, durationMs int64) {
	sl.logger.WarnContext(ctx, "client lookup failed",
		slog.String("event_type", "client_lookup_failed"),
		slog.String("client_id", clientID),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogViewSuperseded logs a response discarded in favour of a newer request
func (sl *SheetLogger) LogViewSuperseded(ctx context.Context, viewID, clientID string) {
	sl.logger.InfoContext(ctx, "view superseded",
		slog.String("event_type", "view_superseded"),
		slog.String("view_id", viewID),
		slog.String("client_id", clientID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// Helper functions

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// MaskTaxID keeps the last two digits of a tax id
func MaskTaxID(taxID string) string {
	if len(taxID) <= 2 {
		return strings.Repeat("*", len(taxID))
	}
	return strings.Repeat("*", len(taxID)-2) + taxID[len(taxID)-2:]
}

func redactCell(value string) string {
	if value == "" {
		return ""
	}
	return RedactedValue
}
