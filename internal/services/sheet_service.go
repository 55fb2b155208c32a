package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"client-directory/internal/ingestion"
	"client-directory/internal/models"
	"client-directory/internal/repositories"
)

// BreakerServiceName labels the sheet source in breaker logs and metrics
const BreakerServiceName = "sheet_source"

var (
	ErrSheetMalformed = errors.New("sheet payload could not be decoded")
)

// SheetService fetches one sheet at a time from the source and ingests it.
// Nothing is cached: every call is a fresh remote fetch.
type SheetService struct {
	source  repositories.SheetSourceInterface
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  SheetLoggerInterface
	now     func() time.Time
}

// NewSheetService creates a new sheet service
func NewSheetService(
	source repositories.SheetSourceInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger SheetLoggerInterface,
) *SheetService {
	return &SheetService{
		source:  source,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// WatchBreaker reports every transition of cb through logs and the breaker gauge
func WatchBreaker(cb *CircuitBreaker, metrics MetricsRecorderInterface, logger SheetLoggerInterface) {
	metrics.RecordGauge(MetricCircuitBreakerState, float64(cb.GetState()), map[string]string{"service": BreakerServiceName})

	cb.OnStateChange(func(from, to models.CircuitBreakerState) {
		logger.LogCircuitBreakerStateChange(context.Background(), BreakerServiceName, from.String(), to.String())
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": BreakerServiceName})
	})
}

func (s *SheetService) FetchClients(ctx context.Context) models.SheetState[models.Client] {
	return fetchSheet(ctx, s, models.SheetClients, ingestion.DecodeClients)
}

func (s *SheetService) FetchAccounts(ctx context.Context) models.SheetState[models.Account] {
	return fetchSheet(ctx, s, models.SheetAccounts, ingestion.DecodeAccounts)
}

func (s *SheetService) FetchBranches(ctx context.Context) models.SheetState[models.Branch] {
	return fetchSheet(ctx, s, models.SheetBranches, ingestion.DecodeBranches)
}

// SourceHealth reports the breaker guarding the remote source
func (s *SheetService) SourceHealth() models.SourceHealth {
	return models.SourceHealth{
		State:               s.breaker.GetState(),
		ConsecutiveFailures: s.breaker.GetFailureCount(),
	}
}

func fetchSheet[T any](
	ctx context.Context,
	s *SheetService,
	sheet models.SheetName,
	decode func(string) (*models.SheetResult[T], error),
) models.SheetState[T] {
	start := s.now()
	s.logger.LogSheetFetchStarted(ctx, sheet)

	fail := func(err error) models.SheetState[T] {
		elapsed := s.now().Sub(start)
		s.logger.LogSheetFetchFailed(ctx, sheet, err.Error(), elapsed.Milliseconds())
		s.metrics.IncrementCounter(MetricSheetFetch, map[string]string{"sheet": string(sheet), "status": fetchStatus(err)})
		s.metrics.RecordProcessingTime(MetricSheetFetch, elapsed)
		return models.FailedState[T](sheet, err)
	}

	if err := s.breaker.Allow(); err != nil {
		return fail(fmt.Errorf("%s: %w", sheet, err))
	}

	text, err := s.source.FetchCSV(ctx, sheet)
	if err != nil {
		// a caller that went away says nothing about the source
		if ctx.Err() == nil && isSourceFailure(err) {
			s.breaker.RecordFailure()
		}
		return fail(err)
	}
	s.breaker.RecordSuccess()

	result, err := decode(text)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrSheetMalformed, err))
	}
	result.FetchedAt = s.now()

	for _, rejected := range result.Rejected {
		s.logger.LogRowRejected(ctx, rejected)
	}
	for _, warning := range result.Warnings {
		s.logger.LogRowWarning(ctx, warning)
	}

	elapsed := s.now().Sub(start)
	s.logger.LogSheetFetchCompleted(ctx, sheet, len(result.Records), len(result.Rejected), len(result.Warnings), elapsed.Milliseconds())
	s.metrics.IncrementCounter(MetricSheetFetch, map[string]string{"sheet": string(sheet), "status": "success"})
	s.metrics.RecordProcessingTime(MetricSheetFetch, elapsed)
	s.recordRows(sheet, "accepted", len(result.Records))
	s.recordRows(sheet, "rejected", len(result.Rejected))
	s.recordRows(sheet, "degraded", len(result.Warnings))

	return models.LoadedState(result)
}

func (s *SheetService) recordRows(sheet models.SheetName, outcome string, n int) {
	s.metrics.RecordGauge(MetricSheetRows, float64(n), map[string]string{"sheet": string(sheet), "outcome": outcome})
}

func isSourceFailure(err error) bool {
	return errors.Is(err, repositories.ErrSheetUnavailable) || errors.Is(err, repositories.ErrEmptySheet)
}

func fetchStatus(err error) string {
	switch {
	case errors.Is(err, ErrCircuitBreakerOpen):
		return "circuit_open"
	case errors.Is(err, repositories.ErrEmptySheet):
		return "empty"
	case errors.Is(err, ErrSheetMalformed):
		return "malformed"
	case errors.Is(err, repositories.ErrUnknownSheet):
		return "unknown_sheet"
	case errors.Is(err, repositories.ErrSheetUnavailable):
		return "unavailable"
	}
	return "error"
}

