package services

import (
	"context"
	"time"

	"client-directory/internal/models"
)

// SheetServiceInterface fetches and ingests one sheet per call. Every accessor
// returns a state with a non-nil result, whatever happened to the fetch.
type SheetServiceInterface interface {
	FetchClients(ctx context.Context) models.SheetState[models.Client]
	FetchAccounts(ctx context.Context) models.SheetState[models.Account]
	FetchBranches(ctx context.Context) models.SheetState[models.Branch]
	SourceHealth() models.SourceHealth
}

// DirectoryServiceInterface serves the searchable, paginated client list
type DirectoryServiceInterface interface {
	ListClients(ctx context.Context, query models.ClientListQuery) (*models.ClientPage, error)
}

// ClientDetailServiceInterface serves the joined view of a single client
type ClientDetailServiceInterface interface {
	// GetClientDetail resolves the client first and only then loads its accounts and branch
	GetClientDetail(ctx context.Context, clientID string) (*models.ClientDetail, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	Allow() error
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	GetFailureCount() int
}

type SheetLoggerInterface interface {
	LogSheetFetchStarted(ctx context.Context, sheet models.SheetName)
	LogSheetFetchCompleted(ctx context.Context, sheet models.SheetName, records, rejected, warnings int, durationMs int64)
	LogSheetFetchFailed(ctx context.Context, sheet models.SheetName, errorMsg string, durationMs int64)
	LogRowRejected(ctx context.Context, rowErr models.RowError)
	LogRowWarning(ctx context.Context, rowErr models.RowError)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogClientListed(ctx context.Context, query string, total, returned int, durationMs int64)
	LogClientLookup(ctx context.Context, clientID, taxID string, found bool, durationMs int64)
	LogClientLookupFailed(ctx context.Context, clientID string, errorMsg string, durationMs int64)
	LogViewSuperseded(ctx context.Context, viewID, clientID string)
}

// ViewTrackerInterface keeps the latest requested identity per view so late
// responses for an older identity can be discarded
type ViewTrackerInterface interface {
	Begin(viewID, target string) uint64
	Commit(viewID string, ticket uint64) bool
}
