package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"client-directory/internal/models"
)

var (
	ErrClientNotFound = errors.New("client not found")
)

// ClientDetailService resolves one client and joins its accounts and branch
type ClientDetailService struct {
	sheets  SheetServiceInterface
	metrics MetricsRecorderInterface
	logger  SheetLoggerInterface
}

// NewClientDetailService creates a new client detail service
func NewClientDetailService(
	sheets SheetServiceInterface,
	metrics MetricsRecorderInterface,
	logger SheetLoggerInterface,
) *ClientDetailService {
	return &ClientDetailService{
		sheets:  sheets,
		metrics: metrics,
		logger:  logger,
	}
}

// GetClientDetail runs a two-phase fetch. The clients sheet is loaded and the
// id resolved first; accounts and branches are fetched concurrently only once
// a client was found, since the join needs its tax id and branch code.
func (s *ClientDetailService) GetClientDetail(ctx context.Context, clientID string) (*models.ClientDetail, error) {
	start := time.Now()

	clients := s.sheets.FetchClients(ctx)
	if clients.State != models.LoadStateLoaded {
		err := fmt.Errorf("%w: %s", ErrClientsUnavailable, clients.Error)
		s.logger.LogClientLookupFailed(ctx, clientID, err.Error(), time.Since(start).Milliseconds())
		s.recordLookup("error", start)
		return nil, err
	}

	client, found := FindClient(clients.Records(), clientID)
	if !found {
		s.logger.LogClientLookup(ctx, clientID, "", false, time.Since(start).Milliseconds())
		s.recordLookup("not_found", start)
		return nil, ErrClientNotFound
	}

	var (
		wg       sync.WaitGroup
		accounts models.SheetState[models.Account]
		branches models.SheetState[models.Branch]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		accounts = s.sheets.FetchAccounts(ctx)
	}()
	go func() {
		defer wg.Done()
		branches = s.sheets.FetchBranches(ctx)
	}()
	wg.Wait()

	detail := JoinClient(client, accounts, branches)

	s.logger.LogClientLookup(ctx, clientID, client.TaxID, true, time.Since(start).Milliseconds())
	s.recordLookup("found", start)

	return detail, nil
}

func (s *ClientDetailService) recordLookup(result string, start time.Time) {
	s.metrics.IncrementCounter(MetricClientLookup, map[string]string{"result": result})
	s.metrics.RecordProcessingTime(MetricClientLookup, time.Since(start))
}
