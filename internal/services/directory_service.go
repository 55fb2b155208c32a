package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"client-directory/internal/config"
	"client-directory/internal/ingestion"
	"client-directory/internal/models"
)

var (
	ErrClientsUnavailable = errors.New("clients sheet unavailable")
)

// DirectoryService builds the searchable client list from the three sheets
type DirectoryService struct {
	sheets       SheetServiceInterface
	metrics      MetricsRecorderInterface
	logger       SheetLoggerInterface
	defaultLimit int
	maxLimit     int
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	sheets SheetServiceInterface,
	metrics MetricsRecorderInterface,
	logger SheetLoggerInterface,
	listing config.ListingConfig,
) *DirectoryService {
	return &DirectoryService{
		sheets:       sheets,
		metrics:      metrics,
		logger:       logger,
		defaultLimit: listing.DefaultPageSize,
		maxLimit:     listing.MaxPageSize,
	}
}

// ListClients fetches the three sheets concurrently and returns one page of
// matching clients. Accounts or branches that fail to load degrade to a zero
// balance and "branch not found"; only a failed clients sheet fails the call.
func (s *DirectoryService) ListClients(ctx context.Context, query models.ClientListQuery) (*models.ClientPage, error) {
	start := time.Now()
	page, limit := s.normalizePaging(query.Page, query.Limit)

	var (
		wg       sync.WaitGroup
		clients  models.SheetState[models.Client]
		accounts models.SheetState[models.Account]
		branches models.SheetState[models.Branch]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		clients = s.sheets.FetchClients(ctx)
	}()
	go func() {
		defer wg.Done()
		accounts = s.sheets.FetchAccounts(ctx)
	}()
	go func() {
		defer wg.Done()
		branches = s.sheets.FetchBranches(ctx)
	}()
	wg.Wait()

	if clients.State != models.LoadStateLoaded {
		s.metrics.IncrementCounter(MetricClientList, map[string]string{"status": "failed"})
		s.metrics.RecordProcessingTime(MetricClientList, time.Since(start))
		return nil, fmt.Errorf("%w: %s", ErrClientsUnavailable, clients.Error)
	}

	matched := FilterClients(clients.Records(), query.Query)
	total := len(matched)

	from := (page - 1) * limit
	if from > total {
		from = total
	}
	to := from + limit
	if to > total {
		to = total
	}

	byOwner := accountIndex(accounts.Records())
	byCode := branchIndex(branches.Records())

	summaries := make([]models.ClientSummary, 0, to-from)
	for _, client := range matched[from:to] {
		summaries = append(summaries, summarize(client, byOwner, byCode))
	}

	result := &models.ClientPage{
		Clients:    summaries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pageCount(total, limit),
		Sheets: map[models.SheetName]models.SheetInfo{
			models.SheetClients:  clients.Info(),
			models.SheetAccounts: accounts.Info(),
			models.SheetBranches: branches.Info(),
		},
	}

	elapsed := time.Since(start)
	s.logger.LogClientListed(ctx, query.Query, total, len(summaries), elapsed.Milliseconds())
	s.metrics.IncrementCounter(MetricClientList, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(MetricClientList, elapsed)

	return result, nil
}

func (s *DirectoryService) normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// FilterClients keeps clients whose name or social name contains query, ignoring
// case, or whose tax id contains the digits of query. A blank query keeps
// everything. Source order is preserved.
func FilterClients(clients []models.Client, query string) []models.Client {
	query = strings.TrimSpace(query)
	if query == "" {
		return clients
	}

	needle := strings.ToLower(query)
	digits := ingestion.ParseTaxID(query)

	matched := []models.Client{}
	for _, client := range clients {
		if strings.Contains(strings.ToLower(client.Name), needle) ||
			(client.SocialName != nil && strings.Contains(strings.ToLower(*client.SocialName), needle)) ||
			(digits != "" && strings.Contains(client.TaxID, digits)) {
			matched = append(matched, client)
		}
	}
	return matched
}

func summarize(client models.Client, byOwner map[string][]models.Account, byCode map[int]models.Branch) models.ClientSummary {
	accounts := byOwner[client.TaxID]

	branchName := models.BranchNotFoundName
	if branch, ok := byCode[client.BranchCode]; ok {
		branchName = branch.Name
	}

	return models.ClientSummary{
		ID:           client.ID,
		Name:         client.Name,
		DisplayName:  client.DisplayName(),
		TaxID:        client.TaxID,
		Email:        client.Email,
		Balance:      models.SumBalances(accounts),
		AccountCount: len(accounts),
		BranchCode:   client.BranchCode,
		BranchName:   branchName,
	}
}

// pageCount is the number of pages of size limit needed for total items
func pageCount(total, limit int) int {
	if limit <= 0 || total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
