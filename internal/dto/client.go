package dto

import (
	"time"

	"client-directory/internal/models"

	"github.com/shopspring/decimal"
)

// ListClientsRequest represents the query of the client list
type ListClientsRequest struct {
	Query string `query:"q" validate:"omitempty,max=100"`
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// ToQuery converts the request to the service query
func (r *ListClientsRequest) ToQuery() models.ClientListQuery {
	return models.ClientListQuery{Query: r.Query, Page: r.Page, Limit: r.Limit}
}

// GetClientRequest represents the path of the client detail
type GetClientRequest struct {
	ID string `param:"id" validate:"required,client_id"`
}

// GetSheetRequest represents the path of the raw sheet accessor
type GetSheetRequest struct {
	Sheet string `param:"sheet" validate:"required,sheet_name"`
}

// ListClientsResponse represents one page of the client list
type ListClientsResponse struct {
	Clients    []models.ClientSummary                `json:"clients"`
	Total      int                                   `json:"total"`
	Page       int                                   `json:"page"`
	Limit      int                                   `json:"limit"`
	TotalPages int                                   `json:"total_pages"`
	Sheets     map[models.SheetName]models.SheetInfo `json:"sheets"`
}

// NewListClientsResponse builds the response from a service page
func NewListClientsResponse(page *models.ClientPage) *ListClientsResponse {
	return &ListClientsResponse{
		Clients:    page.Clients,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		Sheets:     page.Sheets,
	}
}

// ClientResponse is the rendered client of the detail view
type ClientResponse struct {
	ID                 string          `json:"id"`
	TaxID              string          `json:"tax_id"`
	NationalID         *string         `json:"national_id"`
	BirthDate          models.Date     `json:"birth_date"`
	BirthDateValid     bool            `json:"birth_date_valid"`
	Name               string          `json:"name"`
	SocialName         *string         `json:"social_name"`
	DisplayName        string          `json:"display_name"`
	Email              string          `json:"email"`
	Address            string          `json:"address"`
	AnnualIncome       decimal.Decimal `json:"annual_income"`
	NetWorth           decimal.Decimal `json:"net_worth"`
	MaritalStatus      string          `json:"marital_status"`
	MaritalStatusLabel string          `json:"marital_status_label"`
	BranchCode         int             `json:"branch_code"`
}

// AccountResponse is one linked account of the detail view
type AccountResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	TypeLabel       string          `json:"type_label"`
	Balance         decimal.Decimal `json:"balance"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
}

// ClientDetailResponse represents the joined view of one client
type ClientDetailResponse struct {
	Client        ClientResponse    `json:"client"`
	Accounts      []AccountResponse `json:"accounts"`
	TotalBalance  decimal.Decimal   `json:"total_balance"`
	Branch        *models.Branch    `json:"branch"`
	BranchName    string            `json:"branch_name"`
	// Sheets holds the load state and error of the accounts and branches sheets
	Sheets map[models.SheetName]models.SheetInfo `json:"sheets"`
}

// NewClientDetailResponse renders a joined client
func NewClientDetailResponse(detail *models.ClientDetail) *ClientDetailResponse {
	c := detail.Client
	accounts := make([]AccountResponse, 0, len(detail.Accounts))
	for _, a := range detail.Accounts {
		accounts = append(accounts, AccountResponse{
			ID:              a.ID,
			Type:            string(a.Type),
			TypeLabel:       a.Type.Label(),
			Balance:         a.Balance,
			CreditLimit:     a.CreditLimit,
			AvailableCredit: a.AvailableCredit,
		})
	}

	return &ClientDetailResponse{
		Client: ClientResponse{
			ID:                 c.ID,
			TaxID:              c.TaxID,
			NationalID:         c.NationalID,
			BirthDate:          c.BirthDate,
			BirthDateValid:     c.BirthDate.Valid(),
			Name:               c.Name,
			SocialName:         c.SocialName,
			DisplayName:        c.DisplayName(),
			Email:              c.Email,
			Address:            c.Address,
			AnnualIncome:       c.AnnualIncome,
			NetWorth:           c.NetWorth,
			MaritalStatus:      string(c.MaritalStatus),
			MaritalStatusLabel: c.MaritalStatus.Label(),
			BranchCode:         c.BranchCode,
		},
		Accounts:     accounts,
		TotalBalance: detail.TotalBalance(),
		Branch:       detail.Branch,
		BranchName:   detail.BranchName(),
		Sheets: map[models.SheetName]models.SheetInfo{
			models.SheetAccounts: detail.AccountsSheet,
			models.SheetBranches: detail.BranchSheet,
		},
	}
}

// SheetResponse represents the full record set of one sheet
type SheetResponse struct {
	Sheet     models.SheetName  `json:"sheet"`
	State     models.LoadState  `json:"state"`
	Records   interface{}       `json:"records"`
	Rejected  []models.RowError `json:"rejected"`
	Warnings  []models.RowError `json:"warnings"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// NewSheetResponse renders a loaded sheet state
func NewSheetResponse[T any](state models.SheetState[T]) *SheetResponse {
	result := state.Result
	if result == nil {
		result = models.NewSheetResult[T]("")
	}
	return &SheetResponse{
		Sheet:     result.Sheet,
		State:     state.State,
		Records:   state.Records(),
		Rejected:  result.Rejected,
		Warnings:  result.Warnings,
		FetchedAt: result.FetchedAt,
	}
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status              string    `json:"status"`
	Source              string    `json:"source"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	Time                time.Time `json:"time"`
}
