package models

import "github.com/shopspring/decimal"

// ClientDetail is the joined view of one client: its accounts by tax id and its
// branch by code. AccountsSheet and BranchSheet tell "none linked" apart from
// "could not load", and carry the load error when there was one.
type ClientDetail struct {
	Client        Client    `json:"client"`
	Accounts      []Account `json:"accounts"`
	Branch        *Branch   `json:"branch"`
	AccountsSheet SheetInfo `json:"accounts_sheet"`
	BranchSheet   SheetInfo `json:"branch_sheet"`
}

// TotalBalance sums the balances of every linked account
func (d *ClientDetail) TotalBalance() decimal.Decimal {
	return SumBalances(d.Accounts)
}

// BranchName returns the branch name or BranchNotFoundName
func (d *ClientDetail) BranchName() string {
	if d.Branch == nil {
		return BranchNotFoundName
	}
	return d.Branch.Name
}

// SumBalances adds up account balances; an empty slice sums to zero
func SumBalances(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total
}

// ClientSummary is one row of the client list
type ClientSummary struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DisplayName  string          `json:"display_name"`
	TaxID        string          `json:"tax_id"`
	Email        string          `json:"email"`
	Balance      decimal.Decimal `json:"balance"`
	AccountCount int             `json:"account_count"`
	BranchCode   int             `json:"branch_code"`
	BranchName   string          `json:"branch_name"`
}

// ClientPage is one page of the filtered client list together with the load
// state of each sheet that fed it.
type ClientPage struct {
	Clients    []ClientSummary         `json:"clients"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
	Sheets     map[SheetName]SheetInfo `json:"sheets"`
}

// SheetInfo is the externally visible summary of a SheetState
type SheetInfo struct {
	State    LoadState `json:"state"`
	Error    string    `json:"error,omitempty"`
	Records  int       `json:"records"`
	Rejected int       `json:"rejected"`
}

// Info summarizes a sheet state for API responses
func (s SheetState[T]) Info() SheetInfo {
	info := SheetInfo{State: s.State, Error: s.Error}
	if s.Result != nil {
		info.Records = len(s.Result.Records)
		info.Rejected = len(s.Result.Rejected)
	}
	return info
}
