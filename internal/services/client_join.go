package services

import (
	"client-directory/internal/models"
)

// FindClient returns the client with the given id, first match in source order
func FindClient(clients []models.Client, id string) (models.Client, bool) {
	for _, client := range clients {
		if client.ID == id {
			return client, true
		}
	}
	return models.Client{}, false
}

// AccountsForClient returns every account whose owner tax id equals taxID, in
// source order. An empty tax id links nothing.
func AccountsForClient(accounts []models.Account, taxID string) []models.Account {
	linked := []models.Account{}
	if taxID == "" {
		return linked
	}
	for _, account := range accounts {
		if account.OwnerTaxID == taxID {
			linked = append(linked, account)
		}
	}
	return linked
}

// BranchForCode returns the first branch in source order with the given code
func BranchForCode(branches []models.Branch, code int) (*models.Branch, bool) {
	for i := range branches {
		if branches[i].Code == code {
			branch := branches[i]
			return &branch, true
		}
	}
	return nil, false
}

// JoinClient builds the detail view of client from the given account and branch states.
// A relation whose sheet did not load keeps that sheet's state so the caller can
// tell "none linked" from "could not load".
func JoinClient(
	client models.Client,
	accounts models.SheetState[models.Account],
	branches models.SheetState[models.Branch],
) *models.ClientDetail {
	detail := &models.ClientDetail{
		Client:        client,
		Accounts:      AccountsForClient(accounts.Records(), client.TaxID),
		AccountsSheet: accounts.Info(),
		BranchSheet:   branches.Info(),
	}
	if branch, ok := BranchForCode(branches.Records(), client.BranchCode); ok {
		detail.Branch = branch
	}
	return detail
}

// accountIndex groups accounts by owner tax id, keeping source order, so the
// list can be summarized without rescanning accounts for every client
func accountIndex(accounts []models.Account) map[string][]models.Account {
	idx := make(map[string][]models.Account)
	for _, account := range accounts {
		if account.OwnerTaxID == "" {
			continue
		}
		idx[account.OwnerTaxID] = append(idx[account.OwnerTaxID], account)
	}
	return idx
}

// branchIndex maps a code to its first branch in source order
func branchIndex(branches []models.Branch) map[int]models.Branch {
	idx := make(map[int]models.Branch, len(branches))
	for _, branch := range branches {
		if _, seen := idx[branch.Code]; !seen {
			idx[branch.Code] = branch
		}
	}
	return idx
}
