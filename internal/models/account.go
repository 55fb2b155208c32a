package models

import (
	"github.com/shopspring/decimal"
)

// AccountType is the account type as written in the accounts sheet
type AccountType string

const (
	AccountTypeChecking AccountType = "corrente"
	AccountTypeSavings  AccountType = "poupanca"
)

// Known reports whether the value belongs to the closed set
func (t AccountType) Known() bool {
	return t == AccountTypeChecking || t == AccountTypeSavings
}

// Label returns the English name of a known type, or the raw value otherwise
func (t AccountType) Label() string {
	switch t {
	case AccountTypeChecking:
		return "checking"
	case AccountTypeSavings:
		return "savings"
	default:
		return string(t)
	}
}

// Account is one normalized row of the accounts sheet.
// OwnerTaxID joins against Client.TaxID; both are digits-only.
type Account struct {
	ID              string          `json:"id"`
	OwnerTaxID      string          `json:"owner_tax_id"`
	Type            AccountType     `json:"type"`
	Balance         decimal.Decimal `json:"balance"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
}
