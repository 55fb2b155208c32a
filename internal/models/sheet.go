package models

import (
	"fmt"
	"time"
)

// SheetName is the logical name of one tab of the remote spreadsheet
type SheetName string

const (
	SheetClients  SheetName = "clients"
	SheetAccounts SheetName = "accounts"
	SheetBranches SheetName = "branches"
)

// AllSheets lists every logical sheet in a stable order
var AllSheets = []SheetName{SheetClients, SheetAccounts, SheetBranches}

// IsValid reports whether the name is one of the known sheets
func (s SheetName) IsValid() bool {
	switch s {
	case SheetClients, SheetAccounts, SheetBranches:
		return true
	}
	return false
}

// LoadState tells a consumer whether a sheet is pending, failed or available
type LoadState string

const (
	LoadStateLoading LoadState = "loading"
	LoadStateFailed  LoadState = "failed"
	LoadStateLoaded  LoadState = "loaded"
)

// RowError is a diagnostic for a single source line that failed to decode or normalize.
// Line is the 1-based line number in the sheet payload, header included.
type RowError struct {
	Sheet  SheetName `json:"sheet"`
	Line   int       `json:"line"`
	Column string    `json:"column,omitempty"`
	Value  string    `json:"value,omitempty"`
	Reason string    `json:"reason"`
}

func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s line %d column %s: %s", e.Sheet, e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s line %d: %s", e.Sheet, e.Line, e.Reason)
}

// SheetResult is the typed output of one fetch of one sheet.
// Rejected rows were excluded from Records; Warnings belong to records that were kept
// with a degraded field.
type SheetResult[T any] struct {
	Sheet     SheetName  `json:"sheet"`
	Records   []T        `json:"records"`
	Rejected  []RowError `json:"rejected"`
	Warnings  []RowError `json:"warnings"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// NewSheetResult returns an empty, non-nil result for the sheet
func NewSheetResult[T any](sheet SheetName) *SheetResult[T] {
	return &SheetResult[T]{
		Sheet:    sheet,
		Records:  []T{},
		Rejected: []RowError{},
		Warnings: []RowError{},
	}
}

// SheetState pairs a sheet result with its load state, so "failed to load"
// and "loaded, zero rows" stay distinguishable.
type SheetState[T any] struct {
	State  LoadState       `json:"state"`
	Error  string          `json:"error,omitempty"`
	Result *SheetResult[T] `json:"-"`
}

// Records returns the loaded records, or an empty slice when the sheet is not loaded
func (s SheetState[T]) Records() []T {
	if s.State != LoadStateLoaded || s.Result == nil {
		return []T{}
	}
	return s.Result.Records
}

// LoadedState builds the state of a successful fetch
func LoadedState[T any](result *SheetResult[T]) SheetState[T] {
	return SheetState[T]{State: LoadStateLoaded, Result: result}
}

// FailedState builds the state of a failed fetch
func FailedState[T any](sheet SheetName, err error) SheetState[T] {
	return SheetState[T]{State: LoadStateFailed, Error: err.Error(), Result: NewSheetResult[T](sheet)}
}
