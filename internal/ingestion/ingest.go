package ingestion

import (
	"fmt"

	"client-directory/internal/models"
)

// BuildFunc converts one decoded row into a record. It returns the record, the
// warnings for fields that were degraded, and a non-nil rejection when the row
// must be excluded.
type BuildFunc[T any] func(Row) (T, []models.RowError, *models.RowError)

// Ingest decodes text and builds one record per row in source order. Decode
// failures and rejected rows are reported in Rejected; they never abort the rest
// of the sheet. The only error is a payload without a header line.
func Ingest[T any](layout Layout, text string, build BuildFunc[T]) (*models.SheetResult[T], error) {
	result := models.NewSheetResult[T](layout.Sheet)

	table, err := Decode(text)
	if err != nil {
		return result, fmt.Errorf("decode %s sheet: %w", layout.Sheet, err)
	}

	if len(table.Header) < len(layout.Columns) {
		result.Warnings = append(result.Warnings, models.RowError{
			Sheet:  layout.Sheet,
			Line:   table.HeaderLine,
			Reason: fmt.Sprintf("header has %d columns, layout v%d expects %d", len(table.Header), layout.Version, len(layout.Columns)),
		})
	}

	for _, lineErr := range table.Errors {
		result.Rejected = append(result.Rejected, models.RowError{
			Sheet:  layout.Sheet,
			Line:   lineErr.Line,
			Reason: lineErr.Err.Error(),
		})
	}

	for _, row := range table.Rows {
		record, warnings, rejected := build(row)
		if rejected != nil {
			result.Rejected = append(result.Rejected, *rejected)
			continue
		}
		result.Records = append(result.Records, record)
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

// DecodeClients ingests the clients sheet
func DecodeClients(text string) (*models.SheetResult[models.Client], error) {
	return Ingest(ClientLayout, text, BuildClient)
}

// DecodeAccounts ingests the accounts sheet
func DecodeAccounts(text string) (*models.SheetResult[models.Account], error) {
	return Ingest(AccountLayout, text, BuildAccount)
}

// DecodeBranches ingests the branches sheet
func DecodeBranches(text string) (*models.SheetResult[models.Branch], error) {
	return Ingest(BranchLayout, text, BuildBranch)
}
