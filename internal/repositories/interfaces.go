package repositories

import (
	"context"

	"client-directory/internal/models"
)

// SheetSourceInterface defines the contract for reading the raw CSV text of one logical sheet
type SheetSourceInterface interface {
	FetchCSV(ctx context.Context, sheet models.SheetName) (string, error)
}
