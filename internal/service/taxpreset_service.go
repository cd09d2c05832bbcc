package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hartley-interiors/studio-server/internal/storage"
)

// TaxPreset is a named tax rate offered in the transaction form.
type TaxPreset struct {
	ID   uuid.UUID
	Name string
	Rate decimal.Decimal
}

// TaxPresetService lists the tax rate presets.
type TaxPresetService struct {
	storage *storage.Storage
}

// NewTaxPresetService creates a new TaxPresetService.
func NewTaxPresetService(store *storage.Storage) *TaxPresetService {
	return &TaxPresetService{storage: store}
}

// ListTaxPresets returns the available presets in display order.
func (s *TaxPresetService) ListTaxPresets(ctx context.Context) ([]TaxPreset, error) {
	rows, err := s.storage.TaxPresets.List(ctx)
	if err != nil {
		return nil, err
	}
	converted := make([]TaxPreset, len(rows))
	for i, row := range rows {
		converted[i] = TaxPreset{ID: row.ID, Name: row.Name, Rate: row.Rate}
	}
	return converted, nil
}
