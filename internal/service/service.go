package service

import (
	"github.com/hartley-interiors/studio-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Item        *ItemService
	Project     *ProjectService
	TaxPreset   *TaxPresetService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Item:        NewItemService(store),
		Project:     NewProjectService(store),
		TaxPreset:   NewTaxPresetService(store),
	}
}
