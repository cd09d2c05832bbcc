package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/storage"
	"github.com/hartley-interiors/studio-server/internal/storage/media"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := storageTransactionToTransaction(row)
	return &converted, nil
}

// ListTransactions returns a page of a project's transactions using
// cursor-based pagination. A nil projectID lists business-inventory
// transactions as well.
func (s *TransactionService) ListTransactions(ctx context.Context, projectID *uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &transaction.TransactionFilter{
		ProjectID:       projectID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = storageTransactionToTransaction(row)
	}

	return convertedTransactions, nextCursor, nil
}

// SetReceiptImages patches the transaction's receipt image list.
func (s *TransactionService) SetReceiptImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	return s.storage.Transactions.SetReceiptImages(ctx, id, images)
}

// SetOtherImages patches the transaction's other image list.
func (s *TransactionService) SetOtherImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	return s.storage.Transactions.SetOtherImages(ctx, id, images)
}

// UpdateStatus moves a transaction through its status lifecycle.
func (s *TransactionService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.storage.Transactions.UpdateStatus(ctx, id, status)
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.storage.Transactions.Delete(ctx, id)
}

func storageTransactionToTransaction(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:                row.ID,
		ProjectID:         row.ProjectID,
		Source:            row.Source,
		TransactionType:   row.TransactionType,
		PaymentMethod:     row.PaymentMethod,
		BudgetCategory:    row.BudgetCategory,
		CategoryID:        row.CategoryID,
		Amount:            row.Amount,
		Subtotal:          row.Subtotal,
		TaxRatePreset:     row.TaxRatePreset,
		ReimbursementType: row.ReimbursementType,
		SystemRef:         row.SystemRef,
		Status:            row.Status,
		Notes:             row.Notes,
		TransactionDate:   row.TransactionDate,
		ReceiptImages:     row.ReceiptImages,
		OtherImages:       row.OtherImages,
		CreatedAt:         row.CreatedAt,
	}
}
