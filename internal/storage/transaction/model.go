package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

// Transaction represents a transaction record. ProjectID is nil for
// business-inventory transactions that are not tied to a project.
type Transaction struct {
	ID                uuid.UUID
	ProjectID         *uuid.UUID
	Source            string
	TransactionType   string
	PaymentMethod     string
	BudgetCategory    string
	CategoryID        *uuid.UUID
	Amount            decimal.Decimal
	Subtotal          decimal.NullDecimal
	TaxRatePreset     string
	ReimbursementType string
	SystemRef         string
	Status            string
	Notes             string
	TransactionDate   time.Time
	ReceiptImages     []media.Image
	OtherImages       []media.Image
	CreatedAt         time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	ProjectID         *uuid.UUID
	Source            string
	TransactionType   string
	PaymentMethod     string
	BudgetCategory    string
	CategoryID        *uuid.UUID
	Amount            decimal.Decimal
	Subtotal          decimal.NullDecimal
	TaxRatePreset     string
	ReimbursementType string
	SystemRef         string
	Status            string
	Notes             string
	TransactionDate   time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	ProjectID       *uuid.UUID
	Status          string
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	SetReceiptImages(ctx context.Context, id uuid.UUID, images []media.Image) error
	SetOtherImages(ctx context.Context, id uuid.UUID, images []media.Image) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
