package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

// Transaction status lifecycle.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// Transaction types.
const (
	TransactionTypePurchase    = "Purchase"
	TransactionTypeToInventory = "To Inventory"
	TransactionTypeReturn      = "Return"
)

// Transaction represents a transaction in the service layer. ProjectID is
// nil for business-inventory transactions.
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

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
