package workflow

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/uploads"
)

// TransactionDraft is the transaction form as submitted, before validation.
// Amount and Subtotal are the raw entered strings. Staged files are
// transient: they never go into the create payload, they are uploaded after
// the transaction has a durable ID.
type TransactionDraft struct {
	ProjectID         *uuid.UUID
	Source            string
	TransactionType   string
	PaymentMethod     string
	BudgetCategory    string
	CategoryID        *uuid.UUID
	Amount            string
	Subtotal          string
	TaxRatePreset     string
	ReimbursementType string
	Notes             string
	TransactionDate   time.Time

	ReceiptFiles []uploads.StagedFile
	OtherFiles   []uploads.StagedFile
}

// ItemDraft is one line item on the transaction form. PrimaryFilename
// carries the form's primary-image designation; the uploaded file whose
// filename matches it becomes the item's primary image.
type ItemDraft struct {
	Description   string
	SKU           string
	Source        string
	PurchasePrice string
	ProjectPrice  string
	MarketValue   string
	Space         string
	Notes         string

	PrimaryFilename string
	Files           []uploads.StagedFile
}
