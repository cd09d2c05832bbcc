package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryAllocation is one budget-category line on a project.
type CategoryAllocation struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal
}

// Project represents a client project in the service layer.
type Project struct {
	ID               uuid.UUID
	Name             string
	ClientName       string
	Budget           decimal.Decimal
	DesignFee        decimal.Decimal
	BudgetCategories []CategoryAllocation
	CreatedAt        time.Time
}

// InvoiceLine is one billing transaction on the project invoice view.
type InvoiceLine struct {
	TransactionID     uuid.UUID
	Source            string
	Amount            decimal.Decimal
	ReimbursementType string
	TransactionDate   time.Time
}

// ProjectInvoice is the invoice view for a project: its billing transactions
// and the net owed in each direction.
type ProjectInvoice struct {
	ProjectID         uuid.UUID
	ProjectName       string
	ClientName        string
	Lines             []InvoiceLine
	ClientOwesCompany decimal.Decimal
	CompanyOwesClient decimal.Decimal
}
