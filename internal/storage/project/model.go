package project

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryAllocation is one budget-category line on a project.
type CategoryAllocation struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Project represents a client project record.
type Project struct {
	ID               uuid.UUID
	Name             string
	ClientName       string
	Budget           decimal.Decimal
	DesignFee        decimal.Decimal
	BudgetCategories []CategoryAllocation
	CreatedAt        time.Time
}

// ProjectCreate is the input for creating a new project.
type ProjectCreate struct {
	Name             string
	ClientName       string
	Budget           decimal.Decimal
	DesignFee        decimal.Decimal
	BudgetCategories []CategoryAllocation
}

// ProjectUpdate carries the mutable project fields, nil means unchanged.
type ProjectUpdate struct {
	Name             *string
	ClientName       *string
	Budget           *decimal.Decimal
	DesignFee        *decimal.Decimal
	BudgetCategories []CategoryAllocation
}

// ProjectFilter specifies filters for listing projects.
type ProjectFilter struct {
	Limit  int
	Offset int
}

// IProjectTable defines the interface for project storage operations.
type IProjectTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Insert(ctx context.Context, create *ProjectCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *ProjectFilter) ([]*Project, error)
	Update(ctx context.Context, id uuid.UUID, update *ProjectUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
