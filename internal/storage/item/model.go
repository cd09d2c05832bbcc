package item

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

// Disposition values an item moves through after purchase.
const (
	DispositionKeep      = "keep"
	DispositionToReturn  = "to-return"
	DispositionReturned  = "returned"
	DispositionInventory = "inventory"
)

// Item represents an inventory item or transaction line item. Price fields
// are stored as entered; missing or unparseable values count as zero in the
// financial summaries.
type Item struct {
	ID            uuid.UUID
	ProjectID     *uuid.UUID
	TransactionID *uuid.UUID
	Description   string
	SKU           string
	Source        string
	PurchasePrice string
	ProjectPrice  string
	MarketValue   string
	Space         string
	Notes         string
	Bookmarked    bool
	Disposition   string
	Images        []media.Image
	CreatedAt     time.Time
}

// ItemCreate is the input for creating a new item.
type ItemCreate struct {
	ProjectID     *uuid.UUID
	TransactionID *uuid.UUID
	Description   string
	SKU           string
	Source        string
	PurchasePrice string
	ProjectPrice  string
	MarketValue   string
	Space         string
	Notes         string
	Bookmarked    bool
	Disposition   string
}

// ItemFilter specifies filters for listing items.
type ItemFilter struct {
	ProjectID         *uuid.UUID
	TransactionID     *uuid.UUID
	BusinessInventory bool // project_id IS NULL
	Limit             int
	Offset            int
}

// IItemTable defines the interface for item storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IItemTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Insert(ctx context.Context, create *ItemCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *ItemFilter) ([]*Item, error)
	SetImages(ctx context.Context, id uuid.UUID, images []media.Image) error
	SetDisposition(ctx context.Context, id uuid.UUID, disposition string) error
	SetBookmarked(ctx context.Context, id uuid.UUID, bookmarked bool) error
	AllocateToProject(ctx context.Context, ids []uuid.UUID, projectID uuid.UUID, space string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
