package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

// Item represents an inventory item or transaction line item in the service
// layer. Price fields are the raw entered strings; financial summaries parse
// them leniently.
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
