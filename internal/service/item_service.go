package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/storage"
	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

// ItemService handles item business logic.
type ItemService struct {
	storage *storage.Storage
}

// NewItemService creates a new ItemService.
func NewItemService(store *storage.Storage) *ItemService {
	return &ItemService{storage: store}
}

// GetItem retrieves an item by ID.
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	row, err := s.storage.Items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := storageItemToItem(row)
	return &converted, nil
}

// ListProjectItems returns all items allocated to a project.
func (s *ItemService) ListProjectItems(ctx context.Context, projectID uuid.UUID) ([]Item, error) {
	rows, err := s.storage.Items.List(ctx, &item.ItemFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}
	return storageItemsToItems(rows), nil
}

// ListTransactionItems returns a transaction's line items in creation order,
// which is the order the drafts were submitted in.
func (s *ItemService) ListTransactionItems(ctx context.Context, transactionID uuid.UUID) ([]Item, error) {
	rows, err := s.storage.Items.List(ctx, &item.ItemFilter{TransactionID: &transactionID})
	if err != nil {
		return nil, err
	}
	return storageItemsToItems(rows), nil
}

// ListBusinessInventory returns items not allocated to any project.
func (s *ItemService) ListBusinessInventory(ctx context.Context) ([]Item, error) {
	rows, err := s.storage.Items.List(ctx, &item.ItemFilter{BusinessInventory: true})
	if err != nil {
		return nil, err
	}
	return storageItemsToItems(rows), nil
}

// SetImages patches the item's image list.
func (s *ItemService) SetImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	return s.storage.Items.SetImages(ctx, id, images)
}

// SetDisposition updates an item's keep/to-return/returned/inventory state.
func (s *ItemService) SetDisposition(ctx context.Context, id uuid.UUID, disposition string) error {
	return s.storage.Items.SetDisposition(ctx, id, disposition)
}

// SetBookmarked toggles an item's bookmark flag.
func (s *ItemService) SetBookmarked(ctx context.Context, id uuid.UUID, bookmarked bool) error {
	return s.storage.Items.SetBookmarked(ctx, id, bookmarked)
}

// DeleteItem removes an item.
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.storage.Items.Delete(ctx, id)
}

func storageItemToItem(row *item.Item) Item {
	return Item{
		ID:            row.ID,
		ProjectID:     row.ProjectID,
		TransactionID: row.TransactionID,
		Description:   row.Description,
		SKU:           row.SKU,
		Source:        row.Source,
		PurchasePrice: row.PurchasePrice,
		ProjectPrice:  row.ProjectPrice,
		MarketValue:   row.MarketValue,
		Space:         row.Space,
		Notes:         row.Notes,
		Bookmarked:    row.Bookmarked,
		Disposition:   row.Disposition,
		Images:        row.Images,
		CreatedAt:     row.CreatedAt,
	}
}

func storageItemsToItems(rows []*item.Item) []Item {
	converted := make([]Item, len(rows))
	for i, row := range rows {
		converted[i] = storageItemToItem(row)
	}
	return converted
}
