package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hartley-interiors/studio-server/internal/storage"
	"github.com/hartley-interiors/studio-server/internal/storage/item"
)

func newTestItemService(table *mockItemTable) *ItemService {
	return NewItemService(&storage.Storage{Items: table})
}

func TestListBusinessInventory_FiltersUnallocated(t *testing.T) {
	table := new(mockItemTable)
	svc := newTestItemService(table)

	table.On("List", mock.Anything, mock.MatchedBy(func(filter *item.ItemFilter) bool {
		return filter.BusinessInventory && filter.ProjectID == nil
	})).Return([]*item.Item{
		{ID: uuid.Must(uuid.NewV4()), Description: "Unallocated armchair", Disposition: item.DispositionInventory},
	}, nil)

	items, err := svc.ListBusinessInventory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Unallocated armchair", items[0].Description)
	table.AssertExpectations(t)
}

func TestListTransactionItems_FiltersByTransaction(t *testing.T) {
	table := new(mockItemTable)
	svc := newTestItemService(table)
	transactionID := uuid.Must(uuid.NewV4())

	table.On("List", mock.Anything, mock.MatchedBy(func(filter *item.ItemFilter) bool {
		return filter.TransactionID != nil && *filter.TransactionID == transactionID
	})).Return([]*item.Item{
		{ID: uuid.Must(uuid.NewV4()), Description: "First"},
		{ID: uuid.Must(uuid.NewV4()), Description: "Second"},
	}, nil)

	items, err := svc.ListTransactionItems(context.Background(), transactionID)

	assert.NoError(t, err)
	// Rows come back in creation order, preserved here for positional
	// matching against submitted drafts.
	assert.Equal(t, "First", items[0].Description)
	assert.Equal(t, "Second", items[1].Description)
}

func TestSetDisposition_PassesThrough(t *testing.T) {
	table := new(mockItemTable)
	svc := newTestItemService(table)
	id := uuid.Must(uuid.NewV4())

	table.On("SetDisposition", mock.Anything, id, item.DispositionToReturn).Return(nil)

	assert.NoError(t, svc.SetDisposition(context.Background(), id, item.DispositionToReturn))
	table.AssertExpectations(t)
}
