package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/media"
	"github.com/hartley-interiors/studio-server/internal/storage/project"
	"github.com/hartley-interiors/studio-server/internal/storage/taxpreset"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
)

// mockTransactionTable is a hand-written mock for transaction.ITransactionTable.
type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionTable) SetReceiptImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	args := m.Called(ctx, id, images)
	return args.Error(0)
}

func (m *mockTransactionTable) SetOtherImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	args := m.Called(ctx, id, images)
	return args.Error(0)
}

func (m *mockTransactionTable) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockTransactionTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockItemTable is a hand-written mock for item.IItemTable.
type mockItemTable struct {
	mock.Mock
}

func (m *mockItemTable) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *mockItemTable) Insert(ctx context.Context, create *item.ItemCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockItemTable) List(ctx context.Context, filter *item.ItemFilter) ([]*item.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

func (m *mockItemTable) SetImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	args := m.Called(ctx, id, images)
	return args.Error(0)
}

func (m *mockItemTable) SetDisposition(ctx context.Context, id uuid.UUID, disposition string) error {
	args := m.Called(ctx, id, disposition)
	return args.Error(0)
}

func (m *mockItemTable) SetBookmarked(ctx context.Context, id uuid.UUID, bookmarked bool) error {
	args := m.Called(ctx, id, bookmarked)
	return args.Error(0)
}

func (m *mockItemTable) AllocateToProject(ctx context.Context, itemIDs []uuid.UUID, projectID uuid.UUID, space string) error {
	args := m.Called(ctx, itemIDs, projectID, space)
	return args.Error(0)
}

func (m *mockItemTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockProjectTable is a hand-written mock for project.IProjectTable.
type mockProjectTable struct {
	mock.Mock
}

func (m *mockProjectTable) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *mockProjectTable) Insert(ctx context.Context, create *project.ProjectCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockProjectTable) List(ctx context.Context, filter *project.ProjectFilter) ([]*project.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*project.Project), args.Error(1)
}

func (m *mockProjectTable) Update(ctx context.Context, id uuid.UUID, update *project.ProjectUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockProjectTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockTaxPresetTable is a hand-written mock for taxpreset.ITaxPresetTable.
type mockTaxPresetTable struct {
	mock.Mock
}

func (m *mockTaxPresetTable) List(ctx context.Context) ([]*taxpreset.TaxPreset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*taxpreset.TaxPreset), args.Error(1)
}
