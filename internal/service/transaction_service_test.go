package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hartley-interiors/studio-server/internal/storage"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
)

func newTestTransactionService(table *mockTransactionTable) *TransactionService {
	return NewTransactionService(&storage.Storage{Transactions: table})
}

func makeStorageRows(n int, createdAt time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, n)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:        uuid.Must(uuid.NewV4()),
			Source:    "Vendor",
			Amount:    decimal.RequireFromString("10.00"),
			Status:    TransactionStatusPending,
			CreatedAt: createdAt,
		}
	}
	return rows
}

func TestGetTransaction_Success(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)
	id := uuid.Must(uuid.NewV4())

	table.On("FindByID", mock.Anything, id).Return(&transaction.Transaction{
		ID:     id,
		Source: "West Elm",
		Amount: decimal.RequireFromString("99.00"),
	}, nil)

	tx, err := svc.GetTransaction(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, id, tx.ID)
	assert.Equal(t, "West Elm", tx.Source)
}

func TestListTransactions_FirstPage_NoCursor(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)
	createdAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	// limit+1 rows come back, so a next cursor is minted.
	table.On("List", mock.Anything, mock.MatchedBy(func(filter *transaction.TransactionFilter) bool {
		return filter.Limit == 20 && filter.Offset == 0 && filter.MaxCreationTime == nil
	})).Return(makeStorageRows(21, createdAt), nil)

	transactions, nextCursor, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Len(t, transactions, 20)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, 20, nextCursor.Position)
	assert.Equal(t, 20, nextCursor.Limit)
	assert.True(t, nextCursor.MaxCreationTime.Equal(createdAt))
}

func TestListTransactions_LastPage_NoNextCursor(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)

	table.On("List", mock.Anything, mock.Anything).
		Return(makeStorageRows(5, time.Now()), nil)

	transactions, nextCursor, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Len(t, transactions, 5)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_WithCursor_KeepsMaxCreationTime(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)
	maxCreationTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	table.On("List", mock.Anything, mock.MatchedBy(func(filter *transaction.TransactionFilter) bool {
		return filter.Limit == 10 && filter.Offset == 10 &&
			filter.MaxCreationTime != nil && filter.MaxCreationTime.Equal(maxCreationTime)
	})).Return(makeStorageRows(11, maxCreationTime.Add(-time.Hour)), nil)

	_, nextCursor, err := svc.ListTransactions(context.Background(), nil, &TransactionCursor{
		Position:        10,
		Limit:           10,
		MaxCreationTime: maxCreationTime,
	})

	assert.NoError(t, err)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, 20, nextCursor.Position)
	// The time bound locked in on the first page carries forward unchanged.
	assert.True(t, nextCursor.MaxCreationTime.Equal(maxCreationTime))
}

func TestListTransactions_ProjectFilterPassedThrough(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)
	projectID := uuid.Must(uuid.NewV4())

	table.On("List", mock.Anything, mock.MatchedBy(func(filter *transaction.TransactionFilter) bool {
		return filter.ProjectID != nil && *filter.ProjectID == projectID
	})).Return(makeStorageRows(1, time.Now()), nil)

	_, _, err := svc.ListTransactions(context.Background(), &projectID, nil)

	assert.NoError(t, err)
	table.AssertExpectations(t)
}

func TestListTransactions_Empty(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)

	table.On("List", mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{}, nil)

	transactions, nextCursor, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_StorageError(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)

	table.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, _, err := svc.ListTransactions(context.Background(), nil, nil)

	assert.Error(t, err)
}

func TestUpdateStatus_PassesThrough(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newTestTransactionService(table)
	id := uuid.Must(uuid.NewV4())

	table.On("UpdateStatus", mock.Anything, id, TransactionStatusCompleted).Return(nil)

	assert.NoError(t, svc.UpdateStatus(context.Background(), id, TransactionStatusCompleted))
	table.AssertExpectations(t)
}
