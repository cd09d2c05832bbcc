package transaction

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockDeleter is a mock for transactionDeleter.
type mockDeleter struct {
	mock.Mock
}

func (m *mockDeleter) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newDeleteTestAPI(t *testing.T, deleter transactionDeleter, publisher changePublisher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionHandler(deleter, publisher).Register(api)
	return api
}

func TestDeleteTransaction_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	deleter := &mockDeleter{}
	deleter.On("DeleteTransaction", mock.Anything, id).Return(nil)
	publisher := &mockPublisher{}
	publisher.On("Publish", "deleted", "transaction", id.String()).Return()

	api := newDeleteTestAPI(t, deleter, publisher)
	resp := api.Delete("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	deleter.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	deleter := &mockDeleter{}
	deleter.On("DeleteTransaction", mock.Anything, id).Return(sql.ErrNoRows)
	publisher := &mockPublisher{}

	api := newDeleteTestAPI(t, deleter, publisher)
	resp := api.Delete("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTransaction_ServiceError(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	deleter := &mockDeleter{}
	deleter.On("DeleteTransaction", mock.Anything, id).Return(errors.New("connection reset"))
	publisher := &mockPublisher{}

	api := newDeleteTestAPI(t, deleter, publisher)
	resp := api.Delete("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
