package transaction

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStatusUpdater struct {
	mock.Mock
}

func (m *mockStatusUpdater) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func newUpdateStatusTestAPI(t *testing.T, updater statusUpdater, publisher changePublisher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateStatusHandler(updater, publisher).Register(api)
	return api
}

func TestUpdateStatus_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	updater := &mockStatusUpdater{}
	updater.On("UpdateStatus", mock.Anything, id, "completed").Return(nil)
	publisher := &mockPublisher{}
	publisher.On("Publish", "updated", "transaction", id.String()).Return()

	api := newUpdateStatusTestAPI(t, updater, publisher)
	resp := api.Patch("/v1/transaction/"+id.String(), map[string]any{
		"status": "completed",
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	updater.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	updater := &mockStatusUpdater{}
	publisher := &mockPublisher{}

	api := newUpdateStatusTestAPI(t, updater, publisher)
	resp := api.Patch("/v1/transaction/"+id.String(), map[string]any{
		"status": "archived",
	})

	assert.NotEqual(t, http.StatusNoContent, resp.Code)
	updater.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
