package item

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockBackend is a mock for allocationBackend.
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Allocate(ctx context.Context, itemIDs []uuid.UUID, projectID uuid.UUID, space string) error {
	args := m.Called(ctx, itemIDs, projectID, space)
	return args.Error(0)
}

func newAllocateTestAPI(t *testing.T, backend allocationBackend) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAllocateItemsHandler(backend).Register(api)
	return api
}

func TestHTTP_AllocateItems_Success(t *testing.T) {
	projectID := uuid.Must(uuid.NewV4())
	first := uuid.Must(uuid.NewV4())
	second := uuid.Must(uuid.NewV4())

	backend := new(mockBackend)
	backend.On("Allocate", mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 2
	}), projectID, "Primary Bedroom").Return(nil)

	resp := newAllocateTestAPI(t, backend).Post("/v1/item/allocate", AllocateItemsBody{
		ItemIDs:   []string{first.String(), second.String()},
		ProjectID: projectID.String(),
		Space:     "Primary Bedroom",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AllocateItemsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Allocated)
	backend.AssertExpectations(t)
}

func TestHTTP_AllocateItems_BadItemID(t *testing.T) {
	backend := new(mockBackend)

	resp := newAllocateTestAPI(t, backend).Post("/v1/item/allocate", AllocateItemsBody{
		ItemIDs:   []string{"not-a-uuid"},
		ProjectID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	backend.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_AllocateItems_BackendFailure(t *testing.T) {
	backend := new(mockBackend)
	backend.On("Allocate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("deadlock detected"))

	resp := newAllocateTestAPI(t, backend).Post("/v1/item/allocate", AllocateItemsBody{
		ItemIDs:   []string{uuid.Must(uuid.NewV4()).String()},
		ProjectID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
