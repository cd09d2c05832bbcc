package item

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/workflow"
)

// AllocateItemsBody is the request body for allocating inventory items to a
// project.
type AllocateItemsBody struct {
	ItemIDs   []string `json:"itemIDs" required:"true" minItems:"1" doc:"Items to allocate"`
	ProjectID string   `json:"projectID" required:"true" format:"uuid" doc:"Target project"`
	Space     string   `json:"space,omitempty" doc:"Room or space to place every item in, leaves spaces unchanged when empty"`
}

// AllocateItemsInput is the Huma input for allocating items.
type AllocateItemsInput struct {
	Body AllocateItemsBody
}

// AllocateItemsResponseBody is the response body for allocating items.
type AllocateItemsResponseBody struct {
	Allocated int `json:"allocated" doc:"Number of items moved"`
}

// AllocateItemsOutput is the Huma output for allocating items.
type AllocateItemsOutput struct {
	Body AllocateItemsResponseBody
}

// allocationBackend moves a batch of items onto a project in one call.
type allocationBackend interface {
	Allocate(ctx context.Context, itemIDs []uuid.UUID, projectID uuid.UUID, space string) error
}

// AllocateItemsHandler handles POST /v1/item/allocate. Each request runs a
// fresh batch allocation: the selection is the request's itemIDs, and the
// whole batch either moves or stays.
type AllocateItemsHandler struct {
	Backend allocationBackend
}

// NewAllocateItemsHandler creates a new AllocateItemsHandler.
func NewAllocateItemsHandler(backend allocationBackend) *AllocateItemsHandler {
	return &AllocateItemsHandler{Backend: backend}
}

// Register registers the allocate items endpoint with the Huma API.
func (h *AllocateItemsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "allocate-items",
		Method:      http.MethodPost,
		Path:        "/v1/item/allocate",
		Summary:     "Allocate items to a project",
		Description: "Moves a batch of business-inventory items onto a project, all or nothing.",
		Tags:        []string{"Items"},
	}, h.handle)
}

func (h *AllocateItemsHandler) handle(ctx context.Context, input *AllocateItemsInput) (*AllocateItemsOutput, error) {
	logData := logging.GetLogData(ctx)

	projectID, err := uuid.FromString(input.Body.ProjectID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid projectID", err)
	}

	batch := workflow.NewBatchAllocator(h.Backend)
	for _, raw := range input.Body.ItemIDs {
		itemID, parseErr := uuid.FromString(raw)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid item id", parseErr)
		}
		batch.Select(itemID)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("allocateItemsMs")
		logData.AddData("allocateCount", len(input.Body.ItemIDs))
	}
	err = batch.Allocate(ctx, projectID, input.Body.Space)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, workflow.ErrNoSelection) {
		return nil, huma.NewError(http.StatusBadRequest, "no items selected")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, batch.Alert(), err)
	}

	return &AllocateItemsOutput{
		Body: AllocateItemsResponseBody{Allocated: len(input.Body.ItemIDs)},
	}, nil
}
