package item

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
)

// DeleteItemInput is the Huma input for deleting an item.
type DeleteItemInput struct {
	ID string `path:"id" format:"uuid" doc:"Item UUID"`
}

// DeleteItemOutput is the Huma output for deleting an item.
type DeleteItemOutput struct {
	Status int
}

type itemDeleter interface {
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

// DeleteItemHandler handles DELETE /v1/item/{id}.
type DeleteItemHandler struct {
	ItemService itemDeleter
}

// NewDeleteItemHandler creates a new DeleteItemHandler.
func NewDeleteItemHandler(svc itemDeleter) *DeleteItemHandler {
	return &DeleteItemHandler{ItemService: svc}
}

// Register registers the delete item endpoint with the Huma API.
func (h *DeleteItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-item",
		Method:      http.MethodDelete,
		Path:        "/v1/item/{id}",
		Summary:     "Delete item",
		Tags:        []string{"Items"},
	}, h.handle)
}

func (h *DeleteItemHandler) handle(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid item id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteItemMs")
	}
	err = h.ItemService.DeleteItem(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.NewError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete item", err)
	}

	return &DeleteItemOutput{Status: http.StatusNoContent}, nil
}
