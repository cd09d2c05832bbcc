package item

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/service"
)

// GetItemInput is the Huma input for fetching one item.
type GetItemInput struct {
	ID string `path:"id" format:"uuid" doc:"Item UUID"`
}

// GetItemOutput is the Huma output for fetching one item.
type GetItemOutput struct {
	Body Item
}

// itemGetter is the interface for fetching one item.
type itemGetter interface {
	GetItem(ctx context.Context, id uuid.UUID) (*service.Item, error)
}

// GetItemHandler handles GET /v1/item/{id}.
type GetItemHandler struct {
	ItemService itemGetter
}

// NewGetItemHandler creates a new GetItemHandler.
func NewGetItemHandler(svc itemGetter) *GetItemHandler {
	return &GetItemHandler{ItemService: svc}
}

// Register registers the get item endpoint with the Huma API.
func (h *GetItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/v1/item/{id}",
		Summary:     "Get item",
		Description: "Returns one item with its attached images.",
		Tags:        []string{"Items"},
	}, h.handle)
}

func (h *GetItemHandler) handle(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid item id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getItemMs")
	}
	it, err := h.ItemService.GetItem(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.NewError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get item", err)
	}

	return &GetItemOutput{Body: itemToAPI(*it)}, nil
}
