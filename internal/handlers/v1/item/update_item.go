package item

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/storage/item"
)

// UpdateItemBody is the request body for updating an item's flags. Absent
// fields stay unchanged.
type UpdateItemBody struct {
	Disposition *string `json:"disposition,omitempty" enum:"keep,to-return,returned,inventory" doc:"New disposition"`
	Bookmarked  *bool   `json:"bookmarked,omitempty" doc:"Bookmark flag"`
}

// UpdateItemInput is the Huma input for updating an item.
type UpdateItemInput struct {
	ID   string `path:"id" format:"uuid" doc:"Item UUID"`
	Body UpdateItemBody
}

// UpdateItemOutput is the Huma output for updating an item.
type UpdateItemOutput struct {
	Status int
}

// itemUpdater is the interface for updating item flags.
type itemUpdater interface {
	SetDisposition(ctx context.Context, id uuid.UUID, disposition string) error
	SetBookmarked(ctx context.Context, id uuid.UUID, bookmarked bool) error
}

// UpdateItemHandler handles PATCH /v1/item/{id}.
type UpdateItemHandler struct {
	ItemService itemUpdater
}

// NewUpdateItemHandler creates a new UpdateItemHandler.
func NewUpdateItemHandler(svc itemUpdater) *UpdateItemHandler {
	return &UpdateItemHandler{ItemService: svc}
}

// Register registers the update item endpoint with the Huma API.
func (h *UpdateItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-item",
		Method:      http.MethodPatch,
		Path:        "/v1/item/{id}",
		Summary:     "Update item flags",
		Description: "Updates an item's disposition and bookmark flag.",
		Tags:        []string{"Items"},
	}, h.handle)
}

func validDisposition(disposition string) bool {
	switch disposition {
	case item.DispositionKeep, item.DispositionToReturn, item.DispositionReturned, item.DispositionInventory:
		return true
	}
	return false
}

func (h *UpdateItemHandler) handle(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid item id", err)
	}
	if input.Body.Disposition == nil && input.Body.Bookmarked == nil {
		return nil, huma.NewError(http.StatusBadRequest, "nothing to update")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateItemMs")
	}
	defer func() {
		if stopTimer != nil {
			stopTimer()
		}
	}()

	if input.Body.Disposition != nil {
		if !validDisposition(*input.Body.Disposition) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid disposition")
		}
		if err := h.ItemService.SetDisposition(ctx, id, *input.Body.Disposition); err != nil {
			return nil, huma.NewError(http.StatusInternalServerError, "failed to update disposition", err)
		}
	}

	if input.Body.Bookmarked != nil {
		if err := h.ItemService.SetBookmarked(ctx, id, *input.Body.Bookmarked); err != nil {
			return nil, huma.NewError(http.StatusInternalServerError, "failed to update bookmark", err)
		}
	}

	return &UpdateItemOutput{Status: http.StatusNoContent}, nil
}
