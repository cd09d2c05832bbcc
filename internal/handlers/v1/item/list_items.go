package item

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/service"
)

// ListItemsInput is the Huma input for listing items. With a transactionID
// it returns that transaction's line items; with a projectID the project's
// items; with neither, the business inventory.
type ListItemsInput struct {
	ProjectID     string `query:"projectID" format:"uuid" doc:"Limit to one project's items"`
	TransactionID string `query:"transactionID" format:"uuid" doc:"Limit to one transaction's line items"`
}

// ListItemsResponseBody is the response body for listing items.
type ListItemsResponseBody struct {
	Items []Item `json:"items" doc:"Items in insertion order"`
}

// ListItemsOutput is the Huma output for listing items.
type ListItemsOutput struct {
	Body ListItemsResponseBody
}

// itemLister is the interface for listing items.
type itemLister interface {
	ListProjectItems(ctx context.Context, projectID uuid.UUID) ([]service.Item, error)
	ListTransactionItems(ctx context.Context, transactionID uuid.UUID) ([]service.Item, error)
	ListBusinessInventory(ctx context.Context) ([]service.Item, error)
}

// ListItemsHandler handles GET /v1/item.
type ListItemsHandler struct {
	ItemService itemLister
}

// NewListItemsHandler creates a new ListItemsHandler.
func NewListItemsHandler(svc itemLister) *ListItemsHandler {
	return &ListItemsHandler{ItemService: svc}
}

// Register registers the list items endpoint with the Huma API.
func (h *ListItemsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/v1/item",
		Summary:     "List items",
		Description: "Lists a project's items, a transaction's line items, or the business inventory.",
		Tags:        []string{"Items"},
	}, h.handle)
}

func (h *ListItemsHandler) handle(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	logData := logging.GetLogData(ctx)

	if input.ProjectID != "" && input.TransactionID != "" {
		return nil, huma.NewError(http.StatusBadRequest, "projectID and transactionID are mutually exclusive")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listItemsMs")
	}

	var items []service.Item
	var err error
	switch {
	case input.TransactionID != "":
		var transactionID uuid.UUID
		transactionID, err = uuid.FromString(input.TransactionID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionID", err)
		}
		items, err = h.ItemService.ListTransactionItems(ctx, transactionID)
	case input.ProjectID != "":
		var projectID uuid.UUID
		projectID, err = uuid.FromString(input.ProjectID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid projectID", err)
		}
		items, err = h.ItemService.ListProjectItems(ctx, projectID)
	default:
		items, err = h.ItemService.ListBusinessInventory(ctx)
	}
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list items", err)
	}

	if logData != nil {
		logData.AddData("itemCount", len(items))
	}

	resp := ListItemsResponseBody{Items: make([]Item, len(items))}
	for i, it := range items {
		resp.Items[i] = itemToAPI(it)
	}

	return &ListItemsOutput{Body: resp}, nil
}
