package project

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/summary"
)

// ReceiptLinkInput is the Huma input for resolving an item's receipt link.
type ReceiptLinkInput struct {
	ProjectID string `path:"projectID" format:"uuid" doc:"Project UUID"`
	ItemID    string `path:"itemID" format:"uuid" doc:"Item UUID"`
}

// ReceiptLinkResponseBody is the resolved receipt link. Found is false when
// the item has no usable proof of purchase.
type ReceiptLinkResponseBody struct {
	Found bool   `json:"found" doc:"Whether a link could be resolved"`
	Kind  string `json:"kind,omitempty" enum:"internal,external" doc:"internal for invoice views, external for receipt images"`
	Href  string `json:"href,omitempty" doc:"Link target"`
}

// ReceiptLinkOutput is the Huma output for resolving a receipt link.
type ReceiptLinkOutput struct {
	Body ReceiptLinkResponseBody
}

// receiptLinkResolver resolves an item's proof-of-purchase link.
type receiptLinkResolver interface {
	ReceiptLink(ctx context.Context, projectID, itemID uuid.UUID) (*summary.ReceiptLink, error)
}

// ReceiptLinkHandler handles GET /v1/project/{projectID}/item/{itemID}/receipt-link.
type ReceiptLinkHandler struct {
	ProjectService receiptLinkResolver
}

// NewReceiptLinkHandler creates a new ReceiptLinkHandler.
func NewReceiptLinkHandler(svc receiptLinkResolver) *ReceiptLinkHandler {
	return &ReceiptLinkHandler{ProjectService: svc}
}

// Register registers the receipt link endpoint with the Huma API.
func (h *ReceiptLinkHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-receipt-link",
		Method:      http.MethodGet,
		Path:        "/v1/project/{projectID}/item/{itemID}/receipt-link",
		Summary:     "Resolve receipt link",
		Description: "Resolves an item's proof-of-purchase link: a receipt image or the project invoice view.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

func (h *ReceiptLinkHandler) handle(ctx context.Context, input *ReceiptLinkInput) (*ReceiptLinkOutput, error) {
	logData := logging.GetLogData(ctx)

	projectID, err := uuid.FromString(input.ProjectID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid project id", err)
	}
	itemID, err := uuid.FromString(input.ItemID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid item id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("receiptLinkMs")
	}
	link, err := h.ProjectService.ReceiptLink(ctx, projectID, itemID)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.NewError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to resolve receipt link", err)
	}

	resp := ReceiptLinkResponseBody{}
	if link != nil {
		resp.Found = true
		resp.Kind = string(link.Kind)
		resp.Href = link.Href
	}

	return &ReceiptLinkOutput{Body: resp}, nil
}
