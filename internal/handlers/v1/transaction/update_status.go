package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/service"
)

// UpdateStatusBody is the request body for a transaction status change.
type UpdateStatusBody struct {
	Status string `json:"status" required:"true" enum:"pending,completed,cancelled" doc:"New transaction status"`
}

// UpdateStatusInput is the Huma input for a transaction status change.
type UpdateStatusInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateStatusBody
}

// UpdateStatusOutput is the Huma output for a transaction status change.
type UpdateStatusOutput struct {
	Status int
}

type statusUpdater interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// UpdateStatusHandler handles PATCH /v1/transaction/{id}.
type UpdateStatusHandler struct {
	TransactionService statusUpdater
	Publisher          changePublisher
}

// NewUpdateStatusHandler creates a new UpdateStatusHandler.
func NewUpdateStatusHandler(svc statusUpdater, publisher changePublisher) *UpdateStatusHandler {
	return &UpdateStatusHandler{TransactionService: svc, Publisher: publisher}
}

// Register registers the update status endpoint with the Huma API.
func (h *UpdateStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-status",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction status",
		Description: "Moves a transaction through its pending/completed/cancelled lifecycle.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func validStatus(status string) bool {
	switch status {
	case service.TransactionStatusPending,
		service.TransactionStatusCompleted,
		service.TransactionStatusCancelled:
		return true
	}
	return false
}

func (h *UpdateStatusHandler) handle(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	if !validStatus(input.Body.Status) {
		return nil, huma.NewError(http.StatusBadRequest, "invalid status")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateStatusMs")
	}
	err = h.TransactionService.UpdateStatus(ctx, id, input.Body.Status)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction status", err)
	}

	h.Publisher.Publish("updated", "transaction", id.String())

	return &UpdateStatusOutput{Status: http.StatusNoContent}, nil
}
