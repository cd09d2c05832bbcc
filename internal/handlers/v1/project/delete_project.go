package project

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
)

// DeleteProjectInput is the Huma input for deleting a project.
type DeleteProjectInput struct {
	ID string `path:"id" format:"uuid" doc:"Project UUID"`
}

// DeleteProjectOutput is the Huma output for deleting a project.
type DeleteProjectOutput struct {
	Status int
}

type projectDeleter interface {
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// DeleteProjectHandler handles DELETE /v1/project/{id}.
type DeleteProjectHandler struct {
	ProjectService projectDeleter
}

// NewDeleteProjectHandler creates a new DeleteProjectHandler.
func NewDeleteProjectHandler(svc projectDeleter) *DeleteProjectHandler {
	return &DeleteProjectHandler{ProjectService: svc}
}

// Register registers the delete project endpoint with the Huma API.
func (h *DeleteProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-project",
		Method:      http.MethodDelete,
		Path:        "/v1/project/{id}",
		Summary:     "Delete project",
		Description: "Removes a project. Items allocated to it return to business inventory.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

func (h *DeleteProjectHandler) handle(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid project id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteProjectMs")
	}
	err = h.ProjectService.DeleteProject(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.NewError(http.StatusNotFound, "project not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete project", err)
	}

	return &DeleteProjectOutput{Status: http.StatusNoContent}, nil
}
