package project

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

// ListProjectsResponseBody is the response body for listing projects.
type ListProjectsResponseBody struct {
	Projects []Project `json:"projects" doc:"All projects, newest first"`
}

// ListProjectsOutput is the Huma output for listing projects.
type ListProjectsOutput struct {
	Body ListProjectsResponseBody
}

// GetProjectInput is the Huma input for fetching one project.
type GetProjectInput struct {
	ID string `path:"id" format:"uuid" doc:"Project UUID"`
}

// GetProjectOutput is the Huma output for fetching one project.
type GetProjectOutput struct {
	Body Project
}

// projectReader is the interface for reading projects.
type projectReader interface {
	GetProject(ctx context.Context, id uuid.UUID) (*service.Project, error)
	ListProjects(ctx context.Context) ([]service.Project, error)
}

// ProjectReadHandler handles GET /v1/project and GET /v1/project/{id}.
type ProjectReadHandler struct {
	ProjectService projectReader
}

// NewProjectReadHandler creates a new ProjectReadHandler.
func NewProjectReadHandler(svc projectReader) *ProjectReadHandler {
	return &ProjectReadHandler{ProjectService: svc}
}

// Register registers the project read endpoints with the Huma API.
func (h *ProjectReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/v1/project",
		Summary:     "List projects",
		Description: "Returns all projects.",
		Tags:        []string{"Projects"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "get-project",
		Method:      http.MethodGet,
		Path:        "/v1/project/{id}",
		Summary:     "Get project",
		Description: "Returns one project with its budget allocations.",
		Tags:        []string{"Projects"},
	}, h.handleGet)
}

func (h *ProjectReadHandler) handleList(ctx context.Context, _ *struct{}) (*ListProjectsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listProjectsMs")
	}
	projects, err := h.ProjectService.ListProjects(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list projects", err)
	}

	if logData != nil {
		logData.AddData("projectCount", len(projects))
	}

	resp := ListProjectsResponseBody{Projects: make([]Project, len(projects))}
	for i, p := range projects {
		resp.Projects[i] = projectToAPI(p)
	}

	return &ListProjectsOutput{Body: resp}, nil
}

func (h *ProjectReadHandler) handleGet(ctx context.Context, input *GetProjectInput) (*GetProjectOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid project id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getProjectMs")
	}
	p, err := h.ProjectService.GetProject(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.NewError(http.StatusNotFound, "project not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get project", err)
	}

	return &GetProjectOutput{Body: projectToAPI(*p)}, nil
}
