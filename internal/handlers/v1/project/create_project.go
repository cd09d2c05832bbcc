package project

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/service"
)

// CreateCategoryAllocation is one budget-category line in a create request.
type CreateCategoryAllocation struct {
	Name   string `json:"name" required:"true" doc:"Category name"`
	Amount string `json:"amount" required:"true" doc:"Allocated decimal amount"`
}

// CreateProjectBody is the request body for creating a project.
type CreateProjectBody struct {
	Name             string                     `json:"name" required:"true" minLength:"1" doc:"Project name"`
	ClientName       string                     `json:"clientName,omitempty" doc:"Client name"`
	Budget           string                     `json:"budget" required:"true" doc:"Total budget as a decimal"`
	DesignFee        string                     `json:"designFee,omitempty" doc:"Design fee as a decimal"`
	BudgetCategories []CreateCategoryAllocation `json:"budgetCategories,omitempty" doc:"Budget allocations by category"`
}

// CreateProjectInput is the Huma input for creating a project.
type CreateProjectInput struct {
	Body CreateProjectBody
}

// CreateProjectResponse is the response body for creating a project.
type CreateProjectResponse struct {
	ID string `json:"id" doc:"Created project UUID"`
}

// CreateProjectOutput is the Huma output for creating a project.
type CreateProjectOutput struct {
	Status int
	Body   CreateProjectResponse
}

// projectCreator is the interface for creating projects.
type projectCreator interface {
	CreateProject(ctx context.Context, p service.Project) (uuid.UUID, error)
}

// CreateProjectHandler handles POST /v1/project.
type CreateProjectHandler struct {
	ProjectService projectCreator
}

// NewCreateProjectHandler creates a new CreateProjectHandler.
func NewCreateProjectHandler(svc projectCreator) *CreateProjectHandler {
	return &CreateProjectHandler{ProjectService: svc}
}

// Register registers the create project endpoint with the Huma API.
func (h *CreateProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-project",
		Method:      http.MethodPost,
		Path:        "/v1/project",
		Summary:     "Create project",
		Description: "Creates a client project with its budget and category allocations.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

// parseCreateProjectInput parses and validates the API input into a service
// project. Category IDs are minted here so allocations are addressable from
// transactions immediately.
func parseCreateProjectInput(input *CreateProjectInput) (service.Project, error) {
	var p service.Project

	budget, err := decimal.NewFromString(input.Body.Budget)
	if err != nil {
		return p, huma.NewError(http.StatusBadRequest, "invalid budget", err)
	}
	if budget.IsNegative() {
		return p, huma.NewError(http.StatusBadRequest, "budget must be non-negative")
	}

	designFee := decimal.Zero
	if input.Body.DesignFee != "" {
		designFee, err = decimal.NewFromString(input.Body.DesignFee)
		if err != nil {
			return p, huma.NewError(http.StatusBadRequest, "invalid designFee", err)
		}
	}

	p = service.Project{
		Name:       input.Body.Name,
		ClientName: input.Body.ClientName,
		Budget:     budget,
		DesignFee:  designFee,
	}

	for _, cat := range input.Body.BudgetCategories {
		amount, err := decimal.NewFromString(cat.Amount)
		if err != nil {
			return p, huma.NewError(http.StatusBadRequest, "invalid category amount", err)
		}
		id, err := uuid.NewV4()
		if err != nil {
			return p, huma.NewError(http.StatusInternalServerError, "failed to generate category id", err)
		}
		p.BudgetCategories = append(p.BudgetCategories, service.CategoryAllocation{
			ID:     id,
			Name:   cat.Name,
			Amount: amount,
		})
	}

	return p, nil
}

func (h *CreateProjectHandler) handle(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
	logData := logging.GetLogData(ctx)

	p, err := parseCreateProjectInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createProjectMs")
	}
	id, err := h.ProjectService.CreateProject(ctx, p)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create project", err)
	}

	if logData != nil {
		logData.AddData("projectID", id.String())
	}

	return &CreateProjectOutput{
		Status: http.StatusCreated,
		Body:   CreateProjectResponse{ID: id.String()},
	}, nil
}
