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

// UpdateCategoryAllocation is one budget-category line in an update request.
// Lines without an id get a fresh one, existing lines keep theirs.
type UpdateCategoryAllocation struct {
	ID     string `json:"id,omitempty" format:"uuid" doc:"Category UUID, omitted for new lines"`
	Name   string `json:"name" required:"true" doc:"Category name"`
	Amount string `json:"amount" required:"true" doc:"Allocated decimal amount"`
}

// UpdateProjectBody is the request body for updating a project. Omitted
// fields keep their current values; budgetCategories replaces the whole list
// when present.
type UpdateProjectBody struct {
	Name             *string                    `json:"name,omitempty" minLength:"1" doc:"Project name"`
	ClientName       *string                    `json:"clientName,omitempty" doc:"Client name"`
	Budget           *string                    `json:"budget,omitempty" doc:"Total budget as a decimal"`
	DesignFee        *string                    `json:"designFee,omitempty" doc:"Design fee as a decimal"`
	BudgetCategories []UpdateCategoryAllocation `json:"budgetCategories,omitempty" doc:"Replacement budget allocations"`
}

// UpdateProjectInput is the Huma input for updating a project.
type UpdateProjectInput struct {
	ID   string `path:"id" format:"uuid" doc:"Project UUID"`
	Body UpdateProjectBody
}

// UpdateProjectOutput is the Huma output for updating a project.
type UpdateProjectOutput struct {
	Status int
}

type projectUpdater interface {
	UpdateProject(ctx context.Context, id uuid.UUID, update service.ProjectUpdate) error
}

// UpdateProjectHandler handles PATCH /v1/project/{id}.
type UpdateProjectHandler struct {
	ProjectService projectUpdater
}

// NewUpdateProjectHandler creates a new UpdateProjectHandler.
func NewUpdateProjectHandler(svc projectUpdater) *UpdateProjectHandler {
	return &UpdateProjectHandler{ProjectService: svc}
}

// Register registers the update project endpoint with the Huma API.
func (h *UpdateProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-project",
		Method:      http.MethodPatch,
		Path:        "/v1/project/{id}",
		Summary:     "Update project",
		Description: "Applies a partial update to a project's name, client, budget, or category allocations.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

func parseUpdateProjectInput(input *UpdateProjectInput) (uuid.UUID, service.ProjectUpdate, error) {
	var update service.ProjectUpdate

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return id, update, huma.NewError(http.StatusBadRequest, "invalid project id", err)
	}

	update.Name = input.Body.Name
	update.ClientName = input.Body.ClientName

	if input.Body.Budget != nil {
		budget, err := decimal.NewFromString(*input.Body.Budget)
		if err != nil {
			return id, update, huma.NewError(http.StatusBadRequest, "invalid budget", err)
		}
		if budget.IsNegative() {
			return id, update, huma.NewError(http.StatusBadRequest, "budget must be non-negative")
		}
		update.Budget = &budget
	}
	if input.Body.DesignFee != nil {
		designFee, err := decimal.NewFromString(*input.Body.DesignFee)
		if err != nil {
			return id, update, huma.NewError(http.StatusBadRequest, "invalid designFee", err)
		}
		update.DesignFee = &designFee
	}

	for _, cat := range input.Body.BudgetCategories {
		amount, err := decimal.NewFromString(cat.Amount)
		if err != nil {
			return id, update, huma.NewError(http.StatusBadRequest, "invalid category amount", err)
		}
		catID := uuid.Nil
		if cat.ID != "" {
			catID, err = uuid.FromString(cat.ID)
			if err != nil {
				return id, update, huma.NewError(http.StatusBadRequest, "invalid category id", err)
			}
		} else {
			catID, err = uuid.NewV4()
			if err != nil {
				return id, update, huma.NewError(http.StatusInternalServerError, "failed to generate category id", err)
			}
		}
		update.BudgetCategories = append(update.BudgetCategories, service.CategoryAllocation{
			ID:     catID,
			Name:   cat.Name,
			Amount: amount,
		})
	}

	if update.Name == nil && update.ClientName == nil && update.Budget == nil &&
		update.DesignFee == nil && update.BudgetCategories == nil {
		return id, update, huma.NewError(http.StatusBadRequest, "nothing to update")
	}

	return id, update, nil
}

func (h *UpdateProjectHandler) handle(ctx context.Context, input *UpdateProjectInput) (*UpdateProjectOutput, error) {
	logData := logging.GetLogData(ctx)

	id, update, err := parseUpdateProjectInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateProjectMs")
	}
	err = h.ProjectService.UpdateProject(ctx, id, update)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update project", err)
	}

	return &UpdateProjectOutput{Status: http.StatusNoContent}, nil
}
