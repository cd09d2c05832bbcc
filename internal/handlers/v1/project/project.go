package project

import (
	"time"

	"github.com/hartley-interiors/studio-server/internal/service"
)

// CategoryAllocation is one budget-category line on a project.
type CategoryAllocation struct {
	ID     string `json:"id" doc:"Category UUID"`
	Name   string `json:"name" doc:"Category name"`
	Amount string `json:"amount" doc:"Allocated decimal amount"`
}

// Project is the API response model for a client project.
type Project struct {
	ID               string               `json:"id" doc:"Project UUID"`
	Name             string               `json:"name" doc:"Project name"`
	ClientName       string               `json:"clientName,omitempty" doc:"Client name"`
	Budget           string               `json:"budget" doc:"Total budget as a decimal"`
	DesignFee        string               `json:"designFee,omitempty" doc:"Design fee as a decimal"`
	BudgetCategories []CategoryAllocation `json:"budgetCategories,omitempty" doc:"Budget allocations by category"`
	CreatedAt        string               `json:"createdAt" doc:"RFC3339 creation time"`
}

func projectToAPI(p service.Project) Project {
	out := Project{
		ID:         p.ID.String(),
		Name:       p.Name,
		ClientName: p.ClientName,
		Budget:     p.Budget.String(),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	if !p.DesignFee.IsZero() {
		out.DesignFee = p.DesignFee.String()
	}
	if len(p.BudgetCategories) > 0 {
		out.BudgetCategories = make([]CategoryAllocation, len(p.BudgetCategories))
		for i, cat := range p.BudgetCategories {
			out.BudgetCategories[i] = CategoryAllocation{
				ID:     cat.ID.String(),
				Name:   cat.Name,
				Amount: cat.Amount.String(),
			}
		}
	}
	return out
}
