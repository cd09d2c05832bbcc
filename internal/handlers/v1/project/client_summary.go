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

// ClientSummaryResponseBody is the financial summary of one project.
// Amounts are decimal strings; unparseable stored prices count as zero.
type ClientSummaryResponseBody struct {
	TotalSpent        string            `json:"totalSpent" doc:"Sum of item project prices"`
	CategoryBreakdown map[string]string `json:"categoryBreakdown" doc:"Spend per budget category name"`
	TotalMarketValue  string            `json:"totalMarketValue" doc:"Sum of item market values"`
	TotalSaved        string            `json:"totalSaved" doc:"Market value minus project price over items priced below market"`
}

// ClientSummaryInput is the Huma input for the client summary.
type ClientSummaryInput struct {
	ID string `path:"id" format:"uuid" doc:"Project UUID"`
}

// ClientSummaryOutput is the Huma output for the client summary.
type ClientSummaryOutput struct {
	Body ClientSummaryResponseBody
}

// summaryProvider computes a project's financial summary.
type summaryProvider interface {
	ClientSummary(ctx context.Context, projectID uuid.UUID) (*summary.Summary, error)
}

// ClientSummaryHandler handles GET /v1/project/{id}/summary.
type ClientSummaryHandler struct {
	ProjectService summaryProvider
}

// NewClientSummaryHandler creates a new ClientSummaryHandler.
func NewClientSummaryHandler(svc summaryProvider) *ClientSummaryHandler {
	return &ClientSummaryHandler{ProjectService: svc}
}

// Register registers the client summary endpoint with the Huma API.
func (h *ClientSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-client-summary",
		Method:      http.MethodGet,
		Path:        "/v1/project/{id}/summary",
		Summary:     "Get client summary",
		Description: "Returns the project's spend, per-category breakdown, market value, and savings.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

func (h *ClientSummaryHandler) handle(ctx context.Context, input *ClientSummaryInput) (*ClientSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid project id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("clientSummaryMs")
	}
	result, err := h.ProjectService.ClientSummary(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.NewError(http.StatusNotFound, "project not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute client summary", err)
	}

	breakdown := make(map[string]string, len(result.CategoryBreakdown))
	for name, amount := range result.CategoryBreakdown {
		breakdown[name] = amount.String()
	}

	return &ClientSummaryOutput{
		Body: ClientSummaryResponseBody{
			TotalSpent:        result.TotalSpent.String(),
			CategoryBreakdown: breakdown,
			TotalMarketValue:  result.TotalMarketValue.String(),
			TotalSaved:        result.TotalSaved.String(),
		},
	}, nil
}
