package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hartley-interiors/studio-server/internal/summary"
)

// mockSummaryProvider is a mock for summaryProvider.
type mockSummaryProvider struct {
	mock.Mock
}

func (m *mockSummaryProvider) ClientSummary(ctx context.Context, projectID uuid.UUID) (*summary.Summary, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summary.Summary), args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc summaryProvider) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewClientSummaryHandler(svc).Register(api)
	return api
}

func TestHTTP_ClientSummary_Success(t *testing.T) {
	projectID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockSummaryProvider)
	mockSvc.On("ClientSummary", mock.Anything, projectID).Return(&summary.Summary{
		TotalSpent: decimal.RequireFromString("1750.00"),
		CategoryBreakdown: map[string]decimal.Decimal{
			"Furniture": decimal.RequireFromString("1500.00"),
			"Lighting":  decimal.RequireFromString("250.00"),
		},
		TotalMarketValue: decimal.RequireFromString("1740.00"),
		TotalSaved:       decimal.RequireFromString("290.00"),
	}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/project/" + projectID.String() + "/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ClientSummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1750", body.TotalSpent)
	assert.Equal(t, "1500", body.CategoryBreakdown["Furniture"])
	assert.Equal(t, "250", body.CategoryBreakdown["Lighting"])
	assert.Equal(t, "290", body.TotalSaved)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ClientSummary_ProjectNotFound(t *testing.T) {
	mockSvc := new(mockSummaryProvider)
	mockSvc.On("ClientSummary", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/project/" + uuid.Must(uuid.NewV4()).String() + "/summary")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
