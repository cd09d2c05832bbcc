package project

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/service"
)

// InvoiceLine is one billing transaction on the invoice view.
type InvoiceLine struct {
	TransactionID     string `json:"transactionID" doc:"Transaction UUID"`
	Source            string `json:"source" doc:"Vendor or source"`
	Amount            string `json:"amount" doc:"Decimal amount"`
	ReimbursementType string `json:"reimbursementType" doc:"client_owes_company or company_owes_client"`
	TransactionDate   string `json:"transactionDate" doc:"RFC3339 transaction date"`
}

// InvoiceResponseBody is the project invoice view.
type InvoiceResponseBody struct {
	ProjectID         string        `json:"projectID" doc:"Project UUID"`
	ProjectName       string        `json:"projectName" doc:"Project name"`
	ClientName        string        `json:"clientName,omitempty" doc:"Client name"`
	Lines             []InvoiceLine `json:"lines" doc:"Billing transactions, newest first"`
	ClientOwesCompany string        `json:"clientOwesCompany" doc:"Total the client owes the firm"`
	CompanyOwesClient string        `json:"companyOwesClient" doc:"Total the firm owes the client"`
}

// InvoiceInput is the Huma input for the project invoice.
type InvoiceInput struct {
	ID string `path:"id" format:"uuid" doc:"Project UUID"`
}

// InvoiceOutput is the Huma output for the project invoice.
type InvoiceOutput struct {
	Body InvoiceResponseBody
}

// invoiceProvider builds a project's invoice view.
type invoiceProvider interface {
	Invoice(ctx context.Context, projectID uuid.UUID) (*service.ProjectInvoice, error)
}

// InvoiceHandler handles GET /v1/project/{id}/invoice.
type InvoiceHandler struct {
	ProjectService invoiceProvider
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(svc invoiceProvider) *InvoiceHandler {
	return &InvoiceHandler{ProjectService: svc}
}

// Register registers the invoice endpoint with the Huma API.
func (h *InvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-project-invoice",
		Method:      http.MethodGet,
		Path:        "/v1/project/{id}/invoice",
		Summary:     "Get project invoice",
		Description: "Returns the project's billing transactions and the net owed in each direction.",
		Tags:        []string{"Projects"},
	}, h.handle)
}

func (h *InvoiceHandler) handle(ctx context.Context, input *InvoiceInput) (*InvoiceOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid project id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("projectInvoiceMs")
	}
	invoice, err := h.ProjectService.Invoice(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.NewError(http.StatusNotFound, "project not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build invoice", err)
	}

	resp := InvoiceResponseBody{
		ProjectID:         invoice.ProjectID.String(),
		ProjectName:       invoice.ProjectName,
		ClientName:        invoice.ClientName,
		Lines:             make([]InvoiceLine, len(invoice.Lines)),
		ClientOwesCompany: invoice.ClientOwesCompany.String(),
		CompanyOwesClient: invoice.CompanyOwesClient.String(),
	}
	for i, line := range invoice.Lines {
		resp.Lines[i] = InvoiceLine{
			TransactionID:     line.TransactionID.String(),
			Source:            line.Source,
			Amount:            line.Amount.String(),
			ReimbursementType: line.ReimbursementType,
			TransactionDate:   line.TransactionDate.Format(time.RFC3339),
		}
	}

	return &InvoiceOutput{Body: resp}, nil
}
