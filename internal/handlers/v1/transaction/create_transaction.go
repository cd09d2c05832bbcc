package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/uploads"
	"github.com/hartley-interiors/studio-server/internal/workflow"
)

// CreateItemDraft is one line item in a create-transaction request.
type CreateItemDraft struct {
	Description     string       `json:"description" required:"true" doc:"Item description"`
	SKU             string       `json:"sku,omitempty" doc:"SKU"`
	Source          string       `json:"source,omitempty" doc:"Vendor or source"`
	PurchasePrice   string       `json:"purchasePrice,omitempty" doc:"Purchase price as entered"`
	ProjectPrice    string       `json:"projectPrice,omitempty" doc:"Price billed to the client as entered"`
	MarketValue     string       `json:"marketValue,omitempty" doc:"Market value as entered"`
	Space           string       `json:"space,omitempty" doc:"Room or space label"`
	Notes           string       `json:"notes,omitempty" doc:"Free-form notes"`
	PrimaryFilename string       `json:"primaryFilename,omitempty" doc:"Filename designated as the primary image"`
	Images          []StagedFile `json:"images,omitempty" doc:"Staged image files"`
}

// CreateTransactionBody is the request body for creating a transaction with
// its line items and staged images.
type CreateTransactionBody struct {
	ProjectID         string            `json:"projectID,omitempty" format:"uuid" doc:"Project UUID, omit for business inventory"`
	Source            string            `json:"source" required:"true" doc:"Vendor or source of the purchase"`
	TransactionType   string            `json:"transactionType,omitempty" doc:"Purchase, To Inventory, or Return"`
	PaymentMethod     string            `json:"paymentMethod,omitempty" doc:"Payment method"`
	BudgetCategory    string            `json:"budgetCategory" required:"true" doc:"Budget category name"`
	CategoryID        string            `json:"categoryID,omitempty" format:"uuid" doc:"Budget category UUID"`
	Amount            string            `json:"amount" required:"true" doc:"Decimal amount"`
	Subtotal          string            `json:"subtotal,omitempty" doc:"Pre-tax subtotal, required when taxRatePreset is Other"`
	TaxRatePreset     string            `json:"taxRatePreset,omitempty" doc:"Tax rate preset name"`
	ReimbursementType string            `json:"reimbursementType,omitempty" doc:"client_owes_company or company_owes_client"`
	Notes             string            `json:"notes,omitempty" doc:"Free-form notes"`
	TransactionDate   string            `json:"transactionDate,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	ReceiptImages     []StagedFile      `json:"receiptImages,omitempty" doc:"Staged receipt images"`
	OtherImages       []StagedFile      `json:"otherImages,omitempty" doc:"Staged other images"`
	Items             []CreateItemDraft `json:"items,omitempty" doc:"Line items"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
// FieldErrors is populated when the draft was invalid (no transaction
// created) or when an image step failed after creation (id still present).
type CreateTransactionResponse struct {
	ID          string            `json:"id,omitempty" doc:"Created transaction UUID"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty" doc:"Field-scoped error messages"`
	Halted      bool              `json:"halted,omitempty" doc:"True when image steps were skipped after a failure"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionComposer runs the create-transaction-with-items workflow.
type transactionComposer interface {
	Run(ctx context.Context, draft workflow.TransactionDraft, items []workflow.ItemDraft) (*workflow.Result, error)
}

// changePublisher notifies subscribers of entity changes.
type changePublisher interface {
	Publish(eventType, entity, id string)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Composer  transactionComposer
	Publisher changePublisher
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(composer transactionComposer, publisher changePublisher) *CreateTransactionHandler {
	return &CreateTransactionHandler{Composer: composer, Publisher: publisher}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a transaction with its line items, then uploads and attaches staged images.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput converts the API body into workflow drafts.
func parseCreateTransactionInput(input *CreateTransactionInput) (workflow.TransactionDraft, []workflow.ItemDraft, error) {
	draft := workflow.TransactionDraft{
		Source:            input.Body.Source,
		TransactionType:   input.Body.TransactionType,
		PaymentMethod:     input.Body.PaymentMethod,
		BudgetCategory:    input.Body.BudgetCategory,
		Amount:            input.Body.Amount,
		Subtotal:          input.Body.Subtotal,
		TaxRatePreset:     input.Body.TaxRatePreset,
		ReimbursementType: input.Body.ReimbursementType,
		Notes:             input.Body.Notes,
		ReceiptFiles:      stagedFilesToUploads(input.Body.ReceiptImages),
		OtherFiles:        stagedFilesToUploads(input.Body.OtherImages),
	}

	if input.Body.ProjectID != "" {
		projectID, err := uuid.FromString(input.Body.ProjectID)
		if err != nil {
			return draft, nil, huma.NewError(http.StatusBadRequest, "invalid projectID", err)
		}
		draft.ProjectID = &projectID
	}

	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return draft, nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		draft.CategoryID = &categoryID
	}

	if input.Body.TransactionDate != "" {
		transactionDate, err := time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return draft, nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
		draft.TransactionDate = transactionDate
	}

	itemDrafts := make([]workflow.ItemDraft, len(input.Body.Items))
	for i, item := range input.Body.Items {
		itemDrafts[i] = workflow.ItemDraft{
			Description:     item.Description,
			SKU:             item.SKU,
			Source:          item.Source,
			PurchasePrice:   item.PurchasePrice,
			ProjectPrice:    item.ProjectPrice,
			MarketValue:     item.MarketValue,
			Space:           item.Space,
			Notes:           item.Notes,
			PrimaryFilename: item.PrimaryFilename,
			Files:           stagedFilesToUploads(item.Images),
		}
	}

	return draft, itemDrafts, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	draft, itemDrafts, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
		logData.AddDump("draft", draft)
	}
	result, err := h.Composer.Run(ctx, draft, itemDrafts)
	if stopTimer != nil {
		stopTimer()
	}

	var validationErr *workflow.ValidationError
	if errors.As(err, &validationErr) {
		return &CreateTransactionOutput{
			Status: http.StatusUnprocessableEntity,
			Body:   CreateTransactionResponse{FieldErrors: validationErr.Fields},
		}, nil
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", result.TransactionID.String())
	}
	if h.Publisher != nil {
		h.Publisher.Publish("created", "transaction", result.TransactionID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			ID:          result.TransactionID.String(),
			FieldErrors: nonEmpty(result.FieldErrors),
			Halted:      result.Halted,
		},
	}, nil
}

func stagedFilesToUploads(files []StagedFile) []uploads.StagedFile {
	if len(files) == 0 {
		return nil
	}
	staged := make([]uploads.StagedFile, len(files))
	for i, file := range files {
		staged[i] = uploads.StagedFile{
			Filename: file.Filename,
			MimeType: file.MimeType,
			Data:     file.Data,
		}
	}
	return staged
}

func nonEmpty(fieldErrors map[string]string) map[string]string {
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
