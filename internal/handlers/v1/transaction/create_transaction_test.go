package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hartley-interiors/studio-server/internal/workflow"
)

// mockComposer is a mock for transactionComposer.
type mockComposer struct {
	mock.Mock
}

func (m *mockComposer) Run(ctx context.Context, draft workflow.TransactionDraft, items []workflow.ItemDraft) (*workflow.Result, error) {
	args := m.Called(ctx, draft, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Result), args.Error(1)
}

// mockPublisher is a mock for changePublisher.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(eventType, entity, id string) {
	m.Called(eventType, entity, id)
}

// newCreateTestAPI registers the handler against a humatest API and returns it.
func newCreateTestAPI(t *testing.T, composer transactionComposer, publisher changePublisher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(composer, publisher).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	projectID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			ProjectID:       projectID.String(),
			Source:          "Schoolhouse",
			BudgetCategory:  "Lighting",
			CategoryID:      categoryID.String(),
			Amount:          "432.10",
			TransactionDate: "2026-02-15T10:30:00Z",
			ReceiptImages:   []StagedFile{{Filename: "receipt.jpg", Data: []byte("x")}},
			Items: []CreateItemDraft{
				{Description: "Pendant light", ProjectPrice: "432.10", PrimaryFilename: "pendant.jpg"},
			},
		},
	}

	draft, itemDrafts, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, projectID, *draft.ProjectID)
	assert.Equal(t, categoryID, *draft.CategoryID)
	assert.Equal(t, "Schoolhouse", draft.Source)
	assert.Equal(t, "432.10", draft.Amount)
	expectedDate, _ := time.Parse(time.RFC3339, "2026-02-15T10:30:00Z")
	assert.True(t, draft.TransactionDate.Equal(expectedDate))
	assert.Len(t, draft.ReceiptFiles, 1)
	assert.Len(t, itemDrafts, 1)
	assert.Equal(t, "pendant.jpg", itemDrafts[0].PrimaryFilename)
}

func TestParseCreateTransactionInput_NoProjectIsBusinessInventory(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Source:         "Auction house",
			BudgetCategory: "Furniture",
			Amount:         "75.00",
		},
	}

	draft, _, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Nil(t, draft.ProjectID)
	assert.True(t, draft.TransactionDate.IsZero())
}

func TestParseCreateTransactionInput_BadProjectID(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			ProjectID:      "not-a-uuid",
			Source:         "Vendor",
			BudgetCategory: "Furniture",
			Amount:         "1.00",
		},
	}

	_, _, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	transactionID := uuid.Must(uuid.NewV4())

	composer := new(mockComposer)
	composer.On("Run", mock.Anything,
		mock.MatchedBy(func(draft workflow.TransactionDraft) bool {
			return draft.Source == "Schoolhouse" && draft.Amount == "432.10"
		}),
		mock.MatchedBy(func(items []workflow.ItemDraft) bool {
			return len(items) == 2
		}),
	).Return(&workflow.Result{TransactionID: transactionID}, nil)

	publisher := new(mockPublisher)
	publisher.On("Publish", "created", "transaction", transactionID.String()).Return()

	resp := newCreateTestAPI(t, composer, publisher).Post("/v1/transaction", CreateTransactionBody{
		Source:         "Schoolhouse",
		BudgetCategory: "Lighting",
		Amount:         "432.10",
		Items: []CreateItemDraft{
			{Description: "Pendant light"},
			{Description: "Wall sconce"},
		},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, transactionID.String(), body.ID)
	assert.Empty(t, body.FieldErrors)
	assert.False(t, body.Halted)
	composer.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ValidationErrors(t *testing.T) {
	composer := new(mockComposer)
	composer.On("Run", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &workflow.ValidationError{Fields: map[string]string{
			workflow.FieldAmount: "Amount must be a positive number",
		}})

	resp := newCreateTestAPI(t, composer, nil).Post("/v1/transaction", CreateTransactionBody{
		Source:         "Vendor",
		BudgetCategory: "Furniture",
		Amount:         "-5",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.ID)
	assert.Equal(t, "Amount must be a positive number", body.FieldErrors["amount"])
}

func TestHTTP_CreateTransaction_HaltedImageStep(t *testing.T) {
	transactionID := uuid.Must(uuid.NewV4())

	composer := new(mockComposer)
	composer.On("Run", mock.Anything, mock.Anything, mock.Anything).
		Return(&workflow.Result{
			TransactionID: transactionID,
			FieldErrors: map[string]string{
				workflow.FieldReceiptImages: "Upload was blocked by browser security policy. Please contact support.",
			},
			Halted: true,
		}, nil)

	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return()

	resp := newCreateTestAPI(t, composer, publisher).Post("/v1/transaction", CreateTransactionBody{
		Source:         "Vendor",
		BudgetCategory: "Furniture",
		Amount:         "10.00",
	})

	// The transaction was created, so this is a success with field errors.
	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, transactionID.String(), body.ID)
	assert.True(t, body.Halted)
	assert.Contains(t, body.FieldErrors["receipt_images"], "browser security policy")
}

func TestHTTP_CreateTransaction_CreateFailed(t *testing.T) {
	composer := new(mockComposer)
	composer.On("Run", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, workflow.ErrCreateFailed)

	resp := newCreateTestAPI(t, composer, nil).Post("/v1/transaction", CreateTransactionBody{
		Source:         "Vendor",
		BudgetCategory: "Furniture",
		Amount:         "10.00",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
