package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDraft() TransactionDraft {
	return TransactionDraft{
		Source:         "Restoration Hardware",
		BudgetCategory: "Furniture",
		Amount:         "1250.00",
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	fieldErrors := ValidateDraft(validDraft())
	assert.Empty(t, fieldErrors)
}

func TestValidateDraft_MissingSource(t *testing.T) {
	draft := validDraft()
	draft.Source = "   "

	fieldErrors := ValidateDraft(draft)
	assert.Equal(t, "Source is required", fieldErrors[FieldSource])
	assert.Len(t, fieldErrors, 1)
}

func TestValidateDraft_MissingBudgetCategory(t *testing.T) {
	draft := validDraft()
	draft.BudgetCategory = ""

	fieldErrors := ValidateDraft(draft)
	assert.Equal(t, "Budget category is required", fieldErrors[FieldBudgetCategory])
}

func TestValidateDraft_MissingAmount(t *testing.T) {
	draft := validDraft()
	draft.Amount = ""

	fieldErrors := ValidateDraft(draft)
	assert.Equal(t, "Amount is required", fieldErrors[FieldAmount])
}

func TestValidateDraft_AmountNotANumber(t *testing.T) {
	draft := validDraft()
	draft.Amount = "12fifty"

	fieldErrors := ValidateDraft(draft)
	assert.Equal(t, "Amount must be a positive number", fieldErrors[FieldAmount])
}

func TestValidateDraft_AmountZeroOrNegative(t *testing.T) {
	for _, amount := range []string{"0", "-45.00"} {
		draft := validDraft()
		draft.Amount = amount

		fieldErrors := ValidateDraft(draft)
		assert.Equal(t, "Amount must be a positive number", fieldErrors[FieldAmount], "amount %q", amount)
	}
}

func TestValidateDraft_CollectsAllErrors(t *testing.T) {
	fieldErrors := ValidateDraft(TransactionDraft{})
	assert.Len(t, fieldErrors, 3)
	assert.Contains(t, fieldErrors, FieldSource)
	assert.Contains(t, fieldErrors, FieldBudgetCategory)
	assert.Contains(t, fieldErrors, FieldAmount)
}

func TestValidateDraft_OtherPresetRequiresSubtotal(t *testing.T) {
	draft := validDraft()
	draft.TaxRatePreset = "Other"
	draft.Subtotal = ""

	fieldErrors := ValidateDraft(draft)
	assert.Equal(t, "Subtotal is required when the tax preset is Other", fieldErrors[FieldGeneral])
}

func TestValidateDraft_OtherPresetSubtotalMustBePositive(t *testing.T) {
	draft := validDraft()
	draft.TaxRatePreset = "Other"
	draft.Subtotal = "-3"

	fieldErrors := ValidateDraft(draft)
	assert.Equal(t, "Subtotal must be a positive number", fieldErrors[FieldGeneral])
}

func TestValidateDraft_OtherPresetSubtotalCannotExceedAmount(t *testing.T) {
	draft := validDraft()
	draft.TaxRatePreset = "Other"
	draft.Amount = "100.00"
	draft.Subtotal = "100.01"

	fieldErrors := ValidateDraft(draft)
	assert.Equal(t, "Subtotal cannot exceed the transaction amount", fieldErrors[FieldGeneral])
}

func TestValidateDraft_OtherPresetSubtotalEqualToAmountIsFine(t *testing.T) {
	draft := validDraft()
	draft.TaxRatePreset = "Other"
	draft.Amount = "100.00"
	draft.Subtotal = "100.00"

	fieldErrors := ValidateDraft(draft)
	assert.Empty(t, fieldErrors)
}

func TestValidateDraft_SubtotalIgnoredForNamedPresets(t *testing.T) {
	draft := validDraft()
	draft.TaxRatePreset = "Standard (8.25%)"
	draft.Subtotal = "-3"

	fieldErrors := ValidateDraft(draft)
	assert.Empty(t, fieldErrors)
}
