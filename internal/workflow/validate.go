package workflow

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hartley-interiors/studio-server/internal/storage/taxpreset"
)

// Validation error keys. FieldGeneral carries cross-field errors that don't
// belong to a single input, currently only the Other-preset subtotal rules.
const (
	FieldSource         = "source"
	FieldBudgetCategory = "budget_category"
	FieldAmount         = "amount"
	FieldReceiptImages  = "receipt_images"
	FieldOtherImages    = "other_images"
	FieldGeneral        = "general"
)

// ValidateDraft checks a transaction draft and returns a map of field to
// error message. The draft is valid iff the map is empty. Pure function of
// the draft, no lookups.
func ValidateDraft(draft TransactionDraft) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(draft.Source) == "" {
		errors[FieldSource] = "Source is required"
	}

	if draft.BudgetCategory == "" {
		errors[FieldBudgetCategory] = "Budget category is required"
	}

	amount, amountOK := parsePositiveAmount(draft.Amount)
	if strings.TrimSpace(draft.Amount) == "" {
		errors[FieldAmount] = "Amount is required"
	} else if !amountOK {
		errors[FieldAmount] = "Amount must be a positive number"
	}

	if draft.TaxRatePreset == taxpreset.OtherPresetName {
		if message := validateSubtotal(draft.Subtotal, amount, amountOK); message != "" {
			errors[FieldGeneral] = message
		}
	}

	return errors
}

// validateSubtotal applies the Other-preset rules: subtotal present,
// positive, and no greater than the transaction amount.
func validateSubtotal(raw string, amount decimal.Decimal, amountOK bool) string {
	if strings.TrimSpace(raw) == "" {
		return "Subtotal is required when the tax preset is Other"
	}
	subtotal, ok := parsePositiveAmount(raw)
	if !ok {
		return "Subtotal must be a positive number"
	}
	if amountOK && subtotal.GreaterThan(amount) {
		return "Subtotal cannot exceed the transaction amount"
	}
	return ""
}

func parsePositiveAmount(raw string) (decimal.Decimal, bool) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !parsed.IsPositive() {
		return decimal.Zero, false
	}
	return parsed, true
}
