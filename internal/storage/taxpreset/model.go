package taxpreset

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// OtherPresetName is the reserved preset that requires a manually entered
// subtotal on the transaction.
const OtherPresetName = "Other"

// TaxPreset is a named tax rate offered in the transaction form.
type TaxPreset struct {
	ID   uuid.UUID
	Name string
	Rate decimal.Decimal
}

// ITaxPresetTable defines the interface for tax preset storage operations.
type ITaxPresetTable interface {
	List(ctx context.Context) ([]*TaxPreset, error)
}
