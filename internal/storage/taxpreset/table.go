package taxpreset

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITaxPresetTable = (*Table)(nil)

type taxPresetRow struct {
	ID   uuid.UUID       `db:"id"`
	Name string          `db:"name"`
	Rate decimal.Decimal `db:"rate"`
}

type Table struct {
	exec bob.Executor
}

func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// List returns all presets in display order.
func (t *Table) List(ctx context.Context) ([]*TaxPreset, error) {
	q := psql.Select(
		sm.Columns("id", "name", "rate"),
		sm.From("tax_presets"),
		sm.OrderBy("sort_order").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[taxPresetRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*TaxPreset, len(rows))
	for i, row := range rows {
		result[i] = &TaxPreset{ID: row.ID, Name: row.Name, Rate: row.Rate}
	}
	return result, nil
}
