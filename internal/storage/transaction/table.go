package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

var _ ITransactionTable = (*Table)(nil)

var columns = []any{
	"id", "project_id", "source", "transaction_type", "payment_method",
	"budget_category", "category_id", "amount", "subtotal", "tax_rate_preset",
	"reimbursement_type", "system_ref", "status", "notes", "transaction_date",
	"receipt_images", "other_images", "created_at",
}

// transactionRow mirrors the transactions table, image lists raw jsonb.
type transactionRow struct {
	ID                uuid.UUID           `db:"id"`
	ProjectID         *uuid.UUID          `db:"project_id"`
	Source            string              `db:"source"`
	TransactionType   string              `db:"transaction_type"`
	PaymentMethod     string              `db:"payment_method"`
	BudgetCategory    string              `db:"budget_category"`
	CategoryID        *uuid.UUID          `db:"category_id"`
	Amount            decimal.Decimal     `db:"amount"`
	Subtotal          decimal.NullDecimal `db:"subtotal"`
	TaxRatePreset     string              `db:"tax_rate_preset"`
	ReimbursementType string              `db:"reimbursement_type"`
	SystemRef         string              `db:"system_ref"`
	Status            string              `db:"status"`
	Notes             string              `db:"notes"`
	TransactionDate   time.Time           `db:"transaction_date"`
	ReceiptImages     []byte              `db:"receipt_images"`
	OtherImages       []byte              `db:"other_images"`
	CreatedAt         time.Time           `db:"created_at"`
}

type Table struct {
	exec bob.Executor
}

func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// NewTableWithExecutor builds a table over an existing executor, typically a
// bob.Tx so inserts join an open database transaction.
func NewTableWithExecutor(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowToTransaction(&row)
}

// Insert creates a new transaction and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}
	status := create.Status
	if status == "" {
		status = "pending"
	}

	emptyImages, err := media.Marshal(nil)
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("transactions",
			"project_id", "source", "transaction_type", "payment_method",
			"budget_category", "category_id", "amount", "subtotal",
			"tax_rate_preset", "reimbursement_type", "system_ref", "status",
			"notes", "transaction_date", "receipt_images", "other_images",
		),
		im.Values(psql.Arg(
			create.ProjectID, create.Source, create.TransactionType,
			create.PaymentMethod, create.BudgetCategory, create.CategoryID,
			create.Amount, create.Subtotal, create.TaxRatePreset,
			create.ReimbursementType, create.SystemRef, status,
			create.Notes, transactionDate, emptyImages, emptyImages,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns transactions matching the filter. Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
	}
	if filter != nil {
		if filter.ProjectID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("project_id").EQ(psql.Arg(*filter.ProjectID))))
		}
		if filter.Status != "" {
			queryMods = append(queryMods, sm.Where(psql.Quote("status").EQ(psql.Arg(filter.Status))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i], err = rowToTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SetReceiptImages replaces the transaction's receipt image list.
func (t *Table) SetReceiptImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	return t.setImageColumn(ctx, id, "receipt_images", images)
}

// SetOtherImages replaces the transaction's other image list.
func (t *Table) SetOtherImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	return t.setImageColumn(ctx, id, "other_images", images)
}

func (t *Table) setImageColumn(ctx context.Context, id uuid.UUID, column string, images []media.Image) error {
	data, err := media.Marshal(images)
	if err != nil {
		return err
	}
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol(column).ToArg(data),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err = bob.Exec(ctx, t.exec, q)
	return err
}

// UpdateStatus moves a transaction through its pending/completed/cancelled lifecycle.
func (t *Table) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("status").ToArg(status),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes a transaction.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func rowToTransaction(row *transactionRow) (*Transaction, error) {
	receiptImages, err := media.Unmarshal(row.ReceiptImages)
	if err != nil {
		return nil, err
	}
	otherImages, err := media.Unmarshal(row.OtherImages)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		ID:                row.ID,
		ProjectID:         row.ProjectID,
		Source:            row.Source,
		TransactionType:   row.TransactionType,
		PaymentMethod:     row.PaymentMethod,
		BudgetCategory:    row.BudgetCategory,
		CategoryID:        row.CategoryID,
		Amount:            row.Amount,
		Subtotal:          row.Subtotal,
		TaxRatePreset:     row.TaxRatePreset,
		ReimbursementType: row.ReimbursementType,
		SystemRef:         row.SystemRef,
		Status:            row.Status,
		Notes:             row.Notes,
		TransactionDate:   row.TransactionDate,
		ReceiptImages:     receiptImages,
		OtherImages:       otherImages,
		CreatedAt:         row.CreatedAt,
	}, nil
}
