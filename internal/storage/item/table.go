package item

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
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

var _ IItemTable = (*Table)(nil)

var columns = []any{
	"id", "project_id", "transaction_id", "description", "sku", "source",
	"purchase_price", "project_price", "market_value", "space", "notes",
	"bookmarked", "disposition", "images", "created_at",
}

type itemRow struct {
	ID            uuid.UUID  `db:"id"`
	ProjectID     *uuid.UUID `db:"project_id"`
	TransactionID *uuid.UUID `db:"transaction_id"`
	Description   string     `db:"description"`
	SKU           string     `db:"sku"`
	Source        string     `db:"source"`
	PurchasePrice string     `db:"purchase_price"`
	ProjectPrice  string     `db:"project_price"`
	MarketValue   string     `db:"market_value"`
	Space         string     `db:"space"`
	Notes         string     `db:"notes"`
	Bookmarked    bool       `db:"bookmarked"`
	Disposition   string     `db:"disposition"`
	Images        []byte     `db:"images"`
	CreatedAt     time.Time  `db:"created_at"`
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

// FindByID retrieves an item by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("items"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[itemRow]())
	if err != nil {
		return nil, err
	}
	return rowToItem(&row)
}

// Insert creates a new item and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *ItemCreate) (uuid.UUID, error) {
	disposition := create.Disposition
	if disposition == "" {
		disposition = DispositionKeep
	}

	emptyImages, err := media.Marshal(nil)
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("items",
			"project_id", "transaction_id", "description", "sku", "source",
			"purchase_price", "project_price", "market_value", "space",
			"notes", "bookmarked", "disposition", "images",
		),
		im.Values(psql.Arg(
			create.ProjectID, create.TransactionID, create.Description,
			create.SKU, create.Source, create.PurchasePrice,
			create.ProjectPrice, create.MarketValue, create.Space,
			create.Notes, create.Bookmarked, disposition, emptyImages,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns items matching the filter in insertion order, so line items
// come back in the order they were created with their transaction.
func (t *Table) List(ctx context.Context, filter *ItemFilter) ([]*Item, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("items"),
	}
	if filter != nil {
		if filter.ProjectID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("project_id").EQ(psql.Arg(*filter.ProjectID))))
		} else if filter.BusinessInventory {
			queryMods = append(queryMods, sm.Where(psql.Quote("project_id").IsNull()))
		}
		if filter.TransactionID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(*filter.TransactionID))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[itemRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Item, len(rows))
	for i := range rows {
		result[i], err = rowToItem(&rows[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SetImages replaces the item's image list.
func (t *Table) SetImages(ctx context.Context, id uuid.UUID, images []media.Image) error {
	data, err := media.Marshal(images)
	if err != nil {
		return err
	}
	q := psql.Update(
		um.Table("items"),
		um.SetCol("images").ToArg(data),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err = bob.Exec(ctx, t.exec, q)
	return err
}

// SetDisposition updates an item's keep/to-return/returned/inventory state.
func (t *Table) SetDisposition(ctx context.Context, id uuid.UUID, disposition string) error {
	q := psql.Update(
		um.Table("items"),
		um.SetCol("disposition").ToArg(disposition),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// SetBookmarked toggles an item's bookmark flag.
func (t *Table) SetBookmarked(ctx context.Context, id uuid.UUID, bookmarked bool) error {
	q := psql.Update(
		um.Table("items"),
		um.SetCol("bookmarked").ToArg(bookmarked),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// AllocateToProject moves a batch of items to a project in one statement.
// An empty space leaves each item's existing space label untouched.
func (t *Table) AllocateToProject(ctx context.Context, ids []uuid.UUID, projectID uuid.UUID, space string) error {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("items"),
		um.SetCol("project_id").ToArg(projectID),
		um.Where(psql.Quote("id").In(psql.Arg(args...))),
	}
	if space != "" {
		queryMods = append(queryMods, um.SetCol("space").ToArg(space))
	}
	_, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	return err
}

// Delete removes an item.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("items"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func rowToItem(row *itemRow) (*Item, error) {
	images, err := media.Unmarshal(row.Images)
	if err != nil {
		return nil, err
	}
	return &Item{
		ID:            row.ID,
		ProjectID:     row.ProjectID,
		TransactionID: row.TransactionID,
		Description:   row.Description,
		SKU:           row.SKU,
		Source:        row.Source,
		PurchasePrice: row.PurchasePrice,
		ProjectPrice:  row.ProjectPrice,
		MarketValue:   row.MarketValue,
		Space:         row.Space,
		Notes:         row.Notes,
		Bookmarked:    row.Bookmarked,
		Disposition:   row.Disposition,
		Images:        images,
		CreatedAt:     row.CreatedAt,
	}, nil
}
