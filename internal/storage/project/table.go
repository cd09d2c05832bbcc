package project

import (
	"context"
	"database/sql"
	"encoding/json"
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
)

var _ IProjectTable = (*Table)(nil)

var columns = []any{
	"id", "name", "client_name", "budget", "design_fee", "budget_categories", "created_at",
}

type projectRow struct {
	ID               uuid.UUID       `db:"id"`
	Name             string          `db:"name"`
	ClientName       string          `db:"client_name"`
	Budget           decimal.Decimal `db:"budget"`
	DesignFee        decimal.Decimal `db:"design_fee"`
	BudgetCategories []byte          `db:"budget_categories"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Table struct {
	exec bob.Executor
}

func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

func NewTableWithExecutor(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a project by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("projects"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[projectRow]())
	if err != nil {
		return nil, err
	}
	return rowToProject(&row)
}

// Insert creates a new project and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *ProjectCreate) (uuid.UUID, error) {
	categories, err := marshalCategories(create.BudgetCategories)
	if err != nil {
		return uuid.Nil, err
	}
	q := psql.Insert(
		im.Into("projects", "name", "client_name", "budget", "design_fee", "budget_categories"),
		im.Values(psql.Arg(create.Name, create.ClientName, create.Budget, create.DesignFee, categories)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns projects ordered by name.
func (t *Table) List(ctx context.Context, filter *ProjectFilter) ([]*Project, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("projects"),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[projectRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Project, len(rows))
	for i := range rows {
		result[i], err = rowToProject(&rows[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Update applies the non-nil fields of the update.
func (t *Table) Update(ctx context.Context, id uuid.UUID, update *ProjectUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("projects"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	changed := false
	if update.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*update.Name))
		changed = true
	}
	if update.ClientName != nil {
		queryMods = append(queryMods, um.SetCol("client_name").ToArg(*update.ClientName))
		changed = true
	}
	if update.Budget != nil {
		queryMods = append(queryMods, um.SetCol("budget").ToArg(*update.Budget))
		changed = true
	}
	if update.DesignFee != nil {
		queryMods = append(queryMods, um.SetCol("design_fee").ToArg(*update.DesignFee))
		changed = true
	}
	if update.BudgetCategories != nil {
		categories, err := marshalCategories(update.BudgetCategories)
		if err != nil {
			return err
		}
		queryMods = append(queryMods, um.SetCol("budget_categories").ToArg(categories))
		changed = true
	}
	if !changed {
		return nil
	}
	_, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	return err
}

// Delete removes a project.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("projects"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func marshalCategories(categories []CategoryAllocation) ([]byte, error) {
	if categories == nil {
		categories = []CategoryAllocation{}
	}
	return json.Marshal(categories)
}

func rowToProject(row *projectRow) (*Project, error) {
	var categories []CategoryAllocation
	if len(row.BudgetCategories) > 0 {
		if err := json.Unmarshal(row.BudgetCategories, &categories); err != nil {
			return nil, err
		}
	}
	return &Project{
		ID:               row.ID,
		Name:             row.Name,
		ClientName:       row.ClientName,
		Budget:           row.Budget,
		DesignFee:        row.DesignFee,
		BudgetCategories: categories,
		CreatedAt:        row.CreatedAt,
	}, nil
}
