package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/hartley-interiors/studio-server/internal/config"
	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/project"
	"github.com/hartley-interiors/studio-server/internal/storage/taxpreset"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
)

type Storage struct {
	DB           *sql.DB
	bdb          bob.DB
	Transactions transaction.ITransactionTable
	Items        item.IItemTable
	Projects     project.IProjectTable
	TaxPresets   taxpreset.ITaxPresetTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		bdb:          bob.NewDB(db),
		Transactions: transaction.NewTable(db),
		Items:        item.NewTable(db),
		Projects:     project.NewTable(db),
		TaxPresets:   taxpreset.NewTable(db),
	}
}

// Write opens a database transaction and returns a Writer whose tables all
// share it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.Begin(ctx)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
