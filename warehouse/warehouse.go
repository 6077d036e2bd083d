package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Row is a single aggregation result. Values are returned in the order of the table's columns.
type Row interface {
	Values() []interface{}
}

// Rows converts a slice of result rows for writing
func Rows[R Row](rows []R) []Row {
	result := make([]Row, len(rows))
	for i, row := range rows {
		result[i] = row
	}
	return result
}

//go:generate mockgen --build_flags=--mod=mod -source=./warehouse.go -destination=./test/mock_warehouse.go -package test MockWarehouse

type Warehouse interface {
	// Initialize creates the fact tables if they don't exist. It is safe to call on every run.
	Initialize(ctx context.Context) error
	// Write inserts all rows in a single transaction, stamping each with the aggregation date.
	// It returns the number of inserted rows.
	Write(ctx context.Context, table Table, rows []Row, aggregationDate time.Time) (int, error)
}

type warehouse struct {
	db     *sql.DB
	tables []Table
	logger *zap.SugaredLogger
}

var _ Warehouse = &warehouse{}

func NewWarehouse(db *sql.DB, logger *zap.SugaredLogger) Warehouse {
	return &warehouse{
		db:     db,
		tables: Tables,
		logger: logger,
	}
}

func (w *warehouse) Initialize(ctx context.Context) error {
	err := w.inTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range w.tables {
			w.logger.Debugw("ensuring table exists", "table", table.Name)
			if _, err := tx.ExecContext(ctx, table.DDL); err != nil {
				return fmt.Errorf("unable to create table %s: %w", table.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return &SchemaInitError{Err: err}
	}

	w.logger.Infow("warehouse schema initialized", "tables", len(w.tables))
	return nil
}

func (w *warehouse) Write(ctx context.Context, table Table, rows []Row, aggregationDate time.Time) (int, error) {
	if len(rows) == 0 {
		w.logger.Warnw("no data to save", "table", table.Name)
		return 0, nil
	}

	date := aggregationDate.Format(dateLayout)
	failedRow := -1
	err := w.inTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, table.InsertStatement())
		if err != nil {
			return fmt.Errorf("unable to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, row := range rows {
			values := row.Values()
			if len(values) != len(table.Columns) {
				failedRow = i
				return fmt.Errorf("expected %d values, got %d", len(table.Columns), len(values))
			}

			args := append(values, date)
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				failedRow = i
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, &WriteError{Table: table.Name, Row: failedRow, Err: err}
	}

	w.logger.Infow("rows written", "table", table.Name, "rows", len(rows), "aggregationDate", date)
	return len(rows), nil
}

// inTransaction commits if fn succeeds and rolls back otherwise
func (w *warehouse) inTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			w.logger.Errorw("unable to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("unable to commit transaction: %w", err)
	}
	return nil
}
