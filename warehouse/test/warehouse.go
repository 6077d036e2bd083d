package test

import (
	"context"
	"time"

	"github.com/meditrack/aggregator-worker/warehouse"
)

type StoredRow struct {
	Values          []interface{}
	AggregationDate time.Time
}

// Warehouse keeps committed rows in memory. A write to a table listed in
// FailingTables fails without storing anything.
type Warehouse struct {
	Initialized   int
	Tables        map[string][]StoredRow
	FailingTables map[string]error
	InitializeErr error
}

var _ warehouse.Warehouse = &Warehouse{}

func NewWarehouse() *Warehouse {
	return &Warehouse{
		Tables:        make(map[string][]StoredRow),
		FailingTables: make(map[string]error),
	}
}

func (w *Warehouse) Initialize(ctx context.Context) error {
	if w.InitializeErr != nil {
		return w.InitializeErr
	}
	w.Initialized++
	return nil
}

func (w *Warehouse) Write(ctx context.Context, table warehouse.Table, rows []warehouse.Row, aggregationDate time.Time) (int, error) {
	if err, ok := w.FailingTables[table.Name]; ok {
		return 0, &warehouse.WriteError{Table: table.Name, Row: 0, Err: err}
	}
	for _, row := range rows {
		w.Tables[table.Name] = append(w.Tables[table.Name], StoredRow{
			Values:          row.Values(),
			AggregationDate: aggregationDate,
		})
	}
	return len(rows), nil
}
