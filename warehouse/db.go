package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/lifecycle"
)

const driverName = "postgres"

type Params struct {
	fx.In

	Config    Config
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// NewDB opens the warehouse database. A run uses a single session, which is
// verified when the app starts and closed when it stops.
func NewDB(p Params) (*sql.DB, error) {
	db, err := sql.Open(driverName, p.Config.DSN())
	if err != nil {
		return nil, fmt.Errorf("unable to open warehouse database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	lifecycle.AttachConnectionHooks("redshift", &sqlConnection{db: db}, p.Config.ConnectAttempts, p.Lifecycle, p.Logger)
	return db, nil
}

type sqlConnection struct {
	db *sql.DB
}

func (s *sqlConnection) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlConnection) Close(_ context.Context) error {
	return s.db.Close()
}
