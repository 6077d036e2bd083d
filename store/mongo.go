package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/lifecycle"
)

const (
	AppointmentsCollection = "appointments"
	DoctorsCollection      = "doctors"

	connectTimeout = 10 * time.Second
)

type Params struct {
	fx.In

	Config    Config
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// NewClient creates the mongo client used for the whole run. The client is
// verified when the app starts and disconnected when it stops.
func NewClient(p Params) (*mongo.Client, error) {
	if p.Config.URL == "" {
		return nil, fmt.Errorf("mongo connection url is empty")
	}

	opts := options.Client().
		ApplyURI(p.Config.URL).
		SetConnectTimeout(connectTimeout).
		SetAppName("aggregator-worker")

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("unable to create mongo client: %w", err)
	}

	lifecycle.AttachConnectionHooks("mongo", &mongoConnection{client: client}, p.Config.ConnectAttempts, p.Lifecycle, p.Logger)
	return client, nil
}

func NewDatabase(client *mongo.Client, config Config) *mongo.Database {
	return client.Database(config.DatabaseName)
}

type mongoConnection struct {
	client *mongo.Client
}

func (m *mongoConnection) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *mongoConnection) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
