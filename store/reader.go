package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen --build_flags=--mod=mod -source=./reader.go -destination=./test/mock_reader.go -package test MockReader

// Reader executes read-only queries against the operational store
type Reader interface {
	// Aggregate runs the pipeline against the collection and decodes all results into results,
	// which must be a pointer to a slice.
	Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, results interface{}) error
	// FindById decodes the document with the given id into result. It returns false if the document doesn't exist.
	FindById(ctx context.Context, collection string, id primitive.ObjectID, result interface{}) (bool, error)
}

type reader struct {
	db     *mongo.Database
	logger *zap.SugaredLogger
}

var _ Reader = &reader{}

func NewReader(db *mongo.Database, logger *zap.SugaredLogger) Reader {
	return &reader{
		db:     db,
		logger: logger,
	}
}

func (r *reader) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, results interface{}) error {
	r.logger.Debugw("running aggregation pipeline", "collection", collection, "pipeline", pipeline)

	cursor, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("error running aggregation on %s: %w", collection, err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("error decoding aggregation results from %s: %w", collection, err)
	}

	return nil
}

func (r *reader) FindById(ctx context.Context, collection string, id primitive.ObjectID, result interface{}) (bool, error) {
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("error finding %s document %s: %w", collection, id.Hex(), err)
	}

	return true, nil
}
