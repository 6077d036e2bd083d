package test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AggregateResults returns a function for gomock's DoAndReturn which decodes
// documents into the results slice, the same way a cursor would
func AggregateResults(documents ...interface{}) func(context.Context, string, mongo.Pipeline, interface{}) error {
	return func(_ context.Context, _ string, _ mongo.Pipeline, results interface{}) error {
		if documents == nil {
			documents = []interface{}{}
		}
		raw, err := bson.Marshal(bson.M{"results": documents})
		if err != nil {
			return err
		}
		return bson.Raw(raw).Lookup("results").Unmarshal(results)
	}
}

// FindResult returns a function for gomock's DoAndReturn which decodes document
// into the result argument. A nil document is reported as not found.
func FindResult(document interface{}) func(context.Context, string, primitive.ObjectID, interface{}) (bool, error) {
	return func(_ context.Context, _ string, _ primitive.ObjectID, result interface{}) (bool, error) {
		if document == nil {
			return false, nil
		}
		raw, err := bson.Marshal(document)
		if err != nil {
			return false, err
		}
		if err := bson.Unmarshal(raw, result); err != nil {
			return false, err
		}
		return true, nil
	}
}
