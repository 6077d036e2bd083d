package store

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseObjectId converts a hex reference stored as a string (e.g. appointment.doctor_id)
// to an ObjectID. The second return value is false when the reference is malformed.
func ParseObjectId(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
