package pipelines

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meditrack/aggregator-worker/store"
)

// DoctorAppointmentsPipeline counts appointments per doctor reference
func DoctorAppointmentsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + AppointmentDoctorIdField},
			{Key: "appointment_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// AppointmentFrequencyPipeline counts appointments per date key, ascending by the raw key
func AppointmentFrequencyPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + AppointmentDateField},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// SymptomsBySpecialtyPipeline counts symptom occurrences per doctor specialty.
// Appointments are inner joined with doctors: unresolvable or malformed doctor
// references produce an empty lookup which $unwind drops.
func SymptomsBySpecialtyPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{
			{Key: "doctor_object_id", Value: bson.D{{Key: "$convert", Value: bson.D{
				{Key: "input", Value: "$" + AppointmentDoctorIdField},
				{Key: "to", Value: "objectId"},
				{Key: "onError", Value: nil},
				{Key: "onNull", Value: nil},
			}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: store.DoctorsCollection},
			{Key: "localField", Value: "doctor_object_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "doctor_info"},
		}}},
		{{Key: "$unwind", Value: "$doctor_info"}},
		{{Key: "$unwind", Value: "$" + AppointmentSymptomsField}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "specialty", Value: "$doctor_info.specialty"},
				{Key: "symptom", Value: "$" + AppointmentSymptomsField},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "specialty", Value: "$_id.specialty"},
			{Key: "symptom", Value: "$_id.symptom"},
			{Key: "occurrence_count", Value: "$count"},
		}}},
	}
}
