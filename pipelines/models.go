package pipelines

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unknown is reported for doctors which can't be resolved or are missing attributes
const Unknown = "Unknown"

// Fields of the appointment documents read by the pipelines
const (
	AppointmentDoctorIdField = "doctor_id"
	AppointmentDateField     = "date"
	AppointmentSymptomsField = "symptoms"
)

// Doctor is the subset of the doctor document used for enrichment.
// Name and specialty are optional because the source documents are schemaless.
type Doctor struct {
	Id        primitive.ObjectID `bson:"_id"`
	Name      *string            `bson:"name"`
	Specialty *string            `bson:"specialty"`
}

func (d Doctor) NameOrUnknown() string {
	return valueOrUnknown(d.Name)
}

func (d Doctor) SpecialtyOrUnknown() string {
	return valueOrUnknown(d.Specialty)
}

type DoctorAppointmentRow struct {
	DoctorId         string
	DoctorName       string
	Specialty        string
	AppointmentCount int64
}

func (r DoctorAppointmentRow) Values() []interface{} {
	return []interface{}{r.DoctorId, r.DoctorName, r.Specialty, r.AppointmentCount}
}

// FrequencyRow counts appointments per date key. Date is nil for appointments
// without a date and is written as NULL.
type FrequencyRow struct {
	Date             *string
	AppointmentCount int64
}

func (r FrequencyRow) Values() []interface{} {
	return []interface{}{nullable(r.Date), r.AppointmentCount}
}

// SymptomSpecialtyRow counts symptom occurrences per specialty. Symptom is nil
// when the symptoms array contains a null and is written as NULL.
type SymptomSpecialtyRow struct {
	Specialty       string
	Symptom         *string
	OccurrenceCount int64
}

func (r SymptomSpecialtyRow) Values() []interface{} {
	return []interface{}{r.Specialty, nullable(r.Symptom), r.OccurrenceCount}
}

type doctorAppointmentsGroup struct {
	DoctorId         bson.RawValue `bson:"_id"`
	AppointmentCount int64         `bson:"appointment_count"`
}

type frequencyGroup struct {
	Date  *string `bson:"_id"`
	Count int64   `bson:"count"`
}

type symptomSpecialtyGroup struct {
	Specialty       *string `bson:"specialty"`
	Symptom         *string `bson:"symptom"`
	OccurrenceCount int64   `bson:"occurrence_count"`
}

// referenceToString returns the string form of a doctor reference, which is
// normally a hex string but may have been stored as an ObjectID
func referenceToString(value bson.RawValue) string {
	switch value.Type {
	case bsontype.String:
		return value.StringValue()
	case bsontype.ObjectID:
		return value.ObjectID().Hex()
	case bsontype.Null, bsontype.Undefined, 0:
		return ""
	default:
		return value.String()
	}
}

func valueOrUnknown(value *string) string {
	if value == nil {
		return Unknown
	}
	return *value
}

// nullable returns an untyped nil for missing values so the driver binds NULL
func nullable(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// lessNullsFirst orders missing values before present ones, the same way the store sorts null keys
func lessNullsFirst(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	return *a < *b
}
