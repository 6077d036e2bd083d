package aggregation

import "time"

type State string

const (
	StateIdle                 State = "idle"
	StateSchemaInit           State = "schema_init"
	StateDoctorAppointments   State = "doctor_appointments"
	StateAppointmentFrequency State = "appointment_frequency"
	StateSymptomsBySpecialty  State = "symptoms_by_specialty"
	StateDone                 State = "done"
	StateFailed               State = "failed"
)

// Report summarizes a single aggregation run
type Report struct {
	RunId           string
	AggregationDate time.Time
	State           State
	// FailedState is the state the run was in when it failed, empty on success
	FailedState State
	// RowsWritten holds the number of committed rows per table
	RowsWritten map[string]int
	StartedAt   time.Time
	FinishedAt  time.Time
	Err         error
}

func (r Report) Succeeded() bool {
	return r.State == StateDone
}

func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
