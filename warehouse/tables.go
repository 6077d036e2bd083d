package warehouse

import (
	"fmt"
	"strings"
)

// DateColumn is appended to every table and stamped with the run's aggregation date
const DateColumn = "aggregation_date"

// Table is an append-only fact table. Columns are the data columns in the order
// of the row values; the date column is always written last.
type Table struct {
	Name    string
	Columns []string
	DDL     string
}

// InsertColumns returns the data columns followed by the date column
func (t Table) InsertColumns() []string {
	columns := make([]string, 0, len(t.Columns)+1)
	columns = append(columns, t.Columns...)
	return append(columns, DateColumn)
}

func (t Table) InsertStatement() string {
	columns := t.InsertColumns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}

var DoctorAppointmentsTable = Table{
	Name:    "doctor_appointments",
	Columns: []string{"doctor_id", "doctor_name", "specialty", "appointment_count"},
	DDL: `CREATE TABLE IF NOT EXISTS doctor_appointments (
    doctor_id VARCHAR(255),
    doctor_name VARCHAR(255),
    specialty VARCHAR(255),
    appointment_count INTEGER,
    aggregation_date DATE,
    PRIMARY KEY (doctor_id, aggregation_date)
)`,
}

var AppointmentFrequencyTable = Table{
	Name:    "appointment_frequency",
	Columns: []string{"date", "appointment_count"},
	DDL: `CREATE TABLE IF NOT EXISTS appointment_frequency (
    date DATE,
    appointment_count INTEGER,
    aggregation_date DATE,
    PRIMARY KEY (date, aggregation_date)
)`,
}

var SymptomsBySpecialtyTable = Table{
	Name:    "symptoms_by_specialty",
	Columns: []string{"specialty", "symptom", "occurrence_count"},
	DDL: `CREATE TABLE IF NOT EXISTS symptoms_by_specialty (
    specialty VARCHAR(255),
    symptom VARCHAR(255),
    occurrence_count INTEGER,
    aggregation_date DATE,
    PRIMARY KEY (specialty, symptom, aggregation_date)
)`,
}

// Tables are created in this order on every run
var Tables = []Table{
	DoctorAppointmentsTable,
	AppointmentFrequencyTable,
	SymptomsBySpecialtyTable,
}
