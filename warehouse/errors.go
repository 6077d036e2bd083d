package warehouse

import "fmt"

// SchemaInitError is returned when the warehouse tables can't be created
type SchemaInitError struct {
	Err error
}

func (e *SchemaInitError) Error() string {
	return fmt.Sprintf("unable to initialize warehouse schema: %v", e.Err)
}

func (e *SchemaInitError) Unwrap() error {
	return e.Err
}

// WriteError is returned when rows can't be written to a table. Nothing from
// the failed write is committed.
type WriteError struct {
	Table string
	// Row is the index of the failed row, or -1 if the failure is not specific to a row
	Row int
	Err error
}

func (e *WriteError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("unable to write row %d to %s: %v", e.Row, e.Table, e.Err)
	}
	return fmt.Sprintf("unable to write to %s: %v", e.Table, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
