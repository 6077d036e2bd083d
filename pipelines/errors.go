package pipelines

import "fmt"

// ReadError is returned when a pipeline can't be read from the operational store.
// No results are returned alongside it.
type ReadError struct {
	Pipeline string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read %s aggregation: %v", e.Pipeline, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
