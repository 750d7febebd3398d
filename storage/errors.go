package storage

import "fmt"

// DatasetLoadError reports a dataset that could not be opened or parsed.
// It is fatal at startup.
type DatasetLoadError struct {
	Path string
	Err  error
}

func (e *DatasetLoadError) Error() string {
	return fmt.Sprintf("dataset %q: %v", e.Path, e.Err)
}

func (e *DatasetLoadError) Unwrap() error { return e.Err }
