package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSheet is returned when the workbook has no worksheet.
	ErrNoSheet = errors.New("workbook has no sheets")
	// ErrNoHeader is returned when the sheet is shorter than the header offset.
	ErrNoHeader = errors.New("header row not found")
	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = errors.New("required column missing")
)

// LoadError describes a failure to turn a survey file into a table.
type LoadError struct {
	Path string
	Op   string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
