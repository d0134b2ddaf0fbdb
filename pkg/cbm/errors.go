package cbm

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates a mapped dimension column is not in the table.
var ErrMissingColumn = errors.New("missing column")

// ErrNonNumericDimension indicates a dimension value could not be converted to a number.
var ErrNonNumericDimension = errors.New("non-numeric dimension")

// ErrInvalidOptions indicates calculation options outside their allowed range.
var ErrInvalidOptions = errors.New("invalid options")

// Kind classifies a ValidationError.
type Kind string

const (
	// MissingColumn is reported when a height, width or depth column does not exist.
	MissingColumn Kind = "missing_column"
	// NonNumericDimension is reported when any dimension cell is not numeric.
	NonNumericDimension Kind = "non_numeric_dimension"
)

// ValidationError aborts a conversion. For NonNumericDimension the Row,
// Column, Role and Value fields describe the first offending cell and Count
// the number of offending cells in the table.
type ValidationError struct {
	Kind   Kind
	Role   string // "height", "width", "depth"
	Column string
	Row    int // 1-based data row, 0 for MissingColumn
	Value  string
	Count  int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingColumn:
		return fmt.Sprintf("column %q (%s) not found in table", e.Column, e.Role)
	case NonNumericDimension:
		msg := fmt.Sprintf("dimension values could not be converted to numbers: row %d, column %q (%s) has %q",
			e.Row, e.Column, e.Role, e.Value)
		if e.Count > 1 {
			msg += fmt.Sprintf(" (%d invalid cells in total)", e.Count)
		}
		return msg
	default:
		return fmt.Sprintf("validation error: %s", e.Kind)
	}
}

// Is matches the sentinel error of the kind.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case MissingColumn:
		return target == ErrMissingColumn
	case NonNumericDimension:
		return target == ErrNonNumericDimension
	}
	return false
}

// InputError represents a failure to read the input table.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError.
func NewInputError(path string, err error) *InputError {
	return &InputError{
		Path: path,
		Err:  err,
	}
}
