package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateFormat is used when a dataset key can't be parsed as a date.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrEmptyDataset is used when a dataset has no entries or its series have no values.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrInconsistentSeriesArity is used when dataset entries don't have the same number of values.
	ErrInconsistentSeriesArity = errors.New("inconsistent series arity")
	// ErrBackendUnavailable is used when there is no drawing surface to render on.
	ErrBackendUnavailable = errors.New("drawing backend unavailable")
	// ErrInvalidConfig is used when the chart configuration is not valid.
	ErrInvalidConfig = errors.New("invalid chart configuration")
)

// DateParseError is returned when a dataset date key can't be parsed.
type DateParseError struct {
	Key string
	Err error
}

func (e *DateParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrInvalidDateFormat, e.Key)
	}
	return fmt.Sprintf("%s: %q: %v", ErrInvalidDateFormat, e.Key, e.Err)
}

// Is makes errors.Is(err, ErrInvalidDateFormat) match any DateParseError.
func (e *DateParseError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// ArityError is returned when an entry has a different number of values than the first one,
// or when it mixes a single number with lists of numbers.
type ArityError struct {
	Key       string
	Expected  int
	Got       int
	MixedForm bool
}

func (e *ArityError) Error() string {
	if e.MixedForm {
		return fmt.Sprintf("%s: %q mixes single numbers and lists of numbers", ErrInconsistentSeriesArity, e.Key)
	}
	return fmt.Sprintf("%s: %q has %d values, expected %d", ErrInconsistentSeriesArity, e.Key, e.Got, e.Expected)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrInconsistentSeriesArity
}
