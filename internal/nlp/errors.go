package nlp

import (
	"errors"
	"fmt"
)

// Reasons a text-processing call degraded to its fallback value.
var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrEmptyInput         = errors.New("empty input")
	ErrNoFeatures         = errors.New("no features after tokenization")
	ErrProcessing         = errors.New("processing failed")
)

// DegradedError reports that an optional text-processing step returned its
// fallback value instead of a computed one. Callers that only need the scalar
// drop it after logging; tests inspect Reason with errors.Is.
type DegradedError struct {
	Op     string
	Reason error
	Cause  error
}

func (e *DegradedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s degraded: %v: %v", e.Op, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s degraded: %v", e.Op, e.Reason)
}

func (e *DegradedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Reason, e.Cause}
	}
	return []error{e.Reason}
}

// Degraded builds a DegradedError without a cause.
func Degraded(op string, reason error) error {
	return &DegradedError{Op: op, Reason: reason}
}

// IsDegraded reports whether err is a DegradedError.
func IsDegraded(err error) bool {
	var de *DegradedError
	return errors.As(err, &de)
}

// RecoverDegraded turns a panic in the calling function into a DegradedError
// stored in *errp. It must be deferred directly.
func RecoverDegraded(op string, errp *error) {
	if r := recover(); r != nil {
		*errp = &DegradedError{Op: op, Reason: ErrProcessing, Cause: fmt.Errorf("panic: %v", r)}
	}
}
