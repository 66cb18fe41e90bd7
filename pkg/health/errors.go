package health

import "fmt"

// ValidationError reports a metric field outside its domain. No state is
// mutated when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports that no record exists for a (user, date) pair.
type NotFoundError struct {
	UserID string
	Date   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No health metrics found for %s. Please enter your daily health data first.", e.Date)
}

// CalculatorError reports a score calculator failure. The message is
// deliberately generic: calculator internals (service endpoints, raw API
// errors) must not leak to the caller. Unwrap exposes the cause for logs.
type CalculatorError struct {
	Err error
}

func (e *CalculatorError) Error() string {
	return "Failed to generate health score due to an external service error. Please try again later."
}

func (e *CalculatorError) Unwrap() error { return e.Err }

// PersistenceError reports a failed write after a successful score
// computation. The computed score is discarded; the caller must re-run the
// request.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "Health score calculated but could not be saved. Please try again."
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// InvalidMetricTypeError reports an unrecognized metric dimension in a
// history query.
type InvalidMetricTypeError struct {
	Metric string
}

func (e *InvalidMetricTypeError) Error() string {
	return fmt.Sprintf("invalid metric type %q (want sleep, water, exercise, or calories)", e.Metric)
}
