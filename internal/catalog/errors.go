package catalog

import "fmt"

// Code classifies a domain failure.
type Code string

const (
	CodeNotFound         Code = "not_found"
	CodeInvalidFormat    Code = "invalid_format"
	CodeCapacityExceeded Code = "capacity_exceeded"
	CodeClosed           Code = "closed_at_requested_time"
	CodeDateOutOfWindow  Code = "date_out_of_window"
)

// Failure is a user-presentable domain failure. It implements error, but tool
// handlers render it into a structured payload rather than propagating it.
type Failure struct {
	Code    Code
	Message string
}

func (f *Failure) Error() string { return f.Message }

func failf(code Code, format string, args ...any) *Failure {
	return &Failure{Code: code, Message: fmt.Sprintf(format, args...)}
}
