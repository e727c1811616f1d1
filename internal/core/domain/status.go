package domain

// Status is the request lifecycle state shown by the UI.
// Loading and error are never asserted at the same time.
type Status int

const (
	// StatusIdle means no request is in flight.
	StatusIdle Status = iota

	// StatusLoading means a query is waiting for its results.
	StatusLoading

	// StatusError means the last request failed.
	StatusError
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
