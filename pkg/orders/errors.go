package orders

import "fmt"

// RemoteError is returned when the upstream endpoint is reachable but
// rejects the order or answers with a non-2xx status.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream order error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream order error (status %d)", e.StatusCode)
}
