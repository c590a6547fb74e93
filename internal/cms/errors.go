package cms

import "fmt"

// StatusError is a non-2xx response from the content API. Message carries the
// body's message field when the API provided one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("content API returned status %d", e.Code)
}
