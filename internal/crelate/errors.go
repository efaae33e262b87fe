package crelate

import "fmt"

// APIError is a non-2xx response from the Crelate API. The response body is
// preserved for diagnosis rather than discarded.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("crelate api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("crelate api returned %d: %s", e.StatusCode, e.Body)
}

// DecodeError is a 2xx response whose body is not valid JSON. It is surfaced
// distinctly from APIError since it indicates a contract violation rather
// than a business-level rejection.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode crelate response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
