package domain

import "fmt"

// UpstreamError covers both transport-level failures and non-2xx responses
// from the exchange API. Status is 0 when the request never produced a
// response (DNS failure, timeout, connection refused).
type UpstreamError struct {
	Symbol string
	Status int
	Body   string
	Cause  error
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream request failed for %s: %v", e.Symbol, e.Cause)
	}
	return fmt.Sprintf("upstream request failed for %s: %d %s", e.Symbol, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// DecodeError means the exchange returned 2xx but the body did not parse.
type DecodeError struct {
	Symbol string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed upstream response for %s: %v", e.Symbol, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
