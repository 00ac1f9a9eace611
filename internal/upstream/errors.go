package upstream

import "fmt"

// ErrorKind classifies a failed upstream call so callers can branch on it.
type ErrorKind int

const (
	KindInvalidURL ErrorKind = iota
	KindNetwork
	KindInvalidResponse
	KindDecoding
	KindServer
	KindUnauthorized
	KindNotFound
	KindUnknown
)

// Error is the single error type returned by the upstream client. StatusCode
// is set for KindServer, KindUnauthorized and KindNotFound; Err carries the
// underlying cause for the wrapper kinds.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return fmt.Sprintf("invalid URL: %v", e.Err)
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindInvalidResponse:
		return "invalid response from server"
	case KindDecoding:
		return fmt.Sprintf("error decoding response: %v", e.Err)
	case KindServer:
		return fmt.Sprintf("server error with status code: %d", e.StatusCode)
	case KindUnauthorized:
		return "unauthorized access"
	case KindNotFound:
		return "resource not found"
	default:
		return fmt.Sprintf("unknown error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classifyStatus maps a non-2xx HTTP status code to an Error.
func classifyStatus(code int) *Error {
	switch {
	case code == 401:
		return &Error{Kind: KindUnauthorized, StatusCode: code}
	case code == 404:
		return &Error{Kind: KindNotFound, StatusCode: code}
	default:
		return &Error{Kind: KindServer, StatusCode: code}
	}
}
