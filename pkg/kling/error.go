package kling

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxErrorBody bounds how much of a non-JSON body Error prints.
const maxErrorBody = 512

// Error is returned when the API answers with something that is not JSON,
// typically an HTML error page from a gateway.
type Error struct {
	// HTTPStatus is the HTTP status code.
	HTTPStatus int

	// Body is the full raw response body. Error() shortens it.
	Body string
}

// Error implements the error interface.
func (e *Error) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}
	if body == "" {
		return fmt.Sprintf("kling: empty non-JSON response (http %d)", e.HTTPStatus)
	}
	return fmt.Sprintf("kling: non-JSON response (http %d): %s", e.HTTPStatus, body)
}

// IsServerError returns true if the response came with a 5xx status.
func (e *Error) IsServerError() bool {
	return e.HTTPStatus >= 500
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := kling.AsError(err); ok {
//	    log.Printf("gateway answered %d", e.HTTPStatus)
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
