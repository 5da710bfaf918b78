package parser

import "github.com/indigo-web/minihttp/http/status"

// Error is a kind of parsing failure. The set of kinds is closed, each of them has
// a fixed message.
type Error uint8

const (
	// ErrParse isn't returned by the parser at the moment.
	ErrParse Error = iota + 1
	ErrEmptyRequest
	ErrInvalidHeader
	ErrInvalidStatusLine
	// ErrContentRead stands for a failed read of the body bytes. Reading from an in-memory
	// buffer can't fail, so currently it's never returned either.
	ErrContentRead
)

var messages = [...]string{
	ErrParse:             "There was an error parsing the request",
	ErrEmptyRequest:      "The provided request was empty",
	ErrInvalidHeader:     "One or more headers was invalid",
	ErrInvalidStatusLine: "The status line of the request was invalid",
	ErrContentRead:       "Could not read content from request",
}

func (e Error) Error() string {
	if int(e) >= len(messages) || e == 0 {
		return "unknown parser error"
	}

	return messages[e]
}

// Code returns the status code the error should be responded with. All the kinds are
// caused by a malformed request.
func (e Error) Code() status.Code {
	return status.BadRequest
}
