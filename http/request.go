package http

import (
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/proto"
)

// Request represents a parsed HTTP/1.x request.
//
// Method, URI, Protocol and Headers are views into the buffer the request was parsed from:
// nothing is copied, so they stay valid only as long as that buffer does and isn't modified.
// Body is the only owned part.
type Request struct {
	// Method is the first token of the request line. It isn't validated in any way, so it
	// can be anything non-empty.
	Method string
	// URI is the second token of the request line, verbatim. No decoding is done.
	URI string
	// Protocol is the third token of the request line, verbatim.
	Protocol string
	// Headers holds header pairs exactly as they were received. Lookup is case-sensitive and,
	// if a name occurs more than once, the latest value wins.
	Headers headers.Headers
	// ContentLength is the value declared via the Content-Length header. It holds the value
	// of 0 if the header isn't presented.
	ContentLength int
	// Body holds at most ContentLength bytes following the header block. It may be shorter,
	// if the buffer ends earlier.
	Body []byte
}

func NewRequest(hdrs headers.Headers) *Request {
	return &Request{
		Headers: hdrs,
	}
}

// Proto classifies the Protocol token. Unknown is returned for anything unrecognised.
func (r *Request) Proto() proto.Proto {
	return proto.FromString(r.Protocol)
}

// Truncated tells whether the body is shorter than declared. This usually means the
// caller didn't buffer the whole message yet.
func (r *Request) Truncated() bool {
	return len(r.Body) < r.ContentLength
}

// Clone returns a deep copy, which doesn't depend on the original buffer anymore.
func (r *Request) Clone() *Request {
	clone := &Request{
		Method:        clonestr(r.Method),
		URI:           clonestr(r.URI),
		Protocol:      clonestr(r.Protocol),
		Headers:       headers.NewPrealloc(r.Headers.Len()),
		ContentLength: r.ContentLength,
		Body:          append([]byte(nil), r.Body...),
	}

	for key, value := range r.Headers {
		clone.Headers.Set(clonestr(key), clonestr(value))
	}

	return clone
}

func clonestr(s string) string {
	return string(append([]byte(nil), s...))
}
