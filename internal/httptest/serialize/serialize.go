package serialize

import (
	"github.com/indigo-web/minihttp/http"
)

const (
	CRLF = "\r\n"
	LF   = "\n"
)

// Headers renders the request line and the header block, terminated by an empty line.
// Headers go in lexicographical order of their names, so the output is reproducible.
func Headers(request *http.Request, newline string) string {
	var buff []byte

	buff = append(buff, request.Method...)
	buff = append(buff, ' ')
	buff = append(buff, request.URI...)
	buff = append(buff, ' ')
	buff = append(buff, request.Protocol...)
	buff = append(buff, newline...)

	for _, key := range request.Headers.Keys() {
		buff = header(buff, key, request.Headers.Value(key), newline)
	}

	buff = append(buff, newline...)

	return string(buff)
}

// Request renders the whole request back into its textual form. Content-Length is
// rendered only if it is presented in the headers.
func Request(request *http.Request, newline string) string {
	return Headers(request, newline) + string(request.Body)
}

func header(b []byte, key, value, newline string) []byte {
	b = append(b, key...)
	b = append(b, ':', ' ')
	b = append(b, value...)

	return append(b, newline...)
}
