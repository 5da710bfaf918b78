package requestgen

import (
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/internal/httptest/serialize"
)

// Headers returns n headers: n-1 randomly named ones and the Host.
func Headers(n int) headers.Headers {
	hdrs := headers.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Set(uniuri.NewLen(16)+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Set("Host", "localhost")
}

// Generate returns a raw GET request with the given headers.
func Generate(uri string, hdrs headers.Headers) []byte {
	return GenerateWithBody(uri, hdrs, "")
}

// GenerateWithBody returns a raw POST request carrying the body, if it isn't empty. The
// Content-Length header is set implicitly.
func GenerateWithBody(uri string, hdrs headers.Headers, body string) []byte {
	request := http.NewRequest(hdrs.Clone())
	request.Method = "GET"
	request.URI = "/" + uri
	request.Protocol = "HTTP/1.1"

	if len(body) > 0 {
		request.Method = "POST"
		request.Headers.Set(headers.ContentLength, strconv.Itoa(len(body)))
		request.Body = []byte(body)
	}

	return []byte(serialize.Request(request, serialize.CRLF))
}
