package parser

import (
	"strings"
	"unicode"

	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/internal/split"
	"github.com/indigo-web/utils/uf"
)

const headerSeparator = ": "

// Parser parses complete HTTP/1.x requests, held entirely in memory. It keeps no state
// between calls, so a single instance may be shared across goroutines.
type Parser struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Parser {
	return &Parser{
		cfg: cfg,
	}
}

var defaultParser = New(config.Default())

// Parse parses the request using the default config. See Parser.Parse
func Parse(raw string) (*http.Request, error) {
	return defaultParser.Parse(raw)
}

// ParseBytes parses the request using the default config. See Parser.ParseBytes
func ParseBytes(raw []byte) (*http.Request, error) {
	return defaultParser.ParseBytes(raw)
}

// ParseBytes does the same as Parse does, but the resulting strings are views right into the
// passed slice. Modifying the slice after the call modifies the request, too. The body is
// still copied.
func (p *Parser) ParseBytes(raw []byte) (*http.Request, error) {
	return p.Parse(uf.B2S(raw))
}

// Parse parses a single request. Both CRLF and bare LF are accepted as line endings,
// even mixed. Header lines without ": " are dropped silently. The body is limited by
// the Content-Length header and truncated, if fewer bytes are actually presented.
//
// Returned errors are always of the Error type.
func (p *Parser) Parse(raw string) (*http.Request, error) {
	lines := split.NewLines(raw)
	requestLine, err := lines.Next()
	if err != nil {
		return nil, ErrEmptyRequest
	}

	request := http.NewRequest(headers.NewPrealloc(p.cfg.Headers.Prealloc))
	if err = parseRequestLine(request, trimCR(requestLine)); err != nil {
		return nil, err
	}

	for {
		line, err := lines.Next()
		if err != nil || len(line) == 0 || line == "\r" {
			break
		}

		key, value, found := strings.Cut(trimCR(line), headerSeparator)
		if !found {
			continue
		}

		request.Headers.Set(key, value)
	}

	if value, found := request.Headers.Get(headers.ContentLength); found {
		request.ContentLength, err = parseContentLength(value)
		if err != nil {
			return nil, err
		}
	}

	request.Body = readContent(lines.Rest(), request.ContentLength)

	return request, nil
}

func parseRequestLine(request *http.Request, line string) error {
	request.Method, line = cutField(line)
	request.URI, line = cutField(line)
	request.Protocol, _ = cutField(line)

	if len(request.Method) == 0 || len(request.URI) == 0 || len(request.Protocol) == 0 {
		return ErrInvalidStatusLine
	}

	return nil
}

// cutField returns the first whitespace-delimited token and everything after it.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end == -1 {
		return s, ""
	}

	return s[:end], s[end:]
}

// readContent copies at most length bytes of the data.
func readContent(data string, length int) []byte {
	if length > len(data) {
		length = len(data)
	}

	content := make([]byte, length)
	copy(content, data)

	return content
}

func trimCR(line string) string {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		return line[:len(line)-1]
	}

	return line
}
