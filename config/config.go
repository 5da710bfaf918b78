package config

import (
	"github.com/indigo-web/minihttp/http/proto"
	"github.com/indigo-web/minihttp/http/status"
)

type (
	Headers struct {
		// Prealloc is the initial size of the request headers map. It doesn't limit anything,
		// a request with more headers simply grows the map.
		Prealloc int
	}

	Response struct {
		// Protocol is the protocol token a fresh response starts with.
		Protocol string
		// Code and Status are the defaults of a fresh response. They are independent: changing
		// the code never touches the status text.
		Code   status.Code
		Status status.Status
		// HeadersPrealloc is the initial size of the response headers map.
		HeadersPrealloc int
		// BodyPrealloc is the initial capacity of the response body. Appending beyond it just
		// grows the buffer.
		BodyPrealloc int
	}
)

// Config holds the defaults and pre-allocations used by the parser and the response builder.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero values aren't meaningful defaults here.
type Config struct {
	Headers  Headers
	Response Response
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Prealloc: 10,
		},
		Response: Response{
			Protocol:        proto.HTTP11.String(),
			Code:            status.OK,
			Status:          status.Text(status.OK),
			HeadersPrealloc: 7,
			BodyPrealloc:    1024,
		},
	}
}
