package response

import (
	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/status"
)

// Fields is the storage behind the response builder.
type Fields struct {
	Protocol string
	Status   status.Status
	Headers  headers.Headers
	Body     []byte
	Code     status.Code
}

func NewFields(cfg config.Response) *Fields {
	return &Fields{
		Protocol: cfg.Protocol,
		Status:   cfg.Status,
		Headers:  headers.NewPrealloc(cfg.HeadersPrealloc),
		Body:     make([]byte, 0, cfg.BodyPrealloc),
		Code:     cfg.Code,
	}
}

// Reset brings the fields back to the defaults, keeping the already allocated space.
func (f *Fields) Reset(cfg config.Response) {
	f.Protocol = cfg.Protocol
	f.Code = cfg.Code
	f.Status = cfg.Status
	f.Headers.Clear()
	f.Body = f.Body[:0]
}
