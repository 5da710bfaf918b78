package http

import (
	"errors"

	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/internal/response"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const mimeJSON = "application/json"

// Response is a builder of the outgoing message. It's never serialized here: the
// resulting fields are available via Reveal.
//
// A Response isn't safe for concurrent use.
type Response struct {
	fields *response.Fields
	cfg    config.Response
}

// NewResponse returns a new instance of the Response object with HTTP/1.1 protocol, status
// code set to 200 OK, no headers and an empty body.
func NewResponse() *Response {
	return NewResponseWith(config.Default().Response)
}

// NewResponseWith returns a new instance of the Response object with defaults taken from
// the passed config.
func NewResponseWith(cfg config.Response) *Response {
	return &Response{
		fields: response.NewFields(cfg),
		cfg:    cfg,
	}
}

// Protocol sets the protocol token. It isn't validated.
func (r *Response) Protocol(protocol string) *Response {
	r.fields.Protocol = protocol
	return r
}

// Code sets a Response code. The status text stays as is, so in case it must correspond
// to the code, Status must be called explicitly
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text (reason phrase).
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Header sets the header value. In case it already exists, the value will be overridden.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Set(key, value)
	return r
}

// Headers simply merges passed headers into Response.
func (r *Response) Headers(headers map[string]string) *Response {
	for key, value := range headers {
		r.Header(key, value)
	}

	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// Bytes appends the passed slice to the body.
func (r *Response) Bytes(body []byte) *Response {
	_, _ = r.Write(body)
	return r
}

// String appends the passed string to the body.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// TryJSON appends the JSON representation of the model to the body and sets the
// Content-Type accordingly. In case of an error, the response stays untouched.
func (r *Response) TryJSON(model any) (*Response, error) {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteVal(model)
	if stream.Error != nil {
		return r, stream.Error
	}

	return r.
		Bytes(stream.Buffer()).
		Header(headers.ContentType, mimeJSON), nil
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// coder is implemented by errors, which know the status code they must be reported with.
type coder interface {
	Code() status.Code
}

// Error sets the code and the status text corresponding to the error and appends its
// message to the body. If passed err is nil, nothing will happen. Errors carrying their
// own code (like the parser ones) are reported with it, others are 500 Internal Server Error.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.InternalServerError
	var c coder
	if errors.As(err, &c) {
		code = c.Code()
	}

	return r.
		Code(code).
		Status(status.Text(code)).
		String(err.Error())
}

// Reveal returns a struct with values, filled by builder. It's meant to be consumed by
// a serializer.
func (r *Response) Reveal() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	r.fields.Reset(r.cfg)
	return r
}
