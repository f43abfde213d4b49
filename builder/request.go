package builder

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is applied when the builder is not given a timeout.
const DefaultTimeout = 30 * time.Second

// MissingFieldError reports a required attribute that was never set.
type MissingFieldError struct{ Field string }

// Error implements the error interface.
func (e MissingFieldError) Error() string {
	// Example: builder: required field "method" is not set
	return "builder: required field " + strconv.Quote(e.Field) + " is not set"
}

// InvalidURLError reports a URL that was set but cannot be used.
type InvalidURLError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e InvalidURLError) Error() string {
	if e.Err != nil {
		return "builder: invalid url " + strconv.Quote(e.Raw) + ": " + e.Err.Error()
	}
	return "builder: invalid url " + strconv.Quote(e.Raw)
}

// Unwrap exposes the underlying parse error, if any.
func (e InvalidURLError) Unwrap() error { return e.Err }

// ErrNegativeTimeout is returned when an explicit timeout is negative.
// A zero timeout counts as unset and resolves to DefaultTimeout.
var ErrNegativeTimeout = errors.New("builder: timeout must be > 0")

// Request is the immutable value object produced by Build.
//
// All fields are unexported; accessors that expose mutable state (headers,
// body) return copies.
type Request struct {
	id      string
	method  string
	url     *url.URL
	headers map[string]string
	body    []byte
	timeout time.Duration
}

// ID returns the request identifier (set explicitly or a generated UUID).
func (r *Request) ID() string { return r.id }

// Method returns the upper-cased HTTP method.
func (r *Request) Method() string { return r.method }

// URL returns the request URL in string form.
func (r *Request) URL() string { return r.url.String() }

// Host returns the host component of the URL.
func (r *Request) Host() string { return r.url.Host }

// Header returns a single header value and whether it was set.
func (r *Request) Header(key string) (string, bool) {
	v, ok := r.headers[key]
	return v, ok
}

// Headers returns a copy of all headers.
func (r *Request) Headers() map[string]string {
	out := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		out[k] = v
	}
	return out
}

// Body returns a copy of the body.
func (r *Request) Body() []byte {
	if r.body == nil {
		return nil
	}
	out := make([]byte, len(r.body))
	copy(out, r.body)
	return out
}

// Timeout returns the request timeout.
func (r *Request) Timeout() time.Duration { return r.timeout }

// RequestBuilder assembles a Request step by step.
//
// Every setter returns the builder itself so calls chain; nothing is
// validated until Build.
type RequestBuilder struct {
	id      string
	method  string
	rawURL  string
	headers map[string]string
	body    []byte
	timeout time.Duration
}

// NewRequest returns an empty builder.
func NewRequest() *RequestBuilder {
	return &RequestBuilder{headers: make(map[string]string)}
}

// Method sets the HTTP method (required). It is upper-cased at Build time.
func (b *RequestBuilder) Method(method string) *RequestBuilder {
	b.method = method
	return b
}

// URL sets the target URL (required). It must parse with a scheme and host.
func (b *RequestBuilder) URL(raw string) *RequestBuilder {
	b.rawURL = raw
	return b
}

// Header sets one header. Setting the same key again overwrites it.
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.headers[key] = value
	return b
}

// Body sets the request body. The bytes are copied at Build time.
func (b *RequestBuilder) Body(body []byte) *RequestBuilder {
	b.body = body
	return b
}

// Timeout sets an explicit timeout. Zero (or never calling Timeout) means
// DefaultTimeout; a negative value fails Build with ErrNegativeTimeout.
func (b *RequestBuilder) Timeout(d time.Duration) *RequestBuilder {
	b.timeout = d
	return b
}

// ID sets an explicit request identifier. Unset means a fresh UUID.
func (b *RequestBuilder) ID(id string) *RequestBuilder {
	b.id = id
	return b
}

// Build validates the assembled state and returns the immutable Request.
//
// It fails with:
//   - every MissingFieldError for required fields left unset, joined
//   - InvalidURLError if the URL does not parse or lacks scheme/host
//   - ErrNegativeTimeout for an explicit negative timeout
func (b *RequestBuilder) Build() (*Request, error) {
	var errs []error
	if strings.TrimSpace(b.method) == "" {
		errs = append(errs, MissingFieldError{Field: "method"})
	}
	if strings.TrimSpace(b.rawURL) == "" {
		errs = append(errs, MissingFieldError{Field: "url"})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	u, err := url.Parse(b.rawURL)
	if err != nil {
		return nil, InvalidURLError{Raw: b.rawURL, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, InvalidURLError{Raw: b.rawURL}
	}

	timeout := b.timeout
	switch {
	case timeout == 0:
		timeout = DefaultTimeout
	case timeout < 0:
		return nil, ErrNegativeTimeout
	}

	id := b.id
	if id == "" {
		id = uuid.NewString()
	}

	headers := make(map[string]string, len(b.headers))
	for k, v := range b.headers {
		headers[k] = v
	}

	var body []byte
	if b.body != nil {
		body = make([]byte, len(b.body))
		copy(body, b.body)
	}

	return &Request{
		id:      id,
		method:  strings.ToUpper(b.method),
		url:     u,
		headers: headers,
		body:    body,
		timeout: timeout,
	}, nil
}

// MustBuild builds or panics. For wiring code and tests where an invalid
// assembly is a programming mistake.
func (b *RequestBuilder) MustBuild() *Request {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}
