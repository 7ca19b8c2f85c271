package ezcms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Document is the wire representation of a content item's field payload.
type Document = map[string]json.RawMessage

type ItemMarshaler = func(any) (Document, error)

type ItemUnmarshaler = func(Document, any) error

// Requester implements the content API request call. Transport concerns --
// connection handling, authentication, serialization of the request body --
// belong to the implementation; this library only constructs [Request] values
// and decodes [Response] bodies.
type Requester interface {
	Request(context.Context, *Request, ...func(*RequestOptions)) (*Response, error)
}

// RequestOptions carry per-call overrides honored by the [Requester].
type RequestOptions struct {
	// Header entries merged into the outgoing request.
	Header http.Header
	// Query entries merged into the outgoing request.
	Query url.Values
}

// Request describes a single call against the content API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	// Body is the request payload, serialized by the [Requester].
	Body any
}

// NewRequest creates a request with empty query and header sets.
func NewRequest(method string, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}
}

// Response is the result of a content API call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       json.RawMessage
}

// Err returns the [APIError] described by this response, or nil if the
// response indicates success.
func (r *Response) Err() error {
	if r.StatusCode < http.StatusBadRequest {
		return nil
	}
	apierr := APIError{StatusCode: r.StatusCode}
	if len(r.Body) > 0 {
		// a malformed error body still yields the status code.
		_ = json.Unmarshal(r.Body, &apierr)
	}
	return &apierr
}

// APIError is the failure payload returned by the content API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("content api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("content api: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
}
