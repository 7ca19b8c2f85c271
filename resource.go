package ezcms

import (
	"net/http"
	"strconv"
	"time"
)

// Resource is uploaded asset metadata within a space. The asset bytes live
// behind the resource URL and are never transferred through this library.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	URL         string    `json:"url,omitempty"`
	Size        int64     `json:"size,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// GetResourceInput requests a single resource by id.
type GetResourceInput struct {
	SpaceID    string
	ResourceID string
}

func (in *GetResourceInput) Request() *Request {
	return NewRequest(http.MethodGet, spacePath(in.SpaceID, "resources", in.ResourceID))
}

// GetResourceOutput is the decoded get resource response.
type GetResourceOutput struct {
	Resource Resource `json:"resource"`
}

// ListResourcesInput requests a page of resources within a space.
type ListResourcesInput struct {
	SpaceID     string
	ContentType string
	Limit       int
	Cursor      string
}

func (in *ListResourcesInput) Request() *Request {
	req := NewRequest(http.MethodGet, spacePath(in.SpaceID, "resources"))
	if in.ContentType != "" {
		req.Query.Set("content_type", in.ContentType)
	}
	if in.Limit > 0 {
		req.Query.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Cursor != "" {
		req.Query.Set("cursor", in.Cursor)
	}
	return req
}

// ListResourcesOutput is the decoded resource collection response.
type ListResourcesOutput struct {
	Resources  []Resource `json:"resources"`
	Total      int        `json:"total"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// CreateResourceInput registers new asset metadata.
type CreateResourceInput struct {
	SpaceID        string
	Resource       Resource
	IdempotencyKey string
}

func (in *CreateResourceInput) Request() *Request {
	req := NewRequest(http.MethodPost, spacePath(in.SpaceID, "resources"))
	req.Body = in.Resource
	if in.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", in.IdempotencyKey)
	}
	return req
}

// CreateResourceOutput is the decoded create resource response.
type CreateResourceOutput struct {
	Resource Resource `json:"resource"`
}

// DeleteResourceInput removes a resource by id.
type DeleteResourceInput struct {
	SpaceID    string
	ResourceID string
}

func (in *DeleteResourceInput) Request() *Request {
	return NewRequest(http.MethodDelete, spacePath(in.SpaceID, "resources", in.ResourceID))
}

// DeleteResourceOutput is the decoded delete resource response.
type DeleteResourceOutput struct{}
