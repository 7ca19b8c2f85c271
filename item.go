package ezcms

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Item is a single content entry within a space.
type Item struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Version   int       `json:"version,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	Fields    Document  `json:"fields,omitempty"`
}

// spacePath builds an escaped API path rooted at the target space.
func spacePath(space string, parts ...string) string {
	var sb strings.Builder
	sb.WriteString("/spaces/")
	sb.WriteString(url.PathEscape(space))
	for _, part := range parts {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(part))
	}
	return sb.String()
}

// mergeValues copies src entries into dst.
func mergeValues(dst, src url.Values) {
	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}

// GetItemInput requests a single item by id.
type GetItemInput struct {
	SpaceID string
	ItemID  string
	// Include lists relationship names to resolve inline.
	Include []string
}

func (in *GetItemInput) Request() *Request {
	req := NewRequest(http.MethodGet, spacePath(in.SpaceID, "items", in.ItemID))
	if len(in.Include) > 0 {
		req.Query.Set("include", strings.Join(in.Include, ","))
	}
	return req
}

// GetItemOutput is the decoded get item response.
type GetItemOutput struct {
	Item Item `json:"item"`
}

// ListItemsInput requests a page of items within a space.
type ListItemsInput struct {
	SpaceID  string
	ItemType string
	// IDs restricts the listing to the named items.
	IDs []string
	// Filter holds compiled field criteria; see the filter package.
	Filter  url.Values
	Include []string
	Order   []string
	Limit   int
	// Cursor resumes the listing from a previous page.
	Cursor string
}

func (in *ListItemsInput) Request() *Request {
	req := NewRequest(http.MethodGet, spacePath(in.SpaceID, "items"))
	if in.ItemType != "" {
		req.Query.Set("type", in.ItemType)
	}
	if len(in.IDs) > 0 {
		req.Query.Set("id", strings.Join(in.IDs, ","))
	}
	if len(in.Include) > 0 {
		req.Query.Set("include", strings.Join(in.Include, ","))
	}
	if len(in.Order) > 0 {
		req.Query.Set("order", strings.Join(in.Order, ","))
	}
	if in.Limit > 0 {
		req.Query.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Cursor != "" {
		req.Query.Set("cursor", in.Cursor)
	}
	mergeValues(req.Query, in.Filter)
	return req
}

// ListItemsOutput is the decoded item collection response.
type ListItemsOutput struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
	// NextCursor resumes the listing on the following page;
	// empty on the final page.
	NextCursor string `json:"next_cursor,omitempty"`
}

// CreateItemInput stores a new item.
type CreateItemInput struct {
	SpaceID string
	Item    Item
	// IdempotencyKey deduplicates retried creates on the server.
	IdempotencyKey string
}

func (in *CreateItemInput) Request() *Request {
	req := NewRequest(http.MethodPost, spacePath(in.SpaceID, "items"))
	req.Body = in.Item
	if in.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", in.IdempotencyKey)
	}
	return req
}

// CreateItemOutput is the decoded create item response.
type CreateItemOutput struct {
	Item Item `json:"item"`
}

// UpdateItemInput replaces the fields of an existing item. The item version
// guards against concurrent writers; zero skips the check.
type UpdateItemInput struct {
	SpaceID string
	ItemID  string
	Version int
	Fields  Document
}

func (in *UpdateItemInput) Request() *Request {
	req := NewRequest(http.MethodPut, spacePath(in.SpaceID, "items", in.ItemID))
	req.Body = in.Fields
	if in.Version > 0 {
		req.Header.Set("If-Match", strconv.Itoa(in.Version))
	}
	return req
}

// UpdateItemOutput is the decoded update item response.
type UpdateItemOutput struct {
	Item Item `json:"item"`
}

// DeleteItemInput removes an item by id.
type DeleteItemInput struct {
	SpaceID string
	ItemID  string
	Version int
}

func (in *DeleteItemInput) Request() *Request {
	req := NewRequest(http.MethodDelete, spacePath(in.SpaceID, "items", in.ItemID))
	if in.Version > 0 {
		req.Header.Set("If-Match", strconv.Itoa(in.Version))
	}
	return req
}

// DeleteItemOutput is the decoded delete item response.
type DeleteItemOutput struct{}

// BatchGetInput retrieves up to [operation.MaxBatchGetSize] items by id in a
// single call.
type BatchGetInput struct {
	SpaceID string
	IDs     []string
	Include []string
}

func (in *BatchGetInput) Request() *Request {
	req := NewRequest(http.MethodGet, spacePath(in.SpaceID, "items"))
	req.Query.Set("id", strings.Join(in.IDs, ","))
	if len(in.Include) > 0 {
		req.Query.Set("include", strings.Join(in.Include, ","))
	}
	return req
}

// BatchGetOutput is the decoded batch get response.
type BatchGetOutput struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}
