package ezcms

import (
	"net/http"
	"strconv"
)

// Relationship is a named, directed link between two items. The start item
// owns the relationship; the end item is its target.
type Relationship struct {
	Name        string `json:"name"`
	StartItemID string `json:"start_item_id"`
	EndItemID   string `json:"end_item_id"`
}

// LinkInput creates a relationship between two items.
type LinkInput struct {
	SpaceID  string
	ItemID   string
	Relation string
	TargetID string
}

func (in *LinkInput) Request() *Request {
	req := NewRequest(http.MethodPost, spacePath(in.SpaceID, "items", in.ItemID, "relationships", in.Relation))
	req.Body = Relationship{
		Name:        in.Relation,
		StartItemID: in.ItemID,
		EndItemID:   in.TargetID,
	}
	return req
}

// LinkOutput is the decoded link response.
type LinkOutput struct {
	Relationship Relationship `json:"relationship"`
}

// UnlinkInput removes a relationship between two items.
type UnlinkInput struct {
	SpaceID  string
	ItemID   string
	Relation string
	TargetID string
}

func (in *UnlinkInput) Request() *Request {
	req := NewRequest(http.MethodDelete, spacePath(in.SpaceID, "items", in.ItemID, "relationships", in.Relation))
	req.Query.Set("target", in.TargetID)
	return req
}

// UnlinkOutput is the decoded unlink response.
type UnlinkOutput struct{}

// ListRelationshipsInput requests the relationships owned by an item,
// optionally restricted to a single relation name.
type ListRelationshipsInput struct {
	SpaceID  string
	ItemID   string
	Relation string
	Limit    int
	Cursor   string
}

func (in *ListRelationshipsInput) Request() *Request {
	path := spacePath(in.SpaceID, "items", in.ItemID, "relationships")
	if in.Relation != "" {
		path = spacePath(in.SpaceID, "items", in.ItemID, "relationships", in.Relation)
	}
	req := NewRequest(http.MethodGet, path)
	if in.Limit > 0 {
		req.Query.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Cursor != "" {
		req.Query.Set("cursor", in.Cursor)
	}
	return req
}

// ListRelationshipsOutput is the decoded relationship collection response.
type ListRelationshipsOutput struct {
	Relationships []Relationship `json:"relationships"`
	Total         int            `json:"total"`
	NextCursor    string         `json:"next_cursor,omitempty"`
}
