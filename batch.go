package ezcms

import "net/http"

// ActionType discriminates the members of the [Action] union.
type ActionType string

const (
	ActionCreate ActionType = "create"
	ActionUpdate ActionType = "update"
	ActionDelete ActionType = "delete"
	ActionLink   ActionType = "link"
	ActionUnlink ActionType = "unlink"
)

// Action is one member of a batch write request. Exactly one shape applies
// per type: create carries the item, update carries the item id, version, and
// fields, delete carries the item id and version, link and unlink carry the
// item id, relation, and target.
type Action struct {
	Type     ActionType `json:"type"`
	ItemID   string     `json:"item_id,omitempty"`
	Version  int        `json:"version,omitempty"`
	Item     *Item      `json:"item,omitempty"`
	Fields   Document   `json:"fields,omitempty"`
	Relation string     `json:"relation,omitempty"`
	TargetID string     `json:"target_id,omitempty"`
}

// BatchWriteInput applies up to [operation.MaxBatchWriteSize] actions in a
// single call. Actions apply in order; the API reports per-action results.
type BatchWriteInput struct {
	SpaceID        string
	Actions        []Action
	IdempotencyKey string
}

func (in *BatchWriteInput) Request() *Request {
	req := NewRequest(http.MethodPost, spacePath(in.SpaceID, "items", "batch"))
	req.Body = struct {
		Actions []Action `json:"actions"`
	}{Actions: in.Actions}
	if in.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", in.IdempotencyKey)
	}
	return req
}

// ActionResult reports the outcome of a single batch action.
type ActionResult struct {
	Type   ActionType `json:"type"`
	ItemID string     `json:"item_id,omitempty"`
	Error  *APIError  `json:"error,omitempty"`
}

// BatchWriteOutput is the decoded batch write response. Failed holds the
// actions the API could not apply; callers may resubmit them.
type BatchWriteOutput struct {
	Results []ActionResult `json:"results"`
	Failed  []Action       `json:"failed,omitempty"`
}
