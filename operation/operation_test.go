package operation_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/operation"
	"github.com/stretchr/testify/assert"
)

var ErrMock = errors.New("mock error")
var ErrAssertion = errors.New("assertion error")

// requester is a mock content API transport. Safe for concurrent calls.
type requester struct {
	t            *testing.T
	mu           sync.Mutex
	wantRequest  *ezcms.Request
	response     ezcms.Response
	responses    []ezcms.Response
	calls        int
	returnsError bool
}

func newrequester(t *testing.T) *requester {
	return &requester{t: t}
}

func (r *requester) fails() *requester {
	r.returnsError = true
	return r
}

func (r *requester) Request(ctx context.Context, req *ezcms.Request, options ...func(*ezcms.RequestOptions)) (*ezcms.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.returnsError {
		return nil, ErrMock
	}
	if r.wantRequest != nil && !assert.EqualValues(r.t, r.wantRequest, req) {
		return nil, ErrAssertion
	}
	if len(r.responses) > 0 {
		res := r.responses[0]
		r.responses = r.responses[1:]
		return &res, nil
	}
	return &r.response, nil
}

type space struct {
	OperationFails bool
	spaceID        string
}

func (s space) failsTo() space {
	s.OperationFails = true
	return s
}

func (s space) getPost(id string) operation.Get {
	return func(ctx context.Context) (*ezcms.GetItemInput, error) {
		if s.OperationFails {
			return nil, ErrMock
		}
		return &ezcms.GetItemInput{SpaceID: s.spaceID, ItemID: id}, nil
	}
}

func (s space) listPosts() operation.List {
	return func(ctx context.Context) (*ezcms.ListItemsInput, error) {
		if s.OperationFails {
			return nil, ErrMock
		}
		return &ezcms.ListItemsInput{SpaceID: s.spaceID, ItemType: "post"}, nil
	}
}

func (s space) createPost(id string, title string) operation.Create {
	return func(ctx context.Context) (*ezcms.CreateItemInput, error) {
		if s.OperationFails {
			return nil, ErrMock
		}
		return &ezcms.CreateItemInput{
			SpaceID: s.spaceID,
			Item: ezcms.Item{
				ID:   id,
				Type: "post",
				Fields: ezcms.Document{
					"title": json.RawMessage(`"` + title + `"`),
				},
			},
		}, nil
	}
}

func (s space) updatePost(id string, version int) operation.Update {
	return func(ctx context.Context) (*ezcms.UpdateItemInput, error) {
		if s.OperationFails {
			return nil, ErrMock
		}
		return &ezcms.UpdateItemInput{
			SpaceID: s.spaceID,
			ItemID:  id,
			Version: version,
			Fields: ezcms.Document{
				"title": json.RawMessage(`"updated"`),
			},
		}, nil
	}
}

func (s space) deletePost(id string) operation.Delete {
	return func(ctx context.Context) (*ezcms.DeleteItemInput, error) {
		if s.OperationFails {
			return nil, ErrMock
		}
		return &ezcms.DeleteItemInput{SpaceID: s.spaceID, ItemID: id}, nil
	}
}

func (s space) linkAuthor(postID string, authorID string) operation.Link {
	return func(ctx context.Context) (*ezcms.LinkInput, error) {
		if s.OperationFails {
			return nil, ErrMock
		}
		return &ezcms.LinkInput{
			SpaceID:  s.spaceID,
			ItemID:   postID,
			Relation: "authors",
			TargetID: authorID,
		}, nil
	}
}
