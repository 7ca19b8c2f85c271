package operation_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/operation"
	"github.com/stretchr/testify/assert"
)

func TestGetInvoke(t *testing.T) {
	type testcase struct {
		name      string
		operation operation.Get
		wantInput ezcms.GetItemInput
		wantErr   bool
	}

	blog := space{spaceID: "blog"}

	for _, tc := range []testcase{
		{
			name:      "returns the input successfully",
			operation: blog.getPost("123"),
			wantInput: ezcms.GetItemInput{SpaceID: "blog", ItemID: "123"},
		},
		{
			name:      "returns error if operation fails",
			operation: blog.failsTo().getPost("123"),
			wantErr:   true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			input, err := tc.operation.Invoke(context.TODO())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.EqualValues(t, &tc.wantInput, input)
		})
	}
}

func TestGetRequest(t *testing.T) {
	blog := space{spaceID: "blog"}
	input, err := blog.getPost("123").Modify(operation.WithInclude("authors")).Invoke(context.TODO())
	assert.NoError(t, err)

	req := input.Request()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/spaces/blog/items/123", req.Path)
	assert.EqualValues(t, url.Values{"include": {"authors"}}, req.Query)
}

func TestGetExecute(t *testing.T) {
	type testcase struct {
		name      string
		requester *requester
		operation operation.Get
		wantErr   bool
	}

	blog := space{spaceID: "blog"}

	for _, tc := range []testcase{
		{
			name:      "returns the output successfully",
			operation: blog.getPost("123"),
			requester: newrequester(t),
		},
		{
			name:      "returns error if operation fails",
			operation: blog.failsTo().getPost("123"),
			requester: newrequester(t),
			wantErr:   true,
		},
		{
			name:      "returns error if requester fails",
			operation: blog.getPost("123"),
			requester: newrequester(t).fails(),
			wantErr:   true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			output, err := tc.operation.Execute(context.TODO(), tc.requester)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.NotNil(t, output)
		})
	}
}

func TestGetExecuteDecodesItem(t *testing.T) {
	blog := space{spaceID: "blog"}
	mock := newrequester(t)
	mock.response = ezcms.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"item":{"id":"123","type":"post","version":4}}`),
	}

	output, err := blog.getPost("123").Execute(context.TODO(), mock)
	assert.NoError(t, err)
	assert.Equal(t, "123", output.Item.ID)
	assert.Equal(t, "post", output.Item.Type)
	assert.Equal(t, 4, output.Item.Version)
}

func TestGetExecuteAPIError(t *testing.T) {
	blog := space{spaceID: "blog"}
	mock := newrequester(t)
	mock.response = ezcms.Response{
		StatusCode: http.StatusNotFound,
		Body:       []byte(`{"code":"not_found","message":"no such item"}`),
	}

	_, err := blog.getPost("123").Execute(context.TODO(), mock)
	var apierr *ezcms.APIError
	if assert.ErrorAs(t, err, &apierr) {
		assert.Equal(t, http.StatusNotFound, apierr.StatusCode)
		assert.Equal(t, "not_found", apierr.Code)
	}
}

func TestGetModify(t *testing.T) {
	type testcase struct {
		name      string
		operation operation.Get
		modifier  operation.GetModifier
		wantInput ezcms.GetItemInput
		wantErr   bool
	}

	blog := space{spaceID: "blog"}

	modifier := operation.GetModifierFunc(func(ctx context.Context, input *ezcms.GetItemInput) error {
		input.Include = append(input.Include, "authors")
		return nil
	})

	modifierFails := operation.GetModifierFunc(func(ctx context.Context, input *ezcms.GetItemInput) error {
		return ErrMock
	})

	for _, tc := range []testcase{
		{
			name:      "returns the input successfully",
			operation: blog.getPost("123"),
			modifier:  modifier,
			wantInput: ezcms.GetItemInput{
				SpaceID: "blog",
				ItemID:  "123",
				Include: []string{"authors"},
			},
		},
		{
			name:      "returns error if invocation fails",
			operation: blog.failsTo().getPost("123"),
			modifier:  modifier,
			wantErr:   true,
		},
		{
			name:      "returns error if modifier fails",
			operation: blog.getPost("123"),
			modifier:  modifierFails,
			wantErr:   true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			input, err := tc.operation.Modify(tc.modifier).Invoke(context.TODO())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.EqualValues(t, &tc.wantInput, input)
		})
	}
}

func TestGetModifyBatchGetInput(t *testing.T) {
	type testcase struct {
		name      string
		operation operation.Get
		batchget  ezcms.BatchGetInput
		wantInput ezcms.BatchGetInput
		wantErr   bool
	}

	blog := space{spaceID: "blog"}
	news := space{spaceID: "news"}

	for _, tc := range []testcase{
		{
			name:      "sets the space on an empty input",
			operation: blog.getPost("123"),
			wantInput: ezcms.BatchGetInput{SpaceID: "blog", IDs: []string{"123"}},
		},
		{
			name:      "appends to a populated input",
			operation: blog.getPost("456"),
			batchget:  ezcms.BatchGetInput{SpaceID: "blog", IDs: []string{"123"}},
			wantInput: ezcms.BatchGetInput{SpaceID: "blog", IDs: []string{"123", "456"}},
		},
		{
			name:      "returns error if invocation fails",
			operation: blog.failsTo().getPost("123"),
			wantErr:   true,
		},
		{
			name:      "returns error if space id is missing",
			operation: space{}.getPost("123"),
			wantErr:   true,
		},
		{
			name:      "returns error on space mismatch",
			operation: news.getPost("123"),
			batchget:  ezcms.BatchGetInput{SpaceID: "blog", IDs: []string{"789"}},
			wantErr:   true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.operation.ModifyBatchGetInput(context.TODO(), &tc.batchget)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.EqualValues(t, tc.wantInput, tc.batchget)
		})
	}
}
