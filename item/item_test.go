package item_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/item"
	"github.com/stretchr/testify/assert"
)

type post struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

var fixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func fixtureClient() item.Client {
	return item.NewClient("blog",
		func(o *item.Options) {
			o.GenerateID = func(context.Context) string { return "post-1" }
			o.Tick = func() time.Time { return fixedTime }
		},
	)
}

func TestClientGet(t *testing.T) {
	client := fixtureClient()
	input, err := client.Get("post-1").Invoke(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, "blog", input.SpaceID)
	assert.Equal(t, "post-1", input.ItemID)
}

func TestClientList(t *testing.T) {
	client := fixtureClient()
	input, err := client.List("post").Invoke(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, "blog", input.SpaceID)
	assert.Equal(t, "post", input.ItemType)
}

func TestClientCreate(t *testing.T) {
	client := fixtureClient()
	input, err := client.Create("post", post{Title: "hello"}).Invoke(context.TODO())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "blog", input.SpaceID)
	assert.Equal(t, "post-1", input.Item.ID)
	assert.Equal(t, "post", input.Item.Type)
	assert.Equal(t, fixedTime, input.Item.CreatedAt)
	assert.Equal(t, fixedTime, input.Item.UpdatedAt)
	assert.JSONEq(t, `"hello"`, string(input.Item.Fields["title"]))
}

func TestClientCreateMarshalFails(t *testing.T) {
	client := item.NewClient("blog", func(o *item.Options) {
		o.MarshalDocument = func(any) (ezcms.Document, error) {
			return nil, errors.New("marshal failed")
		}
	})
	input, err := client.Create("post", post{}).Invoke(context.TODO())
	assert.Error(t, err)
	assert.Nil(t, input)
}

func TestClientPut(t *testing.T) {
	t.Run("keeps the provided id", func(t *testing.T) {
		client := fixtureClient()
		input, err := client.Put(ezcms.Item{ID: "existing", Type: "post"}).Invoke(context.TODO())
		assert.NoError(t, err)
		assert.Equal(t, "existing", input.Item.ID)
	})

	t.Run("mints an id when absent", func(t *testing.T) {
		client := fixtureClient()
		input, err := client.Put(ezcms.Item{Type: "post"}).Invoke(context.TODO())
		assert.NoError(t, err)
		assert.Equal(t, "post-1", input.Item.ID)
	})
}

func TestClientUpdate(t *testing.T) {
	client := fixtureClient()
	input, err := client.Update("post-1", 3, post{Title: "revised"}).Invoke(context.TODO())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "blog", input.SpaceID)
	assert.Equal(t, "post-1", input.ItemID)
	assert.Equal(t, 3, input.Version)
	assert.JSONEq(t, `"revised"`, string(input.Fields["title"]))
}

func TestClientDelete(t *testing.T) {
	client := fixtureClient()
	input, err := client.Delete("post-1").Invoke(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, "blog", input.SpaceID)
	assert.Equal(t, "post-1", input.ItemID)
}

func TestClientBatchGet(t *testing.T) {
	client := fixtureClient()
	ids := make([]string, 0, 150)
	for i := 0; i < 150; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	ops, err := client.BatchGet(ids...).Join()
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, ops, 2)
	input, err := ops[0].Invoke(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, "blog", input.SpaceID)
	assert.Len(t, input.IDs, 100)
}

func TestClientBatchDelete(t *testing.T) {
	client := fixtureClient()
	ops, err := client.BatchDelete("1", "2", "3").Join()
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, ops, 1)
	input, err := ops[0].Invoke(context.TODO())
	assert.NoError(t, err)
	assert.Len(t, input.Actions, 3)
	for idx, action := range input.Actions {
		assert.Equal(t, ezcms.ActionDelete, action.Type)
		assert.Equal(t, strconv.Itoa(idx+1), action.ItemID)
	}
}

func TestClientBatchPut(t *testing.T) {
	client := fixtureClient()
	ops, err := client.BatchPut(
		ezcms.Item{ID: "existing", Type: "post"},
		ezcms.Item{Type: "post"},
	).Join()
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, ops, 1)
	input, err := ops[0].Invoke(context.TODO())
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, input.Actions, 2)
	assert.Equal(t, "existing", input.Actions[0].Item.ID)
	assert.Equal(t, "post-1", input.Actions[1].Item.ID)
}

func TestClientBatchCreate(t *testing.T) {
	client := fixtureClient()
	ops, err := client.BatchCreate("post",
		post{Title: "one"},
		post{Title: "two"},
	).Join()
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, ops, 1)
	input, err := ops[0].Invoke(context.TODO())
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, input.Actions, 2)
	assert.Equal(t, ezcms.ActionCreate, input.Actions[0].Type)
	assert.JSONEq(t, `"one"`, string(input.Actions[0].Item.Fields["title"]))
	assert.JSONEq(t, `"two"`, string(input.Actions[1].Item.Fields["title"]))
}

func TestClientUnmarshal(t *testing.T) {
	client := fixtureClient()
	input, err := client.Create("post", post{Title: "hello", Tags: []string{"go"}}).Invoke(context.TODO())
	if !assert.NoError(t, err) {
		return
	}
	var got post
	err = client.Unmarshal(input.Item, &got)
	assert.NoError(t, err)
	assert.Equal(t, post{Title: "hello", Tags: []string{"go"}}, got)
}

func TestClientDefaultIDGenerator(t *testing.T) {
	client := item.NewClient("blog")
	first, err := client.Create("post", post{}).Invoke(context.TODO())
	assert.NoError(t, err)
	second, err := client.Create("post", post{}).Invoke(context.TODO())
	assert.NoError(t, err)
	assert.NotEmpty(t, first.Item.ID)
	assert.NotEqual(t, first.Item.ID, second.Item.ID)
}
