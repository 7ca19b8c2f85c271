// Package item provides a space-scoped client for building typed content
// item operations.
package item

import (
	"context"
	"fmt"
	"time"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/internal/collection"
	"github.com/nisimpson/ezcms/internal/proxy"
	"github.com/nisimpson/ezcms/operation"
	"github.com/oklog/ulid/v2"
)

// Clock functions return the current time.
type Clock func() time.Time

// IDGenerator functions mint identifiers for newly created items.
type IDGenerator func(context.Context) string

type Options struct {
	// MarshalDocument converts Go values into item field payloads.
	MarshalDocument func(any) (ezcms.Document, error)
	// UnmarshalDocument converts item field payloads back into Go values.
	UnmarshalDocument func(ezcms.Document, any) error
	// GenerateID mints ids for created items.
	GenerateID IDGenerator
	// Tick supplies item timestamps.
	Tick Clock
}

func (o *Options) apply(opts []func(*Options)) {
	for _, opt := range opts {
		opt(o)
	}
}

// Client builds operations against the items of a single space.
type Client struct {
	spaceID string
	options Options
}

// NewClient creates a new item [Client] targeting the provided space.
func NewClient(spaceID string, opts ...func(*Options)) Client {
	options := Options{
		MarshalDocument:   proxy.Default.MarshalDocument,
		UnmarshalDocument: proxy.Default.UnmarshalDocument,
		GenerateID:        func(context.Context) string { return ulid.Make().String() },
		Tick:              time.Now,
	}
	options.apply(opts)
	return Client{spaceID: spaceID, options: options}
}

// SpaceID returns the target space id.
func (c Client) SpaceID() string { return c.spaceID }

// Get retrieves the item with the provided id.
func (c Client) Get(id string) operation.Get {
	return func(ctx context.Context) (*ezcms.GetItemInput, error) {
		return &ezcms.GetItemInput{
			SpaceID: c.spaceID,
			ItemID:  id,
		}, nil
	}
}

// List retrieves the items of the provided type. An empty type lists every
// item in the space.
func (c Client) List(itemType string) operation.List {
	return func(ctx context.Context) (*ezcms.ListItemsInput, error) {
		return &ezcms.ListItemsInput{
			SpaceID:  c.spaceID,
			ItemType: itemType,
		}, nil
	}
}

// Create stores a new item of the provided type, marshaling value into the
// item field payload. The item id is minted by the client id generator.
func (c Client) Create(itemType string, value any) operation.Create {
	return func(ctx context.Context) (*ezcms.CreateItemInput, error) {
		fields, err := c.options.MarshalDocument(value)
		if err != nil {
			return nil, fmt.Errorf("marshal item fields: %w", err)
		}
		now := c.options.Tick().UTC()
		return &ezcms.CreateItemInput{
			SpaceID: c.spaceID,
			Item: ezcms.Item{
				ID:        c.options.GenerateID(ctx),
				Type:      itemType,
				CreatedAt: now,
				UpdatedAt: now,
				Fields:    fields,
			},
		}, nil
	}
}

// Put stores the item as provided, minting an id when absent.
func (c Client) Put(item ezcms.Item) operation.Create {
	return func(ctx context.Context) (*ezcms.CreateItemInput, error) {
		if item.ID == "" {
			item.ID = c.options.GenerateID(ctx)
		}
		return &ezcms.CreateItemInput{
			SpaceID: c.spaceID,
			Item:    item,
		}, nil
	}
}

// Update replaces the fields of the item with the provided id. A positive
// version guards against concurrent writers.
func (c Client) Update(id string, version int, value any) operation.Update {
	return func(ctx context.Context) (*ezcms.UpdateItemInput, error) {
		fields, err := c.options.MarshalDocument(value)
		if err != nil {
			return nil, fmt.Errorf("marshal item fields: %w", err)
		}
		return &ezcms.UpdateItemInput{
			SpaceID: c.spaceID,
			ItemID:  id,
			Version: version,
			Fields:  fields,
		}, nil
	}
}

// Delete removes the item with the provided id.
func (c Client) Delete(id string) operation.Delete {
	return func(ctx context.Context) (*ezcms.DeleteItemInput, error) {
		return &ezcms.DeleteItemInput{
			SpaceID: c.spaceID,
			ItemID:  id,
		}, nil
	}
}

// BatchGet retrieves the named items, partitioning the id list into as many
// batch calls as necessary.
func (c Client) BatchGet(ids ...string) operation.BatchGetCollection {
	return collection.Map(ids, func(id string) operation.BatchGetModifier {
		return c.Get(id)
	})
}

// BatchDelete removes the named items, partitioning the id list into as
// many batch calls as necessary.
func (c Client) BatchDelete(ids ...string) operation.BatchWriteCollection {
	return collection.Map(ids, func(id string) operation.BatchWriteModifier {
		return c.Delete(id)
	})
}

// BatchPut stores the items as provided, partitioning the set into as many
// batch calls as necessary. Ids are minted when absent.
func (c Client) BatchPut(items ...ezcms.Item) operation.BatchWriteCollection {
	return collection.Map(items, func(it ezcms.Item) operation.BatchWriteModifier {
		return c.Put(it)
	})
}

// BatchCreate stores one new item of the provided type per value,
// partitioning the set into as many batch calls as necessary.
func (c Client) BatchCreate(itemType string, values ...any) operation.BatchWriteCollection {
	return collection.Map(values, func(value any) operation.BatchWriteModifier {
		return c.Create(itemType, value)
	})
}

// Unmarshal decodes the item field payload into out.
func (c Client) Unmarshal(item ezcms.Item, out any) error {
	return c.options.UnmarshalDocument(item.Fields, out)
}
