// Package graph models content items and their relationships as nodes and
// edges, building operations that keep both in step.
package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/internal/proxy"
	"github.com/nisimpson/ezcms/operation"
)

// Data is the interface implemented by types that map onto content items
// with relationships to other items.
type Data interface {
	// ContentID returns the unique item id.
	ContentID() string
	// ContentItemType returns the item type name.
	ContentItemType() string
	// ContentRelationships returns the names of the relationships this
	// item owns.
	ContentRelationships() []string
	// ContentGetRelationship returns the targets of the named relationship.
	ContentGetRelationship(name string) []Data
}

// RelationshipUnmarshaler is the interface implemented by types that can
// absorb relationship records retrieved from the content API.
type RelationshipUnmarshaler interface {
	// UnmarshalRelationship absorbs a single relationship record.
	UnmarshalRelationship(rel ezcms.Relationship) error
}

type Options struct {
	// MarshalDocument converts node values into item field payloads.
	MarshalDocument func(any) (ezcms.Document, error)
	// UnmarshalDocument converts item field payloads back into node values.
	UnmarshalDocument func(ezcms.Document, any) error
}

// Graph builds operations against the item graph of a single space.
type Graph struct {
	spaceID string
	options Options
}

// New creates a new [Graph] targeting the provided space.
func New(spaceID string, opts ...func(*Options)) Graph {
	options := Options{
		MarshalDocument:   proxy.Default.MarshalDocument,
		UnmarshalDocument: proxy.Default.UnmarshalDocument,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return Graph{spaceID: spaceID, options: options}
}

// Get retrieves the item backing the provided node.
func (g Graph) Get(data Data) operation.Get {
	return func(ctx context.Context) (*ezcms.GetItemInput, error) {
		return &ezcms.GetItemInput{
			SpaceID: g.spaceID,
			ItemID:  data.ContentID(),
		}, nil
	}
}

// Put stores the node and links every relationship target it declares,
// partitioning the set into as many batch calls as necessary. Targets are
// linked, not stored; put each node explicitly.
func (g Graph) Put(data Data) operation.BatchWriteCollection {
	batch := operation.BatchWriteCollection{g.putNode(data)}
	for _, name := range data.ContentRelationships() {
		for _, target := range data.ContentGetRelationship(name) {
			batch = append(batch, g.Link(data, target, name))
		}
	}
	return batch
}

func (g Graph) putNode(data Data) operation.Create {
	return func(ctx context.Context) (*ezcms.CreateItemInput, error) {
		fields, err := g.options.MarshalDocument(data)
		if err != nil {
			return nil, fmt.Errorf("marshal node %q: %w", data.ContentID(), err)
		}
		return &ezcms.CreateItemInput{
			SpaceID: g.spaceID,
			Item: ezcms.Item{
				ID:     data.ContentID(),
				Type:   data.ContentItemType(),
				Fields: fields,
			},
		}, nil
	}
}

// Link creates the named relationship from start to end.
func (g Graph) Link(start, end Data, name string) operation.Link {
	return func(ctx context.Context) (*ezcms.LinkInput, error) {
		return &ezcms.LinkInput{
			SpaceID:  g.spaceID,
			ItemID:   start.ContentID(),
			Relation: name,
			TargetID: end.ContentID(),
		}, nil
	}
}

// Unlink removes the named relationship from start to end.
func (g Graph) Unlink(start, end Data, name string) operation.Unlink {
	return func(ctx context.Context) (*ezcms.UnlinkInput, error) {
		return &ezcms.UnlinkInput{
			SpaceID:  g.spaceID,
			ItemID:   start.ContentID(),
			Relation: name,
			TargetID: end.ContentID(),
		}, nil
	}
}

// ListRelated retrieves the relationships the node owns under the provided
// name. An empty name lists every relationship the node owns.
func (g Graph) ListRelated(data Data, name string) operation.ListRelationships {
	return func(ctx context.Context) (*ezcms.ListRelationshipsInput, error) {
		return &ezcms.ListRelationshipsInput{
			SpaceID:  g.spaceID,
			ItemID:   data.ContentID(),
			Relation: name,
		}, nil
	}
}

// Unmarshal decodes the item field payload into the provided node value.
func (g Graph) Unmarshal(item ezcms.Item, out any) error {
	return g.options.UnmarshalDocument(item.Fields, out)
}

// UnmarshalRelationships feeds each retrieved relationship record to out,
// joining any record level failures.
func UnmarshalRelationships(output *ezcms.ListRelationshipsOutput, out RelationshipUnmarshaler) error {
	if output == nil {
		return nil
	}
	errs := make([]error, 0, len(output.Relationships))
	for _, rel := range output.Relationships {
		if err := out.UnmarshalRelationship(rel); err != nil {
			errs = append(errs, fmt.Errorf("unmarshal relationship %q: %w", rel.Name, err))
		}
	}
	return errors.Join(errs...)
}
