package proxy

import (
	"encoding/json"

	"github.com/nisimpson/ezcms"
)

var Default = proxy{
	DocumentMarshaler: documentMarshaler{},
}

type proxy struct {
	DocumentMarshaler
}

// DocumentMarshaler converts between Go values and wire documents.
type DocumentMarshaler interface {
	MarshalDocument(in any) (ezcms.Document, error)
	UnmarshalDocument(doc ezcms.Document, out any) error
}

var JSONDocumentMarshalerProxy = documentMarshaler{}

type documentMarshaler struct{}

func (p documentMarshaler) MarshalDocument(in any) (ezcms.Document, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	doc := ezcms.Document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (p documentMarshaler) UnmarshalDocument(doc ezcms.Document, out any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
