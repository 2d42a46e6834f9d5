package document

import (
	"fmt"
	"sort"
)

// Kind identifies the variant held by a Document node.
// A node is exactly one of scalar, sequence, or mapping.
type Kind string

const (
	KindScalar   Kind = "scalar"   // string, number, boolean, or null
	KindSequence Kind = "sequence" // ordered list of documents
	KindMapping  Kind = "mapping"  // string keys to documents
)

// Document is the in-memory representation of one specification file,
// independent of whether it was decoded from YAML or JSON.
//
// Documents are treated as immutable once built: merging produces new
// nodes and never modifies its inputs. Subtrees may therefore be shared
// between documents.
type Document struct {
	Kind   Kind
	Scalar interface{}          // set when Kind == KindScalar
	Items  []*Document          // set when Kind == KindSequence
	Fields map[string]*Document // set when Kind == KindMapping
}

// NewScalar creates a scalar node. The value should be a string, number,
// boolean, or nil.
func NewScalar(value interface{}) *Document {
	return &Document{Kind: KindScalar, Scalar: value}
}

// NewSequence creates a sequence node from the given items.
func NewSequence(items ...*Document) *Document {
	return &Document{Kind: KindSequence, Items: items}
}

// NewMapping creates an empty mapping node.
func NewMapping() *Document {
	return &Document{Kind: KindMapping, Fields: make(map[string]*Document)}
}

// IsScalar reports whether the node is a scalar.
func (d *Document) IsScalar() bool { return d != nil && d.Kind == KindScalar }

// IsSequence reports whether the node is a sequence.
func (d *Document) IsSequence() bool { return d != nil && d.Kind == KindSequence }

// IsMapping reports whether the node is a mapping.
func (d *Document) IsMapping() bool { return d != nil && d.Kind == KindMapping }

// Get returns the value stored under key in a mapping node.
// It returns (nil, false) for missing keys and non-mapping nodes.
func (d *Document) Get(key string) (*Document, bool) {
	if !d.IsMapping() {
		return nil, false
	}
	v, ok := d.Fields[key]
	return v, ok
}

// Has reports whether a mapping node contains key.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set stores value under key. It is used while building a document;
// callers must not modify a document after handing it to the composer.
func (d *Document) Set(key string, value *Document) {
	if d.Fields == nil {
		d.Fields = make(map[string]*Document)
	}
	d.Fields[key] = value
}

// Keys returns the mapping keys in sorted order. Key order carries no
// semantics; sorting keeps iteration deterministic.
func (d *Document) Keys() []string {
	if !d.IsMapping() {
		return nil
	}
	keys := make([]string, 0, len(d.Fields))
	for k := range d.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of items in a sequence or entries in a mapping.
func (d *Document) Len() int {
	switch {
	case d.IsSequence():
		return len(d.Items)
	case d.IsMapping():
		return len(d.Fields)
	default:
		return 0
	}
}

// AsString returns the scalar's value as a string.
// The second result is false for non-scalar nodes and non-string scalars.
func (d *Document) AsString() (string, bool) {
	if !d.IsScalar() {
		return "", false
	}
	s, ok := d.Scalar.(string)
	return s, ok
}

// StringField returns the string value stored under key in a mapping.
func (d *Document) StringField(key string) (string, bool) {
	v, ok := d.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// maxNestingDepth bounds document nesting. Nesting depth is
// author-controlled input; conversion and merge recurse on it, so it is
// capped rather than trusted.
const maxNestingDepth = 200

// FromInterface converts a decoded YAML/JSON value tree into a Document.
// Mapping keys must be strings; anything else is rejected, as are trees
// nested deeper than maxNestingDepth.
func FromInterface(v interface{}) (*Document, error) {
	return fromInterface(v, 0)
}

func fromInterface(v interface{}, depth int) (*Document, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("document nesting exceeds maximum depth %d", maxNestingDepth)
	}

	switch val := v.(type) {
	case map[string]interface{}:
		doc := NewMapping()
		for k, item := range val {
			child, err := fromInterface(item, depth+1)
			if err != nil {
				return nil, err
			}
			doc.Fields[k] = child
		}
		return doc, nil

	case map[interface{}]interface{}:
		doc := NewMapping()
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key must be a string, got %T", k)
			}
			child, err := fromInterface(item, depth+1)
			if err != nil {
				return nil, err
			}
			doc.Fields[key] = child
		}
		return doc, nil

	case []interface{}:
		doc := &Document{Kind: KindSequence, Items: make([]*Document, 0, len(val))}
		for _, item := range val {
			child, err := fromInterface(item, depth+1)
			if err != nil {
				return nil, err
			}
			doc.Items = append(doc.Items, child)
		}
		return doc, nil

	case nil, string, bool, int, int64, uint64, float64:
		return NewScalar(val), nil

	default:
		// YAML decoders can produce other numeric widths; accept anything
		// that is not a container as an opaque scalar.
		return NewScalar(val), nil
	}
}

// ToInterface converts a Document back into a plain value tree suitable
// for YAML or JSON encoding.
func (d *Document) ToInterface() interface{} {
	if d == nil {
		return nil
	}
	switch d.Kind {
	case KindMapping:
		out := make(map[string]interface{}, len(d.Fields))
		for k, v := range d.Fields {
			out[k] = v.ToInterface()
		}
		return out
	case KindSequence:
		out := make([]interface{}, 0, len(d.Items))
		for _, item := range d.Items {
			out = append(out, item.ToInterface())
		}
		return out
	default:
		return d.Scalar
	}
}
