// Package registry provides an immutable table of tag metadata keyed by tag
// name. A Registry is validated once when it is built and never changes
// afterwards, so it can be shared between goroutines without locking.
package registry

import (
	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/htmldata"
)

// Entry is one registered tag.
type Entry = htmldata.Tag

// Registry is a read-only, ordered table of entries.
type Registry struct {
	version float64
	entries []Entry
	index   map[string]int
}

// New validates tags and builds a registry from them. Tag names must be
// non-empty and unique, descriptions must use a known markup kind and every
// attribute needs a name. All defects are reported together as an
// *errors.Collection. The input slice is copied.
func New(version float64, tags []Entry) (*Registry, error) {
	var defects errors.Collection

	r := &Registry{
		version: version,
		entries: make([]Entry, 0, len(tags)),
		index:   make(map[string]int, len(tags)),
	}

	for i, tag := range tags {
		if tag.Name == "" {
			defects.Add(errors.ErrEmptyTagName(i))
			continue
		}
		if _, exists := r.index[tag.Name]; exists {
			defects.Add(errors.ErrDuplicateTag(tag.Name).WithContext("index", i))
			continue
		}
		if !tag.Description.IsZero() && !tag.Description.Kind.Valid() {
			defects.Add(errors.ErrUnknownMarkupKind(tag.Name, string(tag.Description.Kind)))
		}
		for j, attr := range tag.Attributes {
			if attr.Name == "" {
				defects.Add(errors.ErrEmptyAttributeName(tag.Name, j))
			}
			if attr.Description != nil && !attr.Description.IsZero() && !attr.Description.Kind.Valid() {
				defects.Add(errors.ErrUnknownMarkupKind(tag.Name, string(attr.Description.Kind)).
					WithContext("attribute", attr.Name))
			}
		}

		r.index[tag.Name] = len(r.entries)
		r.entries = append(r.entries, tag.Clone())
	}

	if err := defects.Err(); err != nil {
		return nil, err
	}

	return r, nil
}

// MustNew is like New but panics on invalid input. It is meant for tables
// compiled into the binary, where a defect is a build mistake.
func MustNew(version float64, tags []Entry) *Registry {
	r, err := New(version, tags)
	if err != nil {
		panic("registry: " + err.Error())
	}

	return r
}

// FromDocument builds a registry from a decoded HTMLDataV1 document.
func FromDocument(doc *htmldata.Document) (*Registry, error) {
	return New(doc.Version, doc.Tags)
}

// Lookup returns the entry registered under exactly name. A missing name is
// reported through the boolean, not as an error.
func (r *Registry) Lookup(name string) (Entry, bool) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}

	return r.entries[i].Clone(), true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// All returns every entry in authored order. Each call returns a fresh copy.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	for i, entry := range r.entries {
		out[i] = entry.Clone()
	}

	return out
}

// Names returns the registered names in authored order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, entry := range r.entries {
		names[i] = entry.Name
	}

	return names
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Version returns the schema revision the table conforms to.
func (r *Registry) Version() float64 {
	return r.version
}

// Document returns the table as an HTMLDataV1 document.
func (r *Registry) Document() *htmldata.Document {
	return &htmldata.Document{
		Version: r.version,
		Tags:    r.All(),
	}
}
