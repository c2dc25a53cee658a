// Package builtins holds the metadata for the template constructs the Vue
// compiler recognizes natively: Transition, TransitionGroup, KeepAlive,
// Teleport, Suspense, component, slot and template.
//
// The table is an HTMLDataV1 document embedded at build time and decoded once
// when the package is loaded. It never changes afterwards.
package builtins

import (
	"bytes"
	_ "embed"

	"github.com/conneroisu/tagdata/internal/htmldata"
	"github.com/conneroisu/tagdata/internal/registry"
)

// TemplateJSON is the raw HTMLDataV1 table, embedded at build time.
//
//go:embed data/vue-template-built-in.json
var TemplateJSON []byte

var builtin = mustLoad(TemplateJSON)

func mustLoad(data []byte) *registry.Registry {
	doc, err := htmldata.Decode(bytes.NewReader(data), htmldata.FormatJSON)
	if err != nil {
		panic("builtins: embedded table: " + err.Error())
	}

	return registry.MustNew(doc.Version, doc.Tags)
}

// Registry returns the process-wide built-in tag registry.
func Registry() *registry.Registry {
	return builtin
}

// Lookup finds a built-in tag by its exact name.
func Lookup(name string) (registry.Entry, bool) {
	return builtin.Lookup(name)
}

// All returns every built-in tag in authored order.
func All() []registry.Entry {
	return builtin.All()
}
