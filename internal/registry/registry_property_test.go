//go:build property
// +build property

package registry

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/conneroisu/tagdata/internal/htmldata"
)

func uniqueTags(names []string) []Entry {
	seen := make(map[string]bool, len(names))
	tags := make([]Entry, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, Entry{
			Name:        name,
			Description: htmldata.MarkupContent{Kind: htmldata.Markdown, Value: "about " + name},
			Attributes:  []htmldata.Attribute{},
		})
	}

	return tags
}

// TestRegistryProperties checks the lookup and enumeration contract over
// generated tables.
func TestRegistryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	names := gen.SliceOfN(20, gen.RegexMatch(`^[A-Za-z][A-Za-z0-9-]{0,15}$`))

	properties.Property("names are unique", prop.ForAll(
		func(names []string) bool {
			r, err := New(1.1, uniqueTags(names))
			if err != nil {
				return false
			}
			seen := make(map[string]bool)
			for _, entry := range r.All() {
				if seen[entry.Name] {
					return false
				}
				seen[entry.Name] = true
			}
			return true
		},
		names,
	))

	properties.Property("every entry is found by its name", prop.ForAll(
		func(names []string) bool {
			r := MustNew(1.1, uniqueTags(names))
			for _, entry := range r.All() {
				got, ok := r.Lookup(entry.Name)
				if !ok || !reflect.DeepEqual(got, entry) {
					return false
				}
			}
			return true
		},
		names,
	))

	properties.Property("enumeration is restartable and ordered", prop.ForAll(
		func(names []string) bool {
			tags := uniqueTags(names)
			r := MustNew(1.1, tags)
			first, second := r.All(), r.All()
			if !reflect.DeepEqual(first, second) || len(first) != len(tags) {
				return false
			}
			for i := range tags {
				if first[i].Name != tags[i].Name {
					return false
				}
			}
			return true
		},
		names,
	))

	properties.Property("unregistered names miss", prop.ForAll(
		func(names []string, probe string) bool {
			r := MustNew(1.1, uniqueTags(names))
			for _, name := range names {
				if name == probe {
					return true
				}
			}
			_, ok := r.Lookup(probe)
			return !ok
		},
		names,
		gen.AnyString(),
	))

	properties.Property("duplicates are rejected", prop.ForAll(
		func(names []string) bool {
			tags := uniqueTags(names)
			if len(tags) == 0 {
				return true
			}
			tags = append(tags, Entry{Name: tags[len(tags)-1].Name})
			r, err := New(1.1, tags)
			return err != nil && r == nil
		},
		names,
	))

	properties.TestingRun(t)
}
