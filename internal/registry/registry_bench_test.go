package registry

import (
	"fmt"
	"testing"

	"github.com/conneroisu/tagdata/internal/htmldata"
)

func benchTags(n int) []Entry {
	tags := make([]Entry, n)
	for i := range tags {
		tags[i] = Entry{
			Name:        fmt.Sprintf("Tag%d", i),
			Description: htmldata.MarkupContent{Kind: htmldata.Markdown, Value: "body"},
			Attributes:  []htmldata.Attribute{{Name: "name"}, {Name: "mode"}},
		}
	}

	return tags
}

func BenchmarkRegistry_New(b *testing.B) {
	tags := benchTags(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(1.1, tags); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegistry_Lookup(b *testing.B) {
	r := MustNew(1.1, benchTags(1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Lookup(fmt.Sprintf("Tag%d", i%1000))
	}
}

func BenchmarkRegistry_All(b *testing.B) {
	r := MustNew(1.1, benchTags(100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.All()
	}
}
