package registry

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/htmldata"
)

func markdown(value string) htmldata.MarkupContent {
	return htmldata.MarkupContent{Kind: htmldata.Markdown, Value: value}
}

func sampleTags() []Entry {
	return []Entry{
		{Name: "Transition", Description: markdown("Animates a single element."), Attributes: []htmldata.Attribute{}},
		{Name: "slot", Description: markdown("Slot outlet."), Attributes: []htmldata.Attribute{{Name: "name"}}},
		{Name: "template", Description: htmldata.MarkupContent{Kind: htmldata.PlainText, Value: "Grouping."}},
	}
}

func TestNew(t *testing.T) {
	r, err := New(1.1, sampleTags())
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 1.1, r.Version())
	assert.Equal(t, []string{"Transition", "slot", "template"}, r.Names())
}

func TestNew_Empty(t *testing.T) {
	r, err := New(1.1, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.All())
	_, ok := r.Lookup("anything")
	assert.False(t, ok)
}

func TestNew_RejectsDefects(t *testing.T) {
	tests := []struct {
		name string
		tags []Entry
		code string
	}{
		{
			name: "empty name",
			tags: []Entry{{Name: ""}},
			code: errors.ErrCodeEmptyTagName,
		},
		{
			name: "duplicate name",
			tags: []Entry{{Name: "slot"}, {Name: "slot"}},
			code: errors.ErrCodeDuplicateTag,
		},
		{
			name: "unknown markup kind",
			tags: []Entry{{Name: "slot", Description: htmldata.MarkupContent{Kind: "html", Value: "<b>x</b>"}}},
			code: errors.ErrCodeUnknownMarkupKind,
		},
		{
			name: "value without kind",
			tags: []Entry{{Name: "slot", Description: htmldata.MarkupContent{Value: "body"}}},
			code: errors.ErrCodeUnknownMarkupKind,
		},
		{
			name: "empty attribute name",
			tags: []Entry{{Name: "slot", Attributes: []htmldata.Attribute{{Name: "name"}, {Name: ""}}}},
			code: errors.ErrCodeEmptyAttribute,
		},
		{
			name: "unknown attribute markup kind",
			tags: []Entry{{Name: "slot", Attributes: []htmldata.Attribute{
				{Name: "name", Description: &htmldata.MarkupContent{Kind: "rst", Value: "x"}},
			}}},
			code: errors.ErrCodeUnknownMarkupKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(1.1, tt.tags)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, tt.code, errors.Code(err))
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestNew_ReportsEveryDefect(t *testing.T) {
	_, err := New(1.1, []Entry{
		{Name: ""},
		{Name: "slot"},
		{Name: "slot"},
		{Name: "KeepAlive", Description: htmldata.MarkupContent{Kind: "html", Value: "x"}},
	})
	require.Error(t, err)

	var collection *errors.Collection
	require.True(t, stderrors.As(err, &collection))
	require.Len(t, collection.Errors, 3)
	assert.Equal(t, errors.ErrCodeEmptyTagName, collection.Errors[0].Code)
	assert.Equal(t, errors.ErrCodeDuplicateTag, collection.Errors[1].Code)
	assert.Equal(t, "slot", collection.Errors[1].Tag)
	assert.Equal(t, errors.ErrCodeUnknownMarkupKind, collection.Errors[2].Code)

	assert.True(t, stderrors.Is(err, errors.ErrDuplicateTag("any")))
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(1.1, []Entry{{Name: "a"}, {Name: "a"}})
	})
	assert.NotPanics(t, func() {
		MustNew(1.1, sampleTags())
	})
}

func TestLookup(t *testing.T) {
	r := MustNew(1.1, sampleTags())

	entry, ok := r.Lookup("slot")
	require.True(t, ok)
	assert.Equal(t, "slot", entry.Name)
	assert.Equal(t, htmldata.Markdown, entry.Description.Kind)
	assert.Equal(t, []string{"name"}, entry.AttributeNames())

	t.Run("exact match only", func(t *testing.T) {
		for _, name := range []string{"Slot", "SLOT", " slot", "slot ", "transition", ""} {
			_, ok := r.Lookup(name)
			assert.False(t, ok, "lookup of %q should miss", name)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		entry, ok := r.Lookup("unknown-tag")
		assert.False(t, ok)
		assert.Equal(t, Entry{}, entry)
		assert.False(t, r.Has("unknown-tag"))
	})
}

func TestLookup_ReturnsCopies(t *testing.T) {
	r := MustNew(1.1, sampleTags())

	entry, ok := r.Lookup("slot")
	require.True(t, ok)
	entry.Attributes[0].Name = "mutated"
	entry.Description.Value = "mutated"

	again, ok := r.Lookup("slot")
	require.True(t, ok)
	assert.Equal(t, "name", again.Attributes[0].Name)
	assert.Equal(t, "Slot outlet.", again.Description.Value)
}

func TestNew_CopiesInput(t *testing.T) {
	tags := sampleTags()
	r := MustNew(1.1, tags)

	tags[1].Name = "renamed"
	tags[1].Attributes[0].Name = "renamed"

	entry, ok := r.Lookup("slot")
	require.True(t, ok)
	assert.Equal(t, "name", entry.Attributes[0].Name)
	assert.False(t, r.Has("renamed"))
}

func TestAll(t *testing.T) {
	r := MustNew(1.1, sampleTags())

	first := r.All()
	second := r.All()
	assert.Equal(t, first, second)
	require.Len(t, first, 3)

	first[0].Name = "changed"
	assert.Equal(t, "Transition", r.All()[0].Name)

	for _, entry := range r.All() {
		assert.NotNil(t, entry.Attributes, "attributes of %s should encode as a list", entry.Name)
	}
}

func TestAll_MatchesLookup(t *testing.T) {
	r := MustNew(1.1, sampleTags())

	for _, entry := range r.All() {
		got, ok := r.Lookup(entry.Name)
		require.True(t, ok)
		assert.Equal(t, entry, got)
	}
}

func TestDocument(t *testing.T) {
	r := MustNew(1.1, sampleTags())

	doc := r.Document()
	assert.Equal(t, 1.1, doc.Version)
	assert.Equal(t, r.All(), doc.Tags)

	rebuilt, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, r.All(), rebuilt.All())
}

func TestConcurrentReads(t *testing.T) {
	r := MustNew(1.1, sampleTags())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, ok := r.Lookup("Transition")
				assert.True(t, ok)
				assert.Len(t, r.All(), 3)
			}
		}()
	}
	wg.Wait()
}
