package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tagdata/internal/htmldata"
	"github.com/conneroisu/tagdata/internal/registry"
)

// RouterJSON is a custom data file with two tags, one described in markdown
// and one with a bare string description.
const RouterJSON = `{
  "version": 1.1,
  "tags": [
    {
      "name": "RouterView",
      "description": {"kind": "markdown", "value": "Renders the matched route."},
      "attributes": [{"name": "name"}, {"name": "route"}]
    },
    {
      "name": "RouterLink",
      "description": "Navigates to a route.",
      "attributes": [{"name": "to", "description": {"kind": "plaintext", "value": "Target location."}}]
    }
  ]
}`

// RouterYAML is RouterJSON in YAML form.
const RouterYAML = `version: 1.1
tags:
  - name: RouterView
    description:
      kind: markdown
      value: Renders the matched route.
    attributes:
      - name: name
      - name: route
  - name: RouterLink
    description: Navigates to a route.
    attributes:
      - name: to
        description:
          kind: plaintext
          value: Target location.
`

// DuplicateJSON declares one tag twice and one without a name.
const DuplicateJSON = `{"version":1.1,"tags":[{"name":"A"},{"name":"A"},{"name":""}]}`

// CreateDataFile writes content to name inside a fresh temporary directory
func CreateDataFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

// CreateTestConfig writes a .tagdata.yml listing customFiles and returns its path
func CreateTestConfig(t *testing.T, customFiles ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("data:\n  custom_files:\n")
	for _, path := range customFiles {
		b.WriteString("    - " + path + "\n")
	}

	return CreateDataFile(t, ".tagdata.yml", b.String())
}

// CreateTestRegistry creates a version 1.1 registry with a plaintext entry per name
func CreateTestRegistry(t *testing.T, names ...string) *registry.Registry {
	t.Helper()

	tags := make([]registry.Entry, 0, len(names))
	for _, name := range names {
		tags = append(tags, registry.Entry{
			Name:        name,
			Description: htmldata.MarkupContent{Kind: htmldata.PlainText, Value: "The " + name + " tag."},
		})
	}

	reg, err := registry.New(1.1, tags)
	require.NoError(t, err)
	return reg
}
