package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/tagdata/internal/config"
	"github.com/conneroisu/tagdata/internal/registry"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all known tags",
	Long: `List the built-in tags in their documented order with a one line summary.

Examples:
  tagdata list                    # List all tags in table format
  tagdata list -o json            # Output as JSON (short flag)
  tagdata list --output yaml      # Output as YAML
  tagdata list --with-custom      # Include tags from data.custom_files`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFlags *OutputFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddOutputFlags(listCmd, config.OutputFormats)
}

// tagSummary is the listing view of one entry
type tagSummary struct {
	Name       string   `json:"name"       yaml:"name"`
	Kind       string   `json:"kind"       yaml:"kind"`
	Attributes []string `json:"attributes" yaml:"attributes"`
	Summary    string   `json:"summary"    yaml:"summary"`
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := listFlags.Resolve(cfg.Output.Format, config.OutputFormats)
	if err != nil {
		return err
	}

	reg, err := loadRegistry(listFlags.WithCustom)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	summaries := summarize(reg)
	logger.Debug(cmd.Context(), "Listing tags", "count", len(summaries), "format", format)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputListJSON(out, summaries)
	case "yaml":
		return outputListYAML(out, summaries)
	default:
		return outputListTable(out, summaries)
	}
}

func summarize(reg *registry.Registry) []tagSummary {
	entries := reg.All()
	summaries := make([]tagSummary, 0, len(entries))

	for _, entry := range entries {
		summaries = append(summaries, tagSummary{
			Name:       entry.Name,
			Kind:       entry.Description.Kind.String(),
			Attributes: entry.AttributeNames(),
			Summary:    firstLine(entry.Description.Value),
		})
	}

	return summaries
}

// firstLine returns the first non-blank line of a description without
// markdown emphasis markers
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return strings.ReplaceAll(line, "**", "")
		}
	}

	return ""
}

func outputListTable(out io.Writer, summaries []tagSummary) error {
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No tags found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tATTRIBUTES\tSUMMARY")
	fmt.Fprintln(w, "----\t----\t----------\t-------")

	for _, s := range summaries {
		attrs := "-"
		if len(s.Attributes) > 0 {
			attrs = strings.Join(s.Attributes, ",")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Kind, attrs, s.Summary)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal: %d tags\n", len(summaries))
	return nil
}

func outputListJSON(out io.Writer, summaries []tagSummary) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(summaries)
}

func outputListYAML(out io.Writer, summaries []tagSummary) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(summaries); err != nil {
		return err
	}
	return encoder.Close()
}
