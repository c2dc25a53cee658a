package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tagdata/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show version and build information together with the version of the
embedded tag table.

Examples:
  tagdata version                 # Human readable
  tagdata version --format json   # Machine readable
  tagdata version --format short  # Version only`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var versionFormat string

var versionFormats = []string{"text", "json", "short"}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text",
		"Output format (text|json|short)")

	AddFlagValidation(versionCmd, "format", func(format string) error {
		return ValidateFormat(format, versionFormats)
	})
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := version.Get()

	switch versionFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	case "short":
		fmt.Fprintln(out, info.Short())
		return nil
	default:
		outputVersionText(out, info)
		return nil
	}
}

func outputVersionText(out io.Writer, info version.Info) {
	fmt.Fprintf(out, "tagdata %s\n", info.Short())
	if !info.Built.IsZero() {
		fmt.Fprintf(out, "Built: %s\n", info.Built.Format("2006-01-02 15:04:05 UTC"))
	}
	fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
	fmt.Fprintf(out, "Platform: %s\n", info.Platform)
	if info.Dirty {
		fmt.Fprintln(out, "Modified: true")
	}
	fmt.Fprintf(out, "HTMLData: %v (%d built-in tags)\n", info.DataVersion, info.BuiltinTags)
}
