package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/htmldata"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tag table as HTMLDataV1",
	Long: `Export the tag table as an HTMLDataV1 document that HTML language
services can load as custom data.

Examples:
  tagdata export                          # JSON on stdout
  tagdata export -o yaml                  # YAML on stdout
  tagdata export -f vue.html-data.json    # Write to a file`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFlags *OutputFlags
	exportFile  string
)

var exportFormats = []string{"json", "yaml"}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportFlags = AddOutputFlags(exportCmd, exportFormats)
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := exportFlags.Resolve(string(htmldata.FormatJSON), exportFormats)
	if err != nil {
		return err
	}

	reg, err := loadRegistry(exportFlags.WithCustom)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	doc := reg.Document()
	if exportFile == "" {
		if err := htmldata.Encode(cmd.OutOrStdout(), doc, htmldata.Format(format)); err != nil {
			return errors.NewIOError(errors.ErrCodeEncodeFailed, "cannot encode tags", err)
		}
	} else {
		f, err := os.Create(exportFile)
		if err != nil {
			return errors.NewIOError(errors.ErrCodeEncodeFailed, "cannot create export file", err).
				WithFile(exportFile)
		}
		if err := encodeAndClose(f, exportFile, doc, htmldata.Format(format)); err != nil {
			return err
		}
	}

	logger.Debug(cmd.Context(), "Exported tags", "count", reg.Len(), "format", format, "file", exportFile)
	return nil
}

// encodeAndClose writes doc to wc and closes it. A failed Close is an error.
func encodeAndClose(wc io.WriteCloser, path string, doc *htmldata.Document, format htmldata.Format) error {
	if err := htmldata.Encode(wc, doc, format); err != nil {
		_ = wc.Close()
		return errors.NewIOError(errors.ErrCodeEncodeFailed, "cannot encode tags", err).WithFile(path)
	}
	if err := wc.Close(); err != nil {
		return errors.NewIOError(errors.ErrCodeEncodeFailed, "cannot close export file", err).WithFile(path)
	}

	return nil
}
