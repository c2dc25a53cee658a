package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/render"
)

var showCmd = &cobra.Command{
	Use:     "show <name>",
	Aliases: []string{"s"},
	Short:   "Show the documentation of a tag",
	Long: `Show the documentation of a tag the way an editor hover displays it.
Names are matched exactly; an unknown name lists the nearest known tags.

Examples:
  tagdata show Transition         # Rendered markdown
  tagdata show slot --raw         # Markdown source
  tagdata show KeepAlive -w 60    # Wrap at 60 columns`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	showRaw        bool
	showWidth      int
	showStyle      string
	showWithCustom bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the description source without rendering")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 0, "Word wrap width (default render.width)")
	showCmd.Flags().StringVar(&showStyle, "style", "", "Markdown style (default render.style)")
	showCmd.Flags().BoolVar(&showWithCustom, "with-custom", false, "Include the tags of the configured custom data files")
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	reg, err := loadRegistry(showWithCustom)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	entry, ok := reg.Lookup(name)
	if !ok {
		suggestions := errors.TagNotFoundSuggestions(name, reg.Names())
		fmt.Fprint(cmd.ErrOrStderr(), errors.FormatSuggestions(fmt.Sprintf("Unknown tag '%s'", name), suggestions))
		return fmt.Errorf("tag %q not found", name)
	}

	out := cmd.OutOrStdout()
	if showRaw {
		fmt.Fprintln(out, render.Raw(entry))
		return nil
	}

	style, width := cfg.Render.Style, cfg.Render.Width
	if showStyle != "" {
		style = showStyle
	}
	if showWidth > 0 {
		width = showWidth
	}

	r, err := render.New(style, width)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeRenderFailed, "cannot create renderer", err)
	}

	text, err := r.Hover(entry)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeRenderFailed, "cannot render tag", err).WithTag(name)
	}

	fmt.Fprintln(out, text)
	return nil
}
