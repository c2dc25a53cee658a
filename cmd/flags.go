package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/tagdata/internal/errors"
)

// OutputFlags provides the output flags shared by the listing commands
type OutputFlags struct {
	Format     string
	WithCustom bool
}

// AddOutputFlags adds --output and --with-custom to a command. An empty
// format means the configured output.format.
func AddOutputFlags(cmd *cobra.Command, formats []string) *OutputFlags {
	flags := &OutputFlags{}

	cmd.Flags().StringVarP(&flags.Format, "output", "o", "",
		fmt.Sprintf("Output format (%s)", strings.Join(formats, "|")))
	cmd.Flags().BoolVar(&flags.WithCustom, "with-custom", false,
		"Include the tags of the configured custom data files")

	AddFlagValidation(cmd, "output", func(format string) error {
		return ValidateFormat(format, formats)
	})

	return flags
}

// Resolve returns the format to use, falling back to the configured one.
func (f *OutputFlags) Resolve(fallback string, formats []string) (string, error) {
	format := f.Format
	if format == "" {
		format = fallback
	}

	if err := ValidateFormat(format, formats); err != nil {
		return "", err
	}

	return strings.ToLower(format), nil
}

// ValidateFormat checks format against the accepted values, ignoring case
func ValidateFormat(format string, formats []string) error {
	for _, valid := range formats {
		if strings.EqualFold(format, valid) {
			return nil
		}
	}

	return errors.NewValidationError(
		errors.ErrCodeInvalidOutputFormat,
		fmt.Sprintf("invalid format %q, must be one of: %s", format, strings.Join(formats, ", ")),
	)
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}
