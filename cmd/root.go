// Package cmd provides the command-line interface for tagdata.
//
// Configuration System:
//
//	Settings are resolved with the following precedence:
//	1. Command-line flags (--config, --log-level, --output, ...) - highest priority
//	2. TAGDATA_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (TAGDATA_OUTPUT_FORMAT, ...)
//	4. Configuration file (.tagdata.yml) - lowest priority
//
// Environment Variables:
//
//	TAGDATA_CONFIG_FILE: Path to custom configuration file
//	TAGDATA_LOG_LEVEL: Override log level
//	TAGDATA_RENDER_STYLE: Override the markdown style used by show
//	TAGDATA_DATA_CUSTOM_FILES: Comma separated custom data files
//	And the rest following the TAGDATA_<SECTION>_<OPTION> pattern
package cmd

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/tagdata/internal/builtins"
	"github.com/conneroisu/tagdata/internal/config"
	"github.com/conneroisu/tagdata/internal/customdata"
	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/logging"
	"github.com/conneroisu/tagdata/internal/registry"
)

var (
	cfgFile  string
	logLevel string

	// set by the root command before any subcommand runs
	cfg    *config.Config
	logger logging.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tagdata",
	Short: "Browse and validate Vue built-in tag documentation",
	Long: `tagdata exposes the documentation of the Vue template built-ins
(Transition, TransitionGroup, KeepAlive, Teleport, Suspense, component, slot
and template) in the HTMLDataV1 format used by HTML language services.

Quick Start:
  tagdata list                    List all built-in tags
  tagdata show Transition         Show the documentation of a tag
  tagdata export -o yaml          Export the table as HTMLDataV1
  tagdata check tags.json         Validate a custom data file
  tagdata check tags.json --watch Revalidate on every change`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .tagdata.yml, can also use TAGDATA_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
}

// initConfig locates the configuration file, loads and validates the
// configuration and builds the logger shared by all subcommands.
//
// Configuration file lookup (highest to lowest):
//  1. --config flag
//  2. TAGDATA_CONFIG_FILE environment variable
//  3. .tagdata.yml in the current directory, if present
func initConfig(cmd *cobra.Command, _ []string) error {
	explicit := true
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("TAGDATA_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		explicit = false
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tagdata")
	}

	viper.SetEnvPrefix("TAGDATA")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return errors.NewInternalError(errors.ErrCodeInternalError, "cannot bind log-level flag", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !stderrors.As(err, &notFound) {
			return errors.NewConfigError(errors.ErrCodeConfigInvalid, "cannot read config file").
				WithFile(viper.ConfigFileUsed()).
				WithCause(err)
		}
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	loggerConfig := cfg.LoggerConfig()
	loggerConfig.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(loggerConfig)

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug(cmd.Context(), "Using config file", "path", used)
	}

	return nil
}

// loadRegistry returns the built-in registry, merged with the configured
// custom data files when withCustom is set.
func loadRegistry(withCustom bool) (*registry.Registry, error) {
	if !withCustom || len(cfg.Data.CustomFiles) == 0 {
		return builtins.Registry(), nil
	}

	return customdata.LoadAll(builtins.Registry(), cfg.Data.CustomFiles...)
}
