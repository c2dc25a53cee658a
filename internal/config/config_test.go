package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/logging"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TAGDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(newViper())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Render.Style)
	assert.Equal(t, 80, cfg.Render.Width)
	assert.Empty(t, cfg.Data.CustomFiles)
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tagdata.yml")
	content := `log:
  level: DEBUG
  format: json
output:
  format: yaml
render:
  style: dark
  width: 120
data:
  custom_files:
    - ./router.json
    - ./extra.yaml
watch:
  debounce: 1s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "dark", cfg.Render.Style)
	assert.Equal(t, 120, cfg.Render.Width)
	assert.Equal(t, []string{"./router.json", "./extra.yaml"}, cfg.Data.CustomFiles)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
}

func TestLoadFrom_Environment(t *testing.T) {
	t.Setenv("TAGDATA_OUTPUT_FORMAT", "json")
	t.Setenv("TAGDATA_RENDER_WIDTH", "60")
	t.Setenv("TAGDATA_DATA_CUSTOM_FILES", "a.json, b.yml")

	cfg, err := LoadFrom(newViper())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 60, cfg.Render.Width)
	assert.Equal(t, []string{"a.json", "b.yml"}, cfg.Data.CustomFiles)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
		want  string
	}{
		{"log level", "log.level", "verbose", "log config"},
		{"log format", "log.format", "xml", "log config"},
		{"output format", "output.format", "csv", "output config"},
		{"render width", "render.width", -1, "render config"},
		{"custom file extension", "data.custom_files", []string{"tags.toml"}, "data config"},
		{"empty custom file", "data.custom_files", []string{""}, "data config"},
		{"negative debounce", "watch.debounce", "-1s", "watch config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			cfg, err := LoadFrom(v)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, errors.ErrCodeConfigInvalid, errors.Code(err))
		})
	}
}

func TestConfig_LoggerConfig(t *testing.T) {
	v := newViper()
	v.Set("log.level", "warn")
	v.Set("log.format", "json")

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	lc := cfg.LoggerConfig()
	assert.Equal(t, logging.LevelWarn, lc.Level)
	assert.Equal(t, "json", lc.Format)
	assert.Equal(t, os.Stderr, lc.Output)
}
