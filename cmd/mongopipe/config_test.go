package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInConfigFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config/dev.yml", []byte(`
app_name: analytics
output_format: canonical
cache_size: 64
`), 0644))

	c, err := ReadInConfigFS("/config/dev", fs)
	require.NoError(t, err)
	assert.Equal(t, "analytics", c.AppName)
	assert.Equal(t, "canonical", c.OutputFormat)
	assert.Equal(t, 64, c.CacheSize)
	assert.Equal(t, "/config", c.ConfigPath)

	// defaults fill whatever the file leaves out
	assert.Equal(t, "auto", c.LogFormat)
	assert.False(t, c.Production)
}

func TestReadInConfigInherits(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config/prod.yml", []byte(`
inherits: dev
production: true
output_format: canonical
`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/config/dev.yml", []byte(`
app_name: analytics
output_format: relaxed
indent: true
`), 0644))

	c, err := ReadInConfigFS("/config/prod", fs)
	require.NoError(t, err)
	assert.Equal(t, "analytics", c.AppName, "inherited value")
	assert.True(t, c.Production, "own value")
	assert.Equal(t, "canonical", c.OutputFormat, "own value wins over inherited")
	assert.True(t, c.Indent, "inherited value")
}

func TestReadInConfigInheritChain(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config/prod.yml", []byte("inherits: stage\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/config/stage.yml", []byte("inherits: dev\n"), 0644))

	_, err := ReadInConfigFS("/config/prod", fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot itself inherit")
}

func TestReadInConfigEnvOverride(t *testing.T) {
	t.Setenv("MP_OUTPUT_FORMAT", "canonical")
	t.Setenv("MP_CACHE_SIZE", "64")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config/dev.yml", []byte("app_name: analytics\n"), 0644))

	c, err := ReadInConfigFS("/config/dev", fs)
	require.NoError(t, err)
	assert.Equal(t, "canonical", c.OutputFormat)
	assert.Equal(t, 64, c.CacheSize)
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig("app_name: analytics\ncache_size: 16\n", "")
	require.NoError(t, err)
	assert.Equal(t, "analytics", c.AppName)
	assert.Equal(t, 16, c.CacheSize)

	c, err = NewConfig("", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "mongopipe", c.AppName)
	assert.Equal(t, "relaxed", c.OutputFormat)
	assert.Equal(t, 512, c.CacheSize)
}

func TestGetConfigName(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"", "dev"},
		{"development", "dev"},
		{"dev", "dev"},
		{"production", "prod"},
		{"prod", "prod"},
		{"PRODUCTION", "prod"},
		{"staging", "stage"},
		{"testing", "test"},
		{"custom", "custom"},
	}
	for _, tt := range tests {
		t.Run("GO_ENV="+tt.env, func(t *testing.T) {
			t.Setenv("GO_ENV", tt.env)
			assert.Equal(t, tt.want, GetConfigName())
		})
	}
}

func TestShouldUseJSONLogs(t *testing.T) {
	tests := []struct {
		format     string
		production bool
		want       bool
	}{
		{"json", false, true},
		{"json", true, true},
		{"auto", true, true},
		{"auto", false, false},
		{"simple", true, false},
		{"", false, false},
	}
	for _, tt := range tests {
		c := &Config{LogFormat: tt.format, Production: tt.production}
		assert.Equal(t, tt.want, c.ShouldUseJSONLogs(),
			"format=%q production=%v", tt.format, tt.production)
	}
}
