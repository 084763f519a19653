package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admintable/internal/client"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyEndpoint, "", "")
	fs.Int(KeyPageSize, 0, "")
	fs.Int(KeyPagesToDisplay, 0, "")
	fs.Duration(KeyTimeout, 0, "")
	fs.Duration(KeyCacheTTL, 0, "")
	fs.String(KeyLogFile, "", "")
	fs.Bool(KeyDebug, false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, client.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 5, cfg.PagesToDisplay)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.Debug)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
endpoint: http://example.com/members.json
page-size: 25
pages-to-display: 7
timeout: 3s
log-file: /tmp/admintable.log
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/members.json", cfg.Endpoint)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 7, cfg.PagesToDisplay)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/admintable.log", cfg.LogFile)
}

func TestLoad_DefaultPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("page-size: 3\n"), 0600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.PageSize)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "page-size: 25\npages-to-display: 7\n")
	t.Setenv("ADMINTABLE_PAGE_SIZE", "40")
	t.Setenv("ADMINTABLE_PAGES_TO_DISPLAY", "9")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--page-size", "15"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.PageSize, "flag wins")
	assert.Equal(t, 9, cfg.PagesToDisplay, "env beats file")
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"zero page size":   "page-size: 0\n",
		"negative window":  "pages-to-display: -1\n",
		"relative url":     "endpoint: members.json\n",
		"unsupported url":  "endpoint: ftp://example.com/members.json\n",
		"negative timeout": "timeout: -1s\n",
		"negative ttl":     "cache-ttl: -5m\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, dir, content), nil)
			assert.Error(t, err)
		})
	}
}

func TestValidate_CacheTTL(t *testing.T) {
	cfg := Config{Endpoint: "https://example.com/members.json", PageSize: 10, PagesToDisplay: 5}
	assert.NoError(t, cfg.Validate(), "zero ttl falls back to the cache default")

	cfg.CacheTTL = -time.Minute
	assert.ErrorContains(t, cfg.Validate(), "cache-ttl must not be negative")
}
