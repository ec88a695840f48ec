package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_path": "/tmp/test.db",
		"fetch_delay": "250ms"
	}`), 0o600))

	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"vitrine", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchDelay)
}

func TestParseJson_NoFlagIsNoOp(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"vitrine"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "vitrine.db", cfg.DatabasePath)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"vitrine", "-c", "/nonexistent/config.json"}

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}
