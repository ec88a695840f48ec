package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "vitrine.db", cfg.DatabasePath)
	assert.Equal(t, time.Duration(0), cfg.FetchDelay)
}

func TestLoadConfig_DefaultsWhenNoSources(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"vitrine"}

	cfg := LoadConfig()
	assert.Equal(t, "vitrine.db", cfg.DatabasePath)
	assert.Equal(t, time.Duration(0), cfg.FetchDelay)
}
