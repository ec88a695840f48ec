package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/abertrand/vitrine/internal/flagx"
	"github.com/abertrand/vitrine/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the fetch delay either as a string like
// "300ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	FetchDelay   timex.Duration `json:"fetch_delay"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when absent, nothing is loaded. Read or
// unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	cfg.FetchDelay = time.Duration(jc.FetchDelay.Duration)
}
