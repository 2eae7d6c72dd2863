package config

import (
	"encoding/json"
	"os"

	"github.com/inventorypro/cli/internal/flagx"
	"github.com/inventorypro/cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds.
type JsonConfig struct {
	BaseURL      string         `json:"base_url"`
	PollInterval timex.Duration `json:"poll_interval"`
	StateDBPath  string         `json:"state_db_path"`
	LogFile      string         `json:"log_file"`
}

// parseJson overlays Config with values loaded from a JSON file, resolved
// from the -c/-config flags. When no file is given the function returns
// without touching cfg; fields absent from the file keep their defaults.
// Read or unmarshal errors panic (misconfiguration is fatal at startup).
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.PollInterval.Duration > 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}
