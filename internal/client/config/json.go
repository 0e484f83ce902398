package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/goaltracker/internal/flagx"
	"github.com/dmitrijs2005/goaltracker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, set values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StoragePath    string         `json:"storage_path"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read and unmarshal
// errors panic.
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

	setIfNotEmpty(&cfg.APIBaseURL, jc.APIBaseURL)
	setIfNotEmpty(&cfg.StoragePath, jc.StoragePath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
