package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/authgate/internal/flagx"
	"github.com/dmitrijs2005/authgate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	DatabasePath       string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config, if any. An unreadable or invalid file is a startup failure,
// so it panics.
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

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.DatabasePath = jc.DatabasePath
}
