package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authgate/internal/flagx"
	"github.com/dmitrijs2005/authgate/internal/timex"
)

// JsonConfig is the DTO for reading a JSON config file. Durations accept
// either strings like "24h" or integer nanoseconds (timex.Duration).
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson overlays values from the JSON file named by -c/-config, if any.
// An unreadable or invalid file is a startup failure, so it panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
}
