package cli

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the CLI configuration. Environment variables are parsed from
// the VOAT_ prefix, e.g. VOAT_API_KEY.
type Config struct {
	// Host is the API base URL
	Host string `envconfig:"HOST" default:"https://api.voat.co"`

	// APIKey is the public API key (required)
	APIKey string `envconfig:"API_KEY"`

	// ClientSecret is the private API key, required for login
	ClientSecret string `envconfig:"CLIENT_SECRET"`

	// Username preselects the stored account to act as
	Username string `envconfig:"USERNAME"`

	// StateFile is the SQLite file holding tokens and stream cursors
	StateFile string `envconfig:"STATE_FILE" default:"voat.db"`

	// CleanTitles toggles automatic title sanitation on submit
	CleanTitles bool `envconfig:"CLEAN_TITLES" default:"true"`

	Env       string `envconfig:"ENV" default:"dev"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// LoadConfig parses the CLI configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("voat", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
