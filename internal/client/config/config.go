package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the hackernews CLI.
//
// Fields:
//   - ServerURL: full URL of the GraphQL endpoint.
//   - RequestTimeout: upper bound for a single API call.
//   - TokenFile: where the session token is kept between runs. Empty means
//     the default location under the user config directory.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	TokenFile      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/graphql"
	c.RequestTimeout = 10 * time.Second
	c.TokenFile = ""
}

// Load applies defaults, then JSON, environment and flags from args.
func Load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, lookupEnv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads the configuration of the running process.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.LookupEnv)
}
