package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/hackernews/internal/flagx"
	"github.com/dmitrijs2005/hackernews/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// strings such as "15s" or integer nanoseconds. Absent keys leave the current
// value untouched.
type JsonConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	BcryptCost            *int            `json:"bcrypt_cost"`
	MinPasswordLength     *int            `json:"min_password_length"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	HealthCheckInterval   *timex.Duration `json:"health_check_interval"`
	AllowedOrigins        []string        `json:"allowed_origins"`
	LogFormat             *string         `json:"log_format"`
	HideUserEnumeration   *bool           `json:"hide_user_enumeration"`
}

// parseJson overlays values from the file given by -c/-config. Without that
// flag it does nothing.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogFormat, c.LogFormat)

	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.HealthCheckInterval != nil {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.MinPasswordLength != nil {
		config.MinPasswordLength = *c.MinPasswordLength
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.HideUserEnumeration != nil {
		config.HideUserEnumeration = *c.HideUserEnumeration
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
