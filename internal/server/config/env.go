package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment variables understood by parseEnv.
const (
	EnvHTTPAddress   = "HN_HTTP_ADDRESS"
	EnvGRPCAddress   = "HN_GRPC_ADDRESS"
	EnvDatabaseDSN   = "DATABASE_DSN"
	EnvSecretKey     = "APP_SECRET"
	EnvTokenValidity = "HN_TOKEN_VALIDITY"
	EnvLogFormat     = "HN_LOG_FORMAT"
	EnvHideUserEnum  = "HN_HIDE_USER_ENUMERATION"
)

func parseEnv(config *Config, lookupEnv func(string) (string, bool)) error {
	if lookupEnv == nil {
		return nil
	}

	strs := map[string]*string{
		EnvHTTPAddress: &config.EndpointAddrHTTP,
		EnvGRPCAddress: &config.EndpointAddrGRPC,
		EnvDatabaseDSN: &config.DatabaseDSN,
		EnvSecretKey:   &config.SecretKey,
		EnvLogFormat:   &config.LogFormat,
	}
	for key, dst := range strs {
		if v, ok := lookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookupEnv(EnvTokenValidity); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTokenValidity, err)
		}
		config.TokenValidityDuration = d
	}

	if v, ok := lookupEnv(EnvHideUserEnum); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHideUserEnum, err)
		}
		config.HideUserEnumeration = b
	}

	return nil
}
