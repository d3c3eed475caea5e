package config

const (
	EnvServerURL = "HN_SERVER_URL"
	EnvTokenFile = "HN_TOKEN_FILE"
)

func parseEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if lookupEnv == nil {
		return
	}
	if v, ok := lookupEnv(EnvServerURL); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := lookupEnv(EnvTokenFile); ok && v != "" {
		cfg.TokenFile = v
	}
}
