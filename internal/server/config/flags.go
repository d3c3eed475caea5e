package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/hackernews/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   GraphQL HTTP bind address (e.g., ":8080")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-t int      token validity, minutes (0 disables expiry)
//	-b int      bcrypt cost
//	-m int      minimum password length
//	-r int      request timeout, seconds
//	-o string   comma-separated allowed CORS origins
//	-l string   log format: json, text or console
//	-u          hide user enumeration on login
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args,
		[]string{"-a", "-g", "-d", "-s", "-t", "-b", "-m", "-r", "-o", "-l"}, "-u")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "GraphQL HTTP address")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	requestTimeout := fs.Int("r", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.IntVar(&config.MinPasswordLength, "m", config.MinPasswordLength, "minimum password length")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed CORS origins")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format")
	fs.BoolVar(&config.HideUserEnumeration, "u", config.HideUserEnumeration, "hide user enumeration")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only flags given explicitly override values from earlier layers.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		case "r":
			config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "o":
			config.AllowedOrigins = splitList(*origins)
		}
	})
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
