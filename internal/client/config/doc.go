// Package config loads settings for the hackernews command-line client.
//
// Sources, in increasing precedence: defaults, a JSON file named by -c or
// -config, environment variables, and command-line flags.
package config
