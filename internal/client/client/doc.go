// Package client is a small GraphQL-over-HTTP client for the hackernews API.
// It keeps the session token and sends it as a bearer credential.
package client
