// Package graphql exposes the hackernews services as a GraphQL API served
// over HTTP.
package graphql

import (
	_ "embed"

	gql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

// MaxQueryDepth bounds nested selections such as link.votes.link.votes.
const MaxQueryDepth = 8

// NewSchema parses the embedded schema against r.
func NewSchema(r *Resolver) (*gql.Schema, error) {
	return gql.ParseSchema(schemaSDL, r, gql.MaxDepth(MaxQueryDepth))
}
