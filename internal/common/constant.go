package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme preceding the token.
const BearerScheme = "Bearer"
