// Package common contains shared constants and sentinel errors used across
// aislekit components.
package common

// AuthorizationHeaderName carries the bearer access token on API requests.
const AuthorizationHeaderName = "Authorization"

// APIBasePath is the version prefix every API route lives under.
const APIBasePath = "/api/v1"
