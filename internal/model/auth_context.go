package model

// AuthContext carries the identity established by the bearer token
// for the lifetime of a request.
type AuthContext struct {
	UserID string
}
