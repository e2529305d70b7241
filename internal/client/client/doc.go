// Package client talks to the sampleapp users service.
//
// GRPCClient implements Client over gRPC. It keeps the remember token
// returned by Signup, Login and ChangePassword and attaches it to every
// call as "remember_token" metadata. gRPC status codes are mapped to the
// sentinel errors in errors.go, so callers can use errors.Is.
package client
