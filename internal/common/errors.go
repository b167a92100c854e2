// Package common defines shared constants and sentinel errors used across
// client and server layers of aislekit. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrFetchFailed  = errors.New("fetch failed")
	ErrCreateFailed = errors.New("create failed")
	ErrUpdateFailed = errors.New("update failed")
	ErrDeleteFailed = errors.New("delete failed")

	// Validation errors (caller-supplied data rejected).
	ErrValidation    = errors.New("validation error")
	ErrAlreadyExists = errors.New("already exists")

	// Auth / tenant-context errors. A request without a valid couple
	// context fails with ErrUnauthorized, never with an unscoped query.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoTenant     = errors.New("missing couple context")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")

	// ErrTransient marks transport-level failures that are safe to retry.
	ErrTransient = errors.New("transient transport error")
)
