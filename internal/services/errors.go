package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrImageNotFound      = errors.New("image not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrNotAuthorized      = errors.New("user not authorized")
)
