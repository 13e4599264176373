package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses. Authorization
// denials surface as ErrForbidden; the policy core itself never errors.
var (
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email not verified")
	ErrInvalidOtp         = errors.New("invalid verification code")
	ErrOtpExpired         = errors.New("verification code expired")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidType        = errors.New("invalid type")
	ErrInvalidRole        = errors.New("invalid role")
)
