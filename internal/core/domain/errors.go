package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidInput       = errors.New("invalid input")

	ErrCustomerNotFound  = errors.New("customer not found")
	ErrPolicyNotFound    = errors.New("policy not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrClaimNotFound     = errors.New("claim not found")

	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSnapshotCorrupt  = errors.New("snapshot is malformed")
)
