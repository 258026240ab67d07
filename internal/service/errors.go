package service

import "errors"

// Error taxonomy surfaced by the engines and lifecycle operations. Every
// failure is detected synchronously, returned to the caller, and never
// retried internally.
var (
	// Not found
	ErrMofNotFound  = errors.New("MOF not found")
	ErrItemNotFound = errors.New("item not found")
	ErrUserNotFound = errors.New("user not found")

	// Conflict (uniqueness)
	ErrDuplicateSerial   = errors.New("serial number already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")

	// Scan preconditions
	ErrPartNumberMismatch = errors.New("item part number does not match MOF part number")
	ErrItemAlreadyPicked  = errors.New("item has already been picked")

	// Verification preconditions
	ErrItemNotInMof        = errors.New("item does not belong to this MOF")
	ErrItemNotPicked       = errors.New("item has not been picked yet")
	ErrItemAlreadyVerified = errors.New("item has already been verified")

	// Lifecycle
	ErrInvalidStatus = errors.New("invalid MOF status")
	ErrInvalidRole   = errors.New("invalid user role")

	// Auth
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is inactive")
)
