// Package common defines shared constants and sentinel errors used across
// eventdesk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Identity errors.
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrUnknownUser       = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrNotAuthenticated  = errors.New("not authenticated")

	// Event errors.
	ErrNotFound         = errors.New("not found")
	ErrScheduleConflict = errors.New("event overlaps with another event")

	// Storage errors. Reads never return it; writes wrap it.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
