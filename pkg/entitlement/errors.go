package entitlement

import "errors"

var (
	// ErrProfileNotFound indicates no profile row exists for the user.
	ErrProfileNotFound = errors.New("entitlement.profile_not_found")

	// ErrStoreFailure wraps profile store read/delete failures.
	ErrStoreFailure = errors.New("entitlement.store_failure")
)
