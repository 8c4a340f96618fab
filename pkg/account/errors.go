package account

import "errors"

var (
	// ErrUnauthenticated indicates no valid session at the start of the
	// operation.
	ErrUnauthenticated = errors.New("account.unauthenticated")

	// ErrIdentityDeletion indicates the authoritative identity record
	// deletion failed; the operation aborts and nothing else is attempted.
	ErrIdentityDeletion = errors.New("account.identity_deletion_failed")
)
