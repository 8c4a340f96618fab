package billing

import "errors"

var (
	// ErrUnauthenticated indicates no valid session at the start of the
	// operation. Reported as an authorization failure, never retried.
	ErrUnauthenticated = errors.New("billing.unauthenticated")

	// ErrCheckoutFailed is the generic error surfaced for any provider-side
	// checkout creation failure. Provider internals are logged, not leaked.
	ErrCheckoutFailed = errors.New("billing.checkout_creation_failed")

	// ErrMissingAPIKey indicates the payment provider API key is missing.
	ErrMissingAPIKey = errors.New("billing.missing_api_key")

	// ErrInvalidEnvironment indicates an unknown provider environment name.
	ErrInvalidEnvironment = errors.New("billing.invalid_provider_environment")

	// ErrNoCheckoutURL indicates the provider accepted the transaction but
	// returned no hosted checkout URL.
	ErrNoCheckoutURL = errors.New("billing.no_checkout_url")
)
