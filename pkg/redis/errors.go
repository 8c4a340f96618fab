package redis

import "errors"

var (
	ErrFailedToParseConnString = errors.New("redis: failed to parse connection string")
	ErrNotReady                = errors.New("redis: server is not ready")
	ErrHealthcheckFailed       = errors.New("redis: healthcheck failed")
)
