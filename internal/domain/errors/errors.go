package errors

import "errors"

var (
	// ErrRequestFailed covers transport failures: network unreachable,
	// request timeout, or a provider status that carries no usable data.
	ErrRequestFailed = errors.New("provider request failed")

	// ErrSchemaMismatch means the provider answered but the payload no
	// longer matches the structure this library expects. Unofficial
	// providers change shape without notice.
	ErrSchemaMismatch = errors.New("provider response schema mismatch")

	ErrRateLimited = errors.New("provider rate limited the request")
	ErrNotFound    = errors.New("entity not found")

	ErrUnsupported = errors.New("operation not supported")

	ErrUnknownSport = errors.New("unsupported sport")
)
