package cache

import "errors"

var (
	// ErrAlreadyCached means a live entry already holds the key. Storing is
	// insert-only; callers wait out the TTL instead of overwriting.
	ErrAlreadyCached = errors.New("response is already cached")

	// ErrInvalidPayload means the payload carries no weather data and must
	// not be stored.
	ErrInvalidPayload = errors.New("response does not contain valid weather data")
)
