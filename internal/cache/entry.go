package cache

import "time"

// Entry pairs a value with the absolute moment it stops being valid. The
// expiry is fixed at creation and never extended; refreshing a value means
// replacing the whole entry.
type Entry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewEntry[T any](value T, ttl time.Duration) Entry[T] {
	return Entry[T]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// HasExpired reports whether the entry has reached its expiry. An entry
// created with a zero TTL is expired from birth.
func (e Entry[T]) HasExpired() bool {
	return !time.Now().Before(e.expiresAt)
}

func (e Entry[T]) Value() T {
	return e.value
}
