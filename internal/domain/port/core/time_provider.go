package core

import (
	"time"
)

// TimeProvider abstracts time operations for the domain
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Today returns the current calendar date at midnight UTC
	Today() time.Time
	Since(t time.Time) time.Duration
}
