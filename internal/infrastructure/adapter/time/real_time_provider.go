package time

import (
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a new real time provider.
// Today is computed in loc, or UTC when loc is nil.
func NewRealTimeProvider(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &RealTimeProvider{location: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Today returns the current calendar date in the provider's location, as midnight UTC
func (p *RealTimeProvider) Today() time.Time {
	y, m, d := time.Now().In(p.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}
