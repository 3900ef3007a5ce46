package sessions

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mocksessions -source=time_provider.go

// TimeProvider abstracts the clock so save timestamps are testable
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

// NewRealTimeProvider returns a TimeProvider backed by the system clock
func NewRealTimeProvider() TimeProvider {
	return &realTimeProvider{}
}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
