package notification

import (
	"strings"
	"time"
)

// Frequency is how often a subscriber receives updates
type Frequency int

const (
	FrequencyUnknown Frequency = iota
	FrequencyHourly
	FrequencyDaily
)

// String returns the representation stored in the subscriptions table
func (f Frequency) String() string {
	switch f {
	case FrequencyHourly:
		return "hourly"
	case FrequencyDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// IsValid checks if the frequency value is valid
func (f Frequency) IsValid() bool {
	return f == FrequencyHourly || f == FrequencyDaily
}

// FrequencyFromString converts a stored value to Frequency
func FrequencyFromString(s string) Frequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hourly":
		return FrequencyHourly
	case "daily":
		return FrequencyDaily
	default:
		return FrequencyUnknown
	}
}

// DispatchResult summarizes one fan-out run
type DispatchResult struct {
	Frequency Frequency
	Total     int
	Sent      int
	Skipped   int
	Failed    int
	Duration  time.Duration
}

// NotificationStats represents statistics about notification operations
type NotificationStats struct {
	ConfirmedSubscriptions int64
	LastRun                DispatchResult
	LastRunAt              time.Time
}
