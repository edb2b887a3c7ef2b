package utils

import "time"

// Timestamps are stored as epoch seconds (see BaseModel) and rendered
// as RFC 3339 UTC on the wire.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// StartOfToday returns the epoch second of local midnight, used for the
// "generated today" admin stat.
func StartOfToday() int64 {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.Unix()
}

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

// FormatRFC3339 renders an epoch-seconds value, "" for zero.
func FormatRFC3339(t int64) string {
	ts := FromUnixSeconds(t)
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}
