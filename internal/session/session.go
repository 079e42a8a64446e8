// Package session enforces the fixed-duration admin session: TTL math over
// the persisted login timestamp plus the one-second countdown Clock.
package session

import (
	"fmt"
	"time"
)

const (
	// SessionDuration is how long a session lives after login or extend.
	SessionDuration = 5 * time.Minute
	// WarningTime is the window before expiry in which the session counts
	// as expiring.
	WarningTime = 1 * time.Minute
)

// IsValidAt reports whether a session started at loginTime (unix ms) is
// still valid at now (unix ms).
func IsValidAt(loginTime, now int64) bool {
	return now-loginTime < SessionDuration.Milliseconds()
}

// IsValid reports whether a session started at loginTime (unix ms) is
// still valid.
func IsValid(loginTime int64) bool {
	return IsValidAt(loginTime, time.Now().UnixMilli())
}

// TimeLeftAt returns the remaining session time in milliseconds at now,
// clamped at zero.
func TimeLeftAt(loginTime, now int64) int64 {
	left := SessionDuration.Milliseconds() - (now - loginTime)
	if left < 0 {
		return 0
	}
	return left
}

// TimeLeft returns the remaining session time in milliseconds.
func TimeLeft(loginTime int64) int64 {
	return TimeLeftAt(loginTime, time.Now().UnixMilli())
}

// FormatTime renders a millisecond duration as m:ss for the countdown UI.
func FormatTime(ms int64) string {
	minutes := ms / 60_000
	seconds := (ms % 60_000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
