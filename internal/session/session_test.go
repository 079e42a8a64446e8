package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAt(t *testing.T) {
	now := time.Now().UnixMilli()

	tests := []struct {
		name    string
		elapsed int64
		want    bool
	}{
		{"fresh login", 0, true},
		{"mid session", 2 * 60 * 1000, true},
		{"one ms before expiry", SessionDuration.Milliseconds() - 1, true},
		{"exactly at expiry", SessionDuration.Milliseconds(), false},
		{"long expired", 60 * 60 * 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAt(now-tt.elapsed, now))
		})
	}
}

func TestTimeLeftAt(t *testing.T) {
	now := time.Now().UnixMilli()

	// expired sessions report exactly zero
	assert.Equal(t, int64(0), TimeLeftAt(now-SessionDuration.Milliseconds(), now))
	assert.Equal(t, int64(0), TimeLeftAt(now-SessionDuration.Milliseconds()-5000, now))

	// live sessions report duration minus elapsed, exactly
	assert.Equal(t, SessionDuration.Milliseconds(), TimeLeftAt(now, now))
	assert.Equal(t, SessionDuration.Milliseconds()-1234, TimeLeftAt(now-1234, now))
}

func TestTimeLeftAt_MonotonicallyDecreasing(t *testing.T) {
	loginTime := time.Now().UnixMilli()

	prev := TimeLeftAt(loginTime, loginTime)
	for elapsed := int64(1000); elapsed <= SessionDuration.Milliseconds()+2000; elapsed += 1000 {
		left := TimeLeftAt(loginTime, loginTime+elapsed)
		if left > prev {
			t.Fatalf("time left increased: %d -> %d at elapsed %d", prev, left, elapsed)
		}
		prev = left
	}
	assert.Equal(t, int64(0), prev)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{65000, "1:05"},
		{0, "0:00"},
		{300000, "5:00"},
		{59999, "0:59"},
		{61000, "1:01"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.ms), "FormatTime(%d)", tt.ms)
	}
}
