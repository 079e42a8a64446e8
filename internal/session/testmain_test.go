package session

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// verify no countdown goroutine outlives its Clock
	goleak.VerifyTestMain(m)
}
