package session

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock owns the countdown for the active session. At most one ticking
// goroutine exists at a time: Start cancels the previous run before it
// launches a new one.
type Clock struct {
	mu       sync.Mutex
	interval time.Duration
	nowFn    func() time.Time
	onExpire func()

	stop chan struct{}
	done chan struct{}

	active   atomic.Bool
	expiring atomic.Bool
	timeLeft atomic.Int64
}

// NewClock creates a stopped Clock. onExpire runs exactly once when the
// countdown reaches zero; it may be nil.
func NewClock(onExpire func()) *Clock {
	return &Clock{
		interval: time.Second,
		nowFn:    time.Now,
		onExpire: onExpire,
	}
}

// Start begins counting down from the time left for loginTime (unix ms),
// cancelling any previous countdown first.
func (c *Clock) Start(loginTime int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	c.active.Store(true)
	c.update(loginTime)

	go c.run(loginTime, c.stop, c.done)
}

// Stop cancels the countdown and waits for the ticking goroutine to exit.
// It is idempotent.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Clock) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		<-c.done
		c.stop = nil
		c.done = nil
	}
	c.active.Store(false)
	c.expiring.Store(false)
	c.timeLeft.Store(0)
}

// TimeLeft returns the most recently computed remaining time in milliseconds.
func (c *Clock) TimeLeft() int64 {
	return c.timeLeft.Load()
}

// Expiring reports whether the session is inside the final warning window.
func (c *Clock) Expiring() bool {
	return c.expiring.Load()
}

// Active reports whether a countdown is running.
func (c *Clock) Active() bool {
	return c.active.Load()
}

func (c *Clock) run(loginTime int64, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if c.update(loginTime) {
				continue
			}
			// expired: drop state and notify, then quit ticking
			c.active.Store(false)
			c.expiring.Store(false)
			if c.onExpire != nil {
				c.onExpire()
			}
			return
		}
	}
}

// update recomputes the countdown state and reports whether time remains.
func (c *Clock) update(loginTime int64) bool {
	left := TimeLeftAt(loginTime, c.nowFn().UnixMilli())
	c.timeLeft.Store(left)
	c.expiring.Store(left > 0 && left <= WarningTime.Milliseconds())
	return left > 0
}
