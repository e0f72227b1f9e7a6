package buzzer

import (
	"sync"
	"time"

	"buzzer-go/x/timex"
)

// OneShot is a DurationTimer on top of time.AfterFunc. The callback runs
// on the runtime's timer goroutine, which is this package's stand-in for
// an interrupt: keep it short and never call back into the OneShot.
type OneShot struct {
	mu  sync.Mutex
	t   *time.Timer
	gen uint32
}

func NewOneShot() *OneShot { return &OneShot{} }

func (o *OneShot) Arm(durationMs uint32, onExpire func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopLocked()
	gen := o.gen
	o.t = time.AfterFunc(timex.Ms(durationMs), func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		// Superseded by a later Arm or Cancel.
		if gen != o.gen {
			return
		}
		o.stopLocked()
		onExpire()
	})
}

func (o *OneShot) Cancel() {
	o.mu.Lock()
	o.stopLocked()
	o.mu.Unlock()
}

// Armed reports whether an expiry is pending.
func (o *OneShot) Armed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.t != nil
}

// caller holds lock
func (o *OneShot) stopLocked() {
	if o.t != nil {
		o.t.Stop()
		o.t = nil
	}
	o.gen++
}
