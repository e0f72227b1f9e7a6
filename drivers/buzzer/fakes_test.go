package buzzer

import (
	"sync"

	"github.com/davecgh/go-spew/spew"
)

// toneEvent is one call recorded by fakeTone. Stop calls have Stop=true.
type toneEvent struct {
	Stop   bool
	Hz     uint16
	Volume uint8
}

type fakeTone struct {
	mu     sync.Mutex
	events []toneEvent
}

func (f *fakeTone) SetTone(hz uint16, vol uint8) {
	f.mu.Lock()
	f.events = append(f.events, toneEvent{Hz: hz, Volume: vol})
	f.mu.Unlock()
}

func (f *fakeTone) Stop() {
	f.mu.Lock()
	f.events = append(f.events, toneEvent{Stop: true})
	f.mu.Unlock()
}

func (f *fakeTone) tones() []toneEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []toneEvent
	for _, e := range f.events {
		if !e.Stop {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeTone) last() toneEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return toneEvent{}
	}
	return f.events[len(f.events)-1]
}

func (f *fakeTone) dump() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return spew.Sdump(f.events)
}

// fakeTimer never fires on its own; tests call fire to simulate expiry.
type fakeTimer struct {
	armed   bool
	fn      func()
	arms    []uint32
	cancels int
}

func (f *fakeTimer) Arm(ms uint32, fn func()) {
	f.armed = true
	f.fn = fn
	f.arms = append(f.arms, ms)
}

func (f *fakeTimer) Cancel() {
	f.armed = false
	f.cancels++
}

func (f *fakeTimer) fire() bool {
	if !f.armed {
		return false
	}
	f.armed = false
	f.fn()
	return true
}

func (f *fakeTimer) lastArm() uint32 {
	if len(f.arms) == 0 {
		return 0
	}
	return f.arms[len(f.arms)-1]
}

func newTestSequencer() (*Sequencer, *fakeTone, *fakeTimer) {
	tone := &fakeTone{}
	tm := &fakeTimer{}
	return New(tone, tm), tone, tm
}
