package buzzer

import (
	"sync"

	"buzzer-go/errcode"
	"buzzer-go/x/mathx"
	"buzzer-go/x/timex"
)

// PWM is one output channel of a PWM controller.
type PWM interface {
	// Configure sets the period for the whole controller in nanoseconds.
	Configure(periodNs uint64) error
	// Top is the counter wrap value valid after Configure.
	Top() uint32
	// Set writes the compare value (duty) of this channel.
	Set(value uint32)
}

// PWMTone drives a piezo from a PWM channel. Volume scales the duty
// linearly up to a 50% square wave at MaxVolume.
type PWMTone struct {
	mu      sync.Mutex
	pwm     PWM
	freq    uint16
	lastErr error
}

var _ ToneDriver = (*PWMTone)(nil)

func NewPWMTone(p PWM) *PWMTone { return &PWMTone{pwm: p} }

func (t *PWMTone) SetTone(freqHz uint16, volume uint8) {
	freqHz = mathx.Clamp(freqHz, MinFrequencyHz, MaxFrequencyHz)

	t.mu.Lock()
	defer t.mu.Unlock()

	if freqHz != t.freq {
		if err := t.pwm.Configure(timex.PeriodFromHz(uint32(freqHz))); err != nil {
			t.lastErr = errcode.Wrap(errcode.MapDriverErr(err), "pwm_configure", err)
			t.freq = 0
			t.pwm.Set(0)
			return
		}
		t.freq = freqHz
	}
	if volume == 0 {
		t.pwm.Set(0)
		return
	}
	vol := mathx.Min(volume, MaxVolume)
	t.pwm.Set(mathx.ScaleDiv(uint32(vol), t.pwm.Top()/2, uint32(MaxVolume)))
}

func (t *PWMTone) Stop() {
	t.mu.Lock()
	t.pwm.Set(0)
	t.mu.Unlock()
}

// Frequency is the frequency the controller is currently configured for,
// 0 before the first tone or after a configuration failure.
func (t *PWMTone) Frequency() uint16 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.freq
}

// Err returns the last controller configuration error, if any.
func (t *PWMTone) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}
