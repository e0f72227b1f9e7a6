package buzzer

import (
	"io"
	"sync/atomic"

	"buzzer-go/x/mathx"
)

// silentFrequency keeps the tone driver at a sane setting during rests.
const silentFrequency uint16 = 1000

// Sequencer owns one tone output and one timer for the lifetime of any
// melody it plays. All methods except the timer callback must be called
// from the same goroutine (the main loop).
type Sequencer struct {
	tone  ToneDriver
	timer DurationTimer

	settings Settings
	sess     *session
	mode     PlayMode

	// Written by the timer callback.
	elapsed  atomic.Bool
	finished atomic.Bool

	onExpire func()
}

func New(tone ToneDriver, timer DurationTimer) *Sequencer {
	s := &Sequencer{
		tone:     tone,
		timer:    timer,
		settings: DefaultSettings,
	}
	s.finished.Store(true)
	s.onExpire = s.expire
	return s
}

// expire runs in timer context: silence and signal only.
func (s *Sequencer) expire() {
	s.tone.Stop()
	s.finished.Store(true)
	s.elapsed.Store(true)
}

// Play starts melody from its first note. Settings left by earlier
// melodies stay in effect.
func (s *Sequencer) Play(melody string) { s.play(stringSource(melody)) }

// PlayFromStorage is Play for melodies kept in byte-addressable storage
// such as flash. r is read one byte at a time and must outlive playback.
func (s *Sequencer) PlayFromStorage(r io.ReaderAt) { s.play(&storageSource{r: r}) }

func (s *Sequencer) play(src Source) {
	s.sess = newSession(src)
	s.nextNote()
}

func (s *Sequencer) nextNote() {
	ev, ok := s.sess.next(&s.settings)
	if !ok {
		s.sess = nil
		return
	}
	s.PlayNote(ev.Note, ev.DurationMs, ev.Volume)
}

// Advance must be polled from the main loop. It moves to the next note
// once the current one has elapsed and reports whether a melody is still
// in progress.
func (s *Sequencer) Advance() bool {
	if s.elapsed.Swap(false) {
		if s.sess != nil && s.mode == PlayAutomatic {
			s.nextNote()
		}
	} else if s.finished.Load() && s.sess != nil && s.mode == PlayAutomatic {
		// Note ran out while in manual mode.
		s.nextNote()
	}
	return s.sess != nil
}

// Step plays the next note of the melody if the current one has finished.
// It is the manual-mode counterpart of Advance.
func (s *Sequencer) Step() bool {
	if s.sess != nil && s.finished.Load() {
		s.elapsed.Store(false)
		s.nextNote()
	}
	return s.sess != nil
}

func (s *Sequencer) SetPlayMode(m PlayMode) {
	s.mode = m
	if m == PlayAutomatic {
		s.Advance()
	}
}

func (s *Sequencer) PlayMode() PlayMode { return s.mode }

// Stop silences the output and abandons the melody.
func (s *Sequencer) Stop() {
	s.tone.Stop()
	s.timer.Cancel()
	s.finished.Store(true)
	s.elapsed.Store(false)
	s.sess = nil
}

// IsPlaying reports whether a note is sounding or a melody is in progress.
func (s *Sequencer) IsPlaying() bool { return !s.finished.Load() || s.sess != nil }

// Settings returns a copy of the current playback settings.
func (s *Sequencer) Settings() Settings { return s.settings }

// PlayNote sounds note for durationMs. SilentNote or volume 0 is a rest.
func (s *Sequencer) PlayNote(note Note, durationMs uint32, volume uint8) {
	if note == SilentNote || volume == 0 {
		s.PlayFrequency(silentFrequency, durationMs, 0)
		return
	}
	s.PlayFrequency(note.Frequency(), durationMs, mathx.Min(volume, MaxVolume))
}

// PlayFrequency sounds freq (Hz, or tenths of Hz with DivBy10) for
// durationMs. Volume 0 is silent but still timed.
func (s *Sequencer) PlayFrequency(freq uint16, durationMs uint32, volume uint8) {
	hz := NormalizeFrequency(freq)
	vol := mathx.Min(volume, MaxVolume)

	s.timer.Cancel()
	s.finished.Store(false)
	s.elapsed.Store(false)

	if vol == 0 {
		s.tone.Stop()
	} else {
		s.tone.SetTone(hz, vol)
	}
	s.timer.Arm(durationMs, s.onExpire)
}
