package buzzer

import "time"

// Measure dry-runs melody from DefaultSettings and returns its total
// playing time, staccato rests included, and the number of note events.
func Measure(melody string) (time.Duration, int) {
	st := DefaultSettings
	return measure(newSession(stringSource(melody)), &st)
}

// Measure dry-runs melody from the sequencer's current settings without
// changing them.
func (s *Sequencer) Measure(melody string) (time.Duration, int) {
	st := s.settings
	return measure(newSession(stringSource(melody)), &st)
}

func measure(sess *session, st *Settings) (time.Duration, int) {
	var total time.Duration
	n := 0
	for {
		ev, ok := sess.next(st)
		if !ok {
			return total, n
		}
		total += time.Duration(ev.DurationMs) * time.Millisecond
		n++
	}
}
