package buzzer

// Settings is the playback state that carries across notes and across
// Play calls. Volume is stored as parsed; it is clamped when a note is
// dispatched.
type Settings struct {
	Octave      uint8 // 8-bit; '<' below 0 wraps to 255
	WholeNoteMs uint32
	NoteType    uint32
	DurationMs  uint32
	Volume      uint32
	Staccato    bool
}

// DefaultSettings are the values restored by '!'.
var DefaultSettings = Settings{
	Octave:      4,
	WholeNoteMs: 2000,
	NoteType:    4,
	DurationMs:  500,
	Volume:      15,
}

func (s *Settings) setNoteType(n uint32) {
	if n == 0 {
		return
	}
	s.NoteType = n
	s.DurationMs = s.WholeNoteMs / n
}

// setTempo takes beats per minute with a quarter note as the beat.
func (s *Settings) setTempo(bpm uint32) {
	if bpm == 0 {
		return
	}
	s.WholeNoteMs = 60 * 400 / bpm * 10
	s.DurationMs = s.WholeNoteMs / s.NoteType
}

func (s *Settings) volume() uint8 {
	if s.Volume > uint32(MaxVolume) {
		return MaxVolume
	}
	return uint8(s.Volume)
}
