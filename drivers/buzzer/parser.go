package buzzer

// Event is one resolved note, ready for PlayNote.
type Event struct {
	Note       Note // SilentNote for rests
	Rest       bool
	DurationMs uint32
	Volume     uint8 // already clamped to 0..MaxVolume
}

// session is a read cursor over one melody plus the staccato rest still
// owed from the previous note.
type session struct {
	src    Source
	pos    int
	restMs uint32
}

func newSession(src Source) *session { return &session{src: src} }

// peek returns the current character folded to lower case, skipping
// spaces. It returns 0 at the end of the source.
func (s *session) peek() byte {
	for {
		c, ok := s.src.At(s.pos)
		if !ok {
			return 0
		}
		if c == ' ' {
			s.pos++
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		return c
	}
}

// skip consumes the character last returned by peek.
func (s *session) skip() {
	if _, ok := s.src.At(s.pos); ok {
		s.pos++
	}
}

func (s *session) number() uint32 {
	var n uint32
	for c := s.peek(); c >= '0' && c <= '9'; c = s.peek() {
		n = n*10 + uint32(c-'0')
		s.skip()
	}
	return n
}

var letterPitch = [7]Note{
	pitchA, pitchB, pitchC, pitchD, pitchE, pitchF, pitchG,
}

// next parses up to and including the next note or rest, applying any
// setting commands on the way. ok is false once the melody ends or an
// unrecognised character is read; the session is then finished.
func (s *session) next(st *Settings) (ev Event, ok bool) {
	if st.Staccato && s.restMs > 0 {
		ev = Event{Note: SilentNote, Rest: true, DurationMs: s.restMs}
		s.restMs = 0
		return ev, true
	}

	octave := st.Octave // '<' and '>' only last until the next note
	var note Note
	rest := false

scan:
	for {
		c := s.peek()
		s.skip()
		switch {
		case c == '>':
			octave++
		case c == '<':
			octave--
		case c >= 'a' && c <= 'g':
			note = letterPitch[c-'a']
			break scan
		case c == 'r':
			rest = true
			break scan
		case c == 'l':
			st.setNoteType(s.number())
		case c == 'm':
			if s.peek() == 'l' {
				st.Staccato = false
			} else {
				st.Staccato = true
				s.restMs = 0
			}
			s.skip()
		case c == 'o':
			st.Octave = uint8(s.number())
			octave = st.Octave
		case c == 't':
			st.setTempo(s.number())
		case c == 'v':
			st.Volume = s.number()
		case c == '!':
			*st = DefaultSettings
			octave = st.Octave
		default:
			return Event{}, false
		}
	}

	note += Note(octave * 12)

	c := s.peek()
	for c == '+' || c == '#' {
		s.skip()
		note++
		c = s.peek()
	}
	for c == '-' {
		s.skip()
		note--
		c = s.peek()
	}

	dur := st.DurationMs
	// Only 1..8 may open an explicit length; following digits may be anything.
	if c > '0' && c < '9' {
		// A length that wraps to 0 keeps the default, like l0.
		if n := s.number(); n != 0 {
			dur = st.WholeNoteMs / n
		}
	}

	dot := dur / 2
	for s.peek() == '.' {
		s.skip()
		dur += dot
		dot /= 2
	}

	if st.Staccato {
		s.restMs = dur / 2
		dur -= s.restMs
	}

	if rest {
		return Event{Note: SilentNote, Rest: true, DurationMs: dur, Volume: st.volume()}, true
	}
	return Event{Note: note, DurationMs: dur, Volume: st.volume()}, true
}
