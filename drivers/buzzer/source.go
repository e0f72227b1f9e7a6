package buzzer

import "io"

// Source is read-only melody storage addressed by byte offset.
// ok is false past the end.
type Source interface {
	At(i int) (b byte, ok bool)
}

type stringSource string

func (s stringSource) At(i int) (byte, bool) {
	if i < 0 || i >= len(s) {
		return 0, false
	}
	return s[i], true
}

// storageSource fetches one byte per call, e.g. from memory-mapped flash.
type storageSource struct {
	r   io.ReaderAt
	buf [1]byte
}

func (s *storageSource) At(i int) (byte, bool) {
	if i < 0 {
		return 0, false
	}
	if n, _ := s.r.ReadAt(s.buf[:], int64(i)); n != 1 {
		return 0, false
	}
	return s.buf[0], true
}
