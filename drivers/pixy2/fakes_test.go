package pixy2

import (
	"context"
	"encoding/binary"
	"sync"
)

// fakePort serves scripted RX bytes and records TX.
type fakePort struct {
	mu   sync.Mutex
	rx   []byte
	tx   []byte
	baud uint32
	// chunk limits bytes returned per RecvSomeContext; 0 = no limit.
	chunk int
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	p.tx = append(p.tx, b...)
	p.mu.Unlock()
	return len(b), nil
}

func (p *fakePort) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	p.mu.Lock()
	if len(p.rx) > 0 {
		n := len(buf)
		if p.chunk > 0 && n > p.chunk {
			n = p.chunk
		}
		n = copy(buf[:n], p.rx)
		p.rx = p.rx[n:]
		p.mu.Unlock()
		return n, nil
	}
	p.mu.Unlock()
	<-ctx.Done()
	return 0, ctx.Err()
}

func (p *fakePort) SetBaudRate(br uint32) error { p.baud = br; return nil }

func (p *fakePort) feed(b ...byte) {
	p.mu.Lock()
	p.rx = append(p.rx, b...)
	p.mu.Unlock()
}

// fakeSPI returns scripted bytes from Transfer and records Tx writes.
type fakeSPI struct {
	rx  []byte
	tx  []byte
	err error
}

func (s *fakeSPI) Tx(w, r []byte) error {
	if s.err != nil {
		return s.err
	}
	s.tx = append(s.tx, w...)
	return nil
}

func (s *fakeSPI) Transfer(b byte) (byte, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.tx = append(s.tx, b)
	if len(s.rx) == 0 {
		return 0, nil
	}
	out := s.rx[0]
	s.rx = s.rx[1:]
	return out, nil
}

// frame builds a sensor response packet.
func frame(typ uint8, payload []byte, checksum bool) []byte {
	var out []byte
	if checksum {
		out = append(out, 0xaf, 0xc1, typ, uint8(len(payload)))
		out = binary.LittleEndian.AppendUint16(out, sum16(payload))
	} else {
		out = append(out, 0xae, 0xc1, typ, uint8(len(payload)))
	}
	return append(out, payload...)
}
