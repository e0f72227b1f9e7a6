package pixy2

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"buzzer-go/errcode"
)

func TestUARTLinkOpenDefaultsBaud(t *testing.T) {
	p := &fakePort{}
	l := NewUARTLink(p)
	if err := l.Open(0); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.baud != DefaultBaud || l.Baud() != DefaultBaud {
		t.Fatalf("baud=%d", p.baud)
	}
}

func TestUARTLinkRecvExact(t *testing.T) {
	p := &fakePort{chunk: 2}
	p.feed(1, 2, 3, 4, 5)
	l := NewUARTLink(p)
	_ = l.Open(9600)

	buf := make([]byte, 5)
	cs, err := l.Recv(context.Background(), buf)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if cs != 15 || !bytes.Equal(buf, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("cs=%d buf=%v", cs, buf)
	}
}

func TestUARTLinkRecvTimeout(t *testing.T) {
	p := &fakePort{}
	p.feed(7)
	l := NewUARTLink(p)
	l.ByteTimeout = time.Millisecond
	_ = l.Open(0)

	start := time.Now()
	_, err := l.Recv(context.Background(), make([]byte, 3))
	if errcode.Of(err) != errcode.Timeout {
		t.Fatalf("err=%v, want timeout", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatal("timeout took far too long")
	}
}

func TestUARTLinkNotOpen(t *testing.T) {
	l := NewUARTLink(&fakePort{})
	if _, err := l.Recv(context.Background(), make([]byte, 1)); err != errcode.NotOpen {
		t.Fatalf("Recv err=%v", err)
	}
	if err := l.Send(context.Background(), []byte{1}); err != errcode.NotOpen {
		t.Fatalf("Send err=%v", err)
	}
}

func TestUARTLinkSend(t *testing.T) {
	p := &fakePort{}
	l := NewUARTLink(p)
	_ = l.Open(0)
	if err := l.Send(context.Background(), []byte{0xae, 0xc1}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !bytes.Equal(p.tx, []byte{0xae, 0xc1}) {
		t.Fatalf("tx=%v", p.tx)
	}
}

func TestSPILink(t *testing.T) {
	bus := &fakeSPI{rx: []byte{10, 20, 30}}
	l := NewSPILink(bus)

	buf := make([]byte, 3)
	cs, err := l.Recv(context.Background(), buf)
	if err != nil || cs != 60 || !bytes.Equal(buf, []byte{10, 20, 30}) {
		t.Fatalf("Recv cs=%d buf=%v err=%v", cs, buf, err)
	}
	if !bytes.Equal(bus.tx, []byte{0, 0, 0}) {
		t.Fatalf("Recv should clock out zeros, tx=%v", bus.tx)
	}

	bus.tx = nil
	if err := l.Send(context.Background(), []byte{1, 2}); err != nil || !bytes.Equal(bus.tx, []byte{1, 2}) {
		t.Fatalf("Send tx=%v err=%v", bus.tx, err)
	}

	cause := errors.New("bus fault")
	bus.err = cause
	if _, err := l.Recv(context.Background(), buf); !errors.Is(err, cause) {
		t.Fatalf("Recv err=%v", err)
	}
}
