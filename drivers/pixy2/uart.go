package pixy2

import (
	"context"
	"time"

	"buzzer-go/errcode"
)

const (
	DefaultBaud        uint32 = 115200
	DefaultByteTimeout        = 2 * time.Millisecond
)

// Port is the byte stream a UARTLink runs over.
type Port interface {
	Write(p []byte) (int, error)
	// RecvSomeContext blocks until at least one byte is available or ctx
	// is done, then reads what it can.
	RecvSomeContext(ctx context.Context, buf []byte) (int, error)
}

// Configurator is implemented by ports that can change baud at runtime.
type Configurator interface {
	SetBaudRate(br uint32) error
}

// UARTLink receives exactly the requested number of bytes, giving up when
// the line stays idle for longer than ByteTimeout.
type UARTLink struct {
	port        Port
	baud        uint32
	open        bool
	ByteTimeout time.Duration
}

var _ Link = (*UARTLink)(nil)

func NewUARTLink(p Port) *UARTLink {
	return &UARTLink{port: p, ByteTimeout: DefaultByteTimeout}
}

// Open applies baud (0 selects DefaultBaud) when the port supports it.
func (l *UARTLink) Open(baud uint32) error {
	if baud == 0 {
		baud = DefaultBaud
	}
	if c, ok := l.port.(Configurator); ok {
		if err := c.SetBaudRate(baud); err != nil {
			return errcode.Wrap(errcode.MapDriverErr(err), "uart_open", err)
		}
	}
	l.baud, l.open = baud, true
	return nil
}

func (l *UARTLink) Close()       { l.open = false }
func (l *UARTLink) Baud() uint32 { return l.baud }

func (l *UARTLink) Recv(ctx context.Context, buf []byte) (uint16, error) {
	if !l.open {
		return 0, errcode.NotOpen
	}
	got := 0
	for got < len(buf) {
		rctx, cancel := context.WithTimeout(ctx, l.ByteTimeout)
		n, err := l.port.RecvSomeContext(rctx, buf[got:])
		cancel()
		if n > 0 {
			got += n
			continue
		}
		if ctx.Err() != nil {
			return sum16(buf[:got]), ctx.Err()
		}
		return sum16(buf[:got]), &errcode.E{C: errcode.Timeout, Op: "uart_recv", Err: err}
	}
	return sum16(buf), nil
}

func (l *UARTLink) Send(_ context.Context, buf []byte) error {
	if !l.open {
		return errcode.NotOpen
	}
	n, err := l.port.Write(buf)
	if err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "uart_send", err)
	}
	if n < len(buf) {
		return &errcode.E{C: errcode.ShortFrame, Op: "uart_send"}
	}
	return nil
}
