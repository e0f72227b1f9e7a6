//go:build rp2040

package pixy2

import (
	"context"
	"machine"

	"buzzer-go/errcode"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// rp2Port adapts uartx to Port and Configurator.
type rp2Port struct{ u *uartx.UART }

func (p *rp2Port) Write(b []byte) (int, error) { return p.u.Write(b) }
func (p *rp2Port) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	return p.u.RecvSomeContext(ctx, buf)
}
func (p *rp2Port) SetBaudRate(br uint32) error { p.u.SetBaudRate(br); return nil }

// OpenRP2UART configures uart0 or uart1 as 8N1 on the given pins and
// returns an open link.
func OpenRP2UART(id string, tx, rx int, baud uint32) (*UARTLink, error) {
	var hw *uartx.UART
	switch id {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "uart_open", Msg: "unknown uart " + id}
	}
	if baud == 0 {
		baud = DefaultBaud
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.Pin(tx),
		RX:       machine.Pin(rx),
	}); err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "uart_open", err)
	}
	if err := hw.SetFormat(8, 1, uartx.ParityNone); err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "uart_open", err)
	}
	l := NewUARTLink(&rp2Port{u: hw})
	return l, l.Open(baud)
}
