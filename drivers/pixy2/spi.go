package pixy2

import (
	"context"

	"buzzer-go/errcode"

	"tinygo.org/x/drivers"
)

// SPILink clocks bytes one at a time, the sensor's "SPI without slave
// select" mode.
type SPILink struct {
	bus drivers.SPI
}

var _ Link = (*SPILink)(nil)

func NewSPILink(bus drivers.SPI) *SPILink { return &SPILink{bus: bus} }

func (l *SPILink) Recv(ctx context.Context, buf []byte) (uint16, error) {
	var cs uint16
	for i := range buf {
		if err := ctx.Err(); err != nil {
			return cs, err
		}
		b, err := l.bus.Transfer(0x00)
		if err != nil {
			return cs, errcode.Wrap(errcode.MapDriverErr(err), "spi_recv", err)
		}
		buf[i] = b
		cs += uint16(b)
	}
	return cs, nil
}

func (l *SPILink) Send(_ context.Context, buf []byte) error {
	if err := l.bus.Tx(buf, nil); err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "spi_send", err)
	}
	return nil
}
