// Package pixy2 talks to a Pixy2 vision sensor over UART or SPI.
//
// The link types move raw bytes and keep the running checksum the sensor
// protocol needs; Client frames requests and decodes responses on top.
package pixy2

import "context"

// Link moves bytes to and from the sensor. Recv fills buf completely or
// fails; the returned checksum is the 16-bit sum of the bytes received.
type Link interface {
	Recv(ctx context.Context, buf []byte) (cs uint16, err error)
	Send(ctx context.Context, buf []byte) error
}

func sum16(p []byte) uint16 {
	var cs uint16
	for _, b := range p {
		cs += uint16(b)
	}
	return cs
}
