package pixy2

import (
	"context"
	"encoding/binary"

	"buzzer-go/errcode"
)

const (
	syncNoChecksum uint16 = 0xc1ae
	syncChecksum   uint16 = 0xc1af

	typeResult          = 0x01
	typeError           = 0x03
	typeRequestVersion  = 0x0e
	typeResponseVersion = 0x0f
	typeRequestBlocks   = 0x20
	typeResponseBlocks  = 0x21

	// Bytes to scan for a sync word before giving up.
	maxSyncScan = 20

	blockSize   = 14
	versionSize = 16
)

// Result codes carried in result/error packets.
const (
	resultError         int8 = -1
	resultBusy          int8 = -2
	resultChecksumError int8 = -3
	resultTimeout       int8 = -4
	resultOverride      int8 = -5
	resultProgChanging  int8 = -6
)

// SigAll selects every colour signature in GetBlocks.
const SigAll uint8 = 0xff

type Version struct {
	Hardware      uint16
	FirmwareMajor uint8
	FirmwareMinor uint8
	FirmwareBuild uint16
	FirmwareType  string
}

// Block is one colour-connected-components detection.
type Block struct {
	Signature uint16
	X, Y      uint16
	Width     uint16
	Height    uint16
	Angle     int16
	Index     uint8
	Age       uint8
}

// Client runs one request/response exchange at a time over a Link.
// It is not safe for concurrent use.
type Client struct {
	link Link
	buf  [4 + 255]byte
}

func NewClient(l Link) *Client { return &Client{link: l} }

func (c *Client) GetVersion(ctx context.Context) (Version, error) {
	typ, payload, err := c.exchange(ctx, typeRequestVersion, nil)
	if err != nil {
		return Version{}, err
	}
	if typ != typeResponseVersion || len(payload) < versionSize {
		return Version{}, unexpected("get_version", typ, payload)
	}
	v := Version{
		Hardware:      binary.LittleEndian.Uint16(payload[0:]),
		FirmwareMajor: payload[2],
		FirmwareMinor: payload[3],
		FirmwareBuild: binary.LittleEndian.Uint16(payload[4:]),
	}
	name := payload[6:versionSize]
	for i, b := range name {
		if b == 0 {
			name = name[:i]
			break
		}
	}
	v.FirmwareType = string(name)
	return v, nil
}

// GetBlocks returns up to max detections matching the signature bitmap.
// A sensor with no new frame yet reports errcode.Busy.
func (c *Client) GetBlocks(ctx context.Context, sigmap, max uint8) ([]Block, error) {
	typ, payload, err := c.exchange(ctx, typeRequestBlocks, []byte{sigmap, max})
	if err != nil {
		return nil, err
	}
	if typ != typeResponseBlocks {
		return nil, unexpected("get_blocks", typ, payload)
	}
	blocks := make([]Block, 0, len(payload)/blockSize)
	for p := payload; len(p) >= blockSize; p = p[blockSize:] {
		blocks = append(blocks, Block{
			Signature: binary.LittleEndian.Uint16(p[0:]),
			X:         binary.LittleEndian.Uint16(p[2:]),
			Y:         binary.LittleEndian.Uint16(p[4:]),
			Width:     binary.LittleEndian.Uint16(p[6:]),
			Height:    binary.LittleEndian.Uint16(p[8:]),
			Angle:     int16(binary.LittleEndian.Uint16(p[10:])),
			Index:     p[12],
			Age:       p[13],
		})
	}
	return blocks, nil
}

// exchange sends one request and returns the response type and payload.
// The payload aliases the client's buffer until the next exchange.
func (c *Client) exchange(ctx context.Context, typ uint8, payload []byte) (uint8, []byte, error) {
	req := c.buf[:4+len(payload)]
	binary.LittleEndian.PutUint16(req, syncNoChecksum)
	req[2] = typ
	req[3] = uint8(len(payload))
	copy(req[4:], payload)
	if err := c.link.Send(ctx, req); err != nil {
		return 0, nil, err
	}
	return c.recvPacket(ctx)
}

func (c *Client) recvPacket(ctx context.Context) (uint8, []byte, error) {
	checked, err := c.sync(ctx)
	if err != nil {
		return 0, nil, err
	}

	hdr := c.buf[:2]
	if checked {
		hdr = c.buf[:4]
	}
	if _, err := c.link.Recv(ctx, hdr); err != nil {
		return 0, nil, err
	}
	typ, n := hdr[0], int(hdr[1])

	payload := c.buf[4 : 4+n]
	cs, err := c.link.Recv(ctx, payload)
	if err != nil {
		return 0, nil, err
	}
	if checked && cs != binary.LittleEndian.Uint16(hdr[2:]) {
		return 0, nil, &errcode.E{C: errcode.Checksum, Op: "recv_packet"}
	}
	return typ, payload, nil
}

// sync scans for a sync word and reports whether the packet carries a
// checksum.
func (c *Client) sync(ctx context.Context) (bool, error) {
	var prev byte
	b := c.buf[:1]
	for i := 0; i < maxSyncScan; i++ {
		if _, err := c.link.Recv(ctx, b); err != nil {
			return false, err
		}
		switch uint16(prev) | uint16(b[0])<<8 {
		case syncChecksum:
			return true, nil
		case syncNoChecksum:
			return false, nil
		}
		prev = b[0]
	}
	return false, &errcode.E{C: errcode.BadSync, Op: "recv_packet"}
}

// unexpected maps result/error packets to codes; anything else is a
// protocol error.
func unexpected(op string, typ uint8, payload []byte) error {
	if (typ == typeResult || typ == typeError) && len(payload) > 0 {
		return &errcode.E{C: resultCode(int8(payload[0])), Op: op}
	}
	return &errcode.E{C: errcode.Error, Op: op, Msg: "unexpected response"}
}

func resultCode(r int8) errcode.Code {
	switch r {
	case resultBusy:
		return errcode.Busy
	case resultChecksumError:
		return errcode.Checksum
	case resultTimeout:
		return errcode.Timeout
	case resultOverride:
		return errcode.Overridden
	case resultProgChanging:
		return errcode.ProgChanging
	default:
		return errcode.Error
	}
}
