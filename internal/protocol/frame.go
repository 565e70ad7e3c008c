package protocol

import (
	"fmt"
	"io"
)

// ErrUnknownPacketID is returned by ReadClientPacket when the leading id
// byte doesn't name one of the four client-parseable packets (spec §4.1:
// "any other ID received from a client is a framing error").
var ErrUnknownPacketID = fmt.Errorf("protocol: unknown or non-client packet id")

// ReadClientPacket reads one framed packet from r: a single id byte
// followed by exactly Descriptor.Size() payload bytes. It returns
// ErrUnknownPacketID if id isn't in ClientBound, or a wrapped
// ErrInvalidPacket/io error on a short read.
func ReadClientPacket(r io.Reader) (*Packet, error) {
	var idBuf [1]byte
	if _, err := io.ReadFull(r, idBuf[:]); err != nil {
		return nil, err
	}
	desc, ok := ClientBound[idBuf[0]]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownPacketID, idBuf[0])
	}
	payload := make([]byte, desc.Size())
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: reading %s payload: %v", ErrInvalidPacket, desc.Name, err)
	}
	return desc.Unpack(payload)
}

// WritePacket packs p and writes it to w as a single framed write.
func WritePacket(w io.Writer, p *Packet) error {
	buf, err := p.Pack()
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
