package protocol

import "errors"

// ErrInvalidPacket is returned (optionally wrapped) when a buffer is too
// short to satisfy a packet descriptor. A field value whose type doesn't
// match its descriptor makes Pack fail with a plain error that does not
// wrap ErrInvalidPacket.
var ErrInvalidPacket = errors.New("protocol: invalid packet")
