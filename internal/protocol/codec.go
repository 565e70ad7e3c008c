package protocol

import (
	"encoding/binary"
	"fmt"
)

// FieldKind identifies one of the seven wire field types the Classic
// Protocol uses, per spec §4.1.
type FieldKind uint8

const (
	KindUnsignedByte FieldKind = iota
	KindSignedByte
	KindShort
	KindString
	KindByteArray
	KindCoarseVector
	KindFineVector
)

// Size returns the fixed wire size, in bytes, of a field of this kind.
func (k FieldKind) Size() int {
	switch k {
	case KindUnsignedByte, KindSignedByte:
		return 1
	case KindShort:
		return 2
	case KindString:
		return 64
	case KindByteArray:
		return 1024
	case KindCoarseVector:
		return 6
	case KindFineVector:
		return 8
	default:
		panic(fmt.Sprintf("protocol: unknown field kind %d", k))
	}
}

func (k FieldKind) String() string {
	switch k {
	case KindUnsignedByte:
		return "UnsignedByte"
	case KindSignedByte:
		return "SignedByte"
	case KindShort:
		return "Short"
	case KindString:
		return "String"
	case KindByteArray:
		return "ByteArray"
	case KindCoarseVector:
		return "CoarseVector"
	case KindFineVector:
		return "FineVector"
	default:
		return "Unknown"
	}
}

// encodeField appends the wire encoding of value (whose concrete type must
// match kind, see Descriptor.Pack) to buf, returning the extended slice.
func encodeField(buf []byte, kind FieldKind, value any) ([]byte, error) {
	switch kind {
	case KindUnsignedByte:
		v, ok := value.(uint8)
		if !ok {
			return nil, fmt.Errorf("protocol: expected uint8 for %s, got %T", kind, value)
		}
		return append(buf, v), nil
	case KindSignedByte:
		v, ok := value.(int8)
		if !ok {
			return nil, fmt.Errorf("protocol: expected int8 for %s, got %T", kind, value)
		}
		return append(buf, byte(v)), nil
	case KindShort:
		v, ok := value.(int16)
		if !ok {
			return nil, fmt.Errorf("protocol: expected int16 for %s, got %T", kind, value)
		}
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(v))
		return append(buf, tmp[:]...), nil
	case KindString:
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("protocol: expected string for %s, got %T", kind, value)
		}
		return append(buf, encodeString(v)...), nil
	case KindByteArray:
		v, ok := value.([]byte)
		if !ok {
			return nil, fmt.Errorf("protocol: expected []byte for %s, got %T", kind, value)
		}
		return append(buf, encodeByteArray(v)...), nil
	case KindCoarseVector:
		v, ok := value.(Position)
		if !ok {
			return nil, fmt.Errorf("protocol: expected Position for %s, got %T", kind, value)
		}
		c := v.toCoarse()
		var tmp [6]byte
		binary.BigEndian.PutUint16(tmp[0:2], uint16(c.X))
		binary.BigEndian.PutUint16(tmp[2:4], uint16(c.Y))
		binary.BigEndian.PutUint16(tmp[4:6], uint16(c.Z))
		return append(buf, tmp[:]...), nil
	case KindFineVector:
		v, ok := value.(Position)
		if !ok {
			return nil, fmt.Errorf("protocol: expected Position for %s, got %T", kind, value)
		}
		f := v.toFine()
		var tmp [8]byte
		binary.BigEndian.PutUint16(tmp[0:2], uint16(f.X))
		binary.BigEndian.PutUint16(tmp[2:4], uint16(f.Y))
		binary.BigEndian.PutUint16(tmp[4:6], uint16(f.Z))
		tmp[6] = f.Yaw
		tmp[7] = f.Pitch
		return append(buf, tmp[:]...), nil
	default:
		return nil, fmt.Errorf("protocol: unknown field kind %d", kind)
	}
}

// decodeField reads one field of kind from the front of buf, which must be
// at least kind.Size() bytes long, and returns the decoded value plus the
// number of bytes consumed.
func decodeField(buf []byte, kind FieldKind) (any, int, error) {
	size := kind.Size()
	if len(buf) < size {
		return nil, 0, fmt.Errorf("%w: need %d bytes for %s, have %d", ErrInvalidPacket, size, kind, len(buf))
	}
	switch kind {
	case KindUnsignedByte:
		return uint8(buf[0]), 1, nil
	case KindSignedByte:
		return int8(buf[0]), 1, nil
	case KindShort:
		return int16(binary.BigEndian.Uint16(buf[:2])), 2, nil
	case KindString:
		return decodeString(buf[:64]), 64, nil
	case KindByteArray:
		out := make([]byte, 1024)
		copy(out, buf[:1024])
		return out, 1024, nil
	case KindCoarseVector:
		c := coarseVector{
			X: int16(binary.BigEndian.Uint16(buf[0:2])),
			Y: int16(binary.BigEndian.Uint16(buf[2:4])),
			Z: int16(binary.BigEndian.Uint16(buf[4:6])),
		}
		return positionFromCoarse(c), 6, nil
	case KindFineVector:
		f := fineVector{
			X:     int16(binary.BigEndian.Uint16(buf[0:2])),
			Y:     int16(binary.BigEndian.Uint16(buf[2:4])),
			Z:     int16(binary.BigEndian.Uint16(buf[4:6])),
			Yaw:   buf[6],
			Pitch: buf[7],
		}
		return positionFromFine(f), 8, nil
	default:
		return nil, 0, fmt.Errorf("protocol: unknown field kind %d", kind)
	}
}

// encodeString right-pads an ASCII string with spaces to exactly 64 bytes,
// truncating anything over 64 characters.
func encodeString(s string) []byte {
	out := make([]byte, 64)
	n := copy(out, s)
	for i := n; i < 64; i++ {
		out[i] = ' '
	}
	return out
}

// decodeString trims trailing spaces from a fixed 64-byte string field.
func decodeString(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == ' ' {
		end--
	}
	return string(b[:end])
}

// encodeByteArray null-pads data to exactly 1024 bytes, truncating
// anything over 1024.
func encodeByteArray(data []byte) []byte {
	out := make([]byte, 1024)
	copy(out, data)
	return out
}
