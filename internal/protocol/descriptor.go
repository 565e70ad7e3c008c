package protocol

import "fmt"

// Field names a single (type, name) pair within a packet descriptor, in
// wire order.
type Field struct {
	Kind FieldKind
	Name string
}

// Descriptor is the process-wide, immutable metadata for one packet kind:
// its wire ID and the ordered field list whose encoded sizes sum to the
// packet's payload size. Descriptors are declared once, in packets.go,
// and never mutated afterwards.
type Descriptor struct {
	ID     uint8
	Name   string
	Fields []Field
}

// Size returns the payload size in bytes (excluding the leading packet-id
// byte), i.e. the sum of each field's wire size.
func (d *Descriptor) Size() int {
	total := 0
	for _, f := range d.Fields {
		total += f.Kind.Size()
	}
	return total
}

// New returns an empty Packet for this descriptor with no field values
// set; callers populate Values before Pack.
func (d *Descriptor) New() *Packet {
	return &Packet{Descriptor: d, Values: make(map[string]any, len(d.Fields))}
}

// Unpack decodes a payload buffer (sized exactly d.Size()) into a Packet,
// field by field, in descriptor order. It fails with ErrInvalidPacket if
// the buffer is short.
func (d *Descriptor) Unpack(payload []byte) (*Packet, error) {
	if len(payload) < d.Size() {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidPacket, d.Name, d.Size(), len(payload))
	}
	p := d.New()
	cursor := payload
	for _, f := range d.Fields {
		value, n, err := decodeField(cursor, f.Kind)
		if err != nil {
			return nil, fmt.Errorf("protocol: decoding %s.%s: %w", d.Name, f.Name, err)
		}
		p.Values[f.Name] = value
		cursor = cursor[n:]
	}
	return p, nil
}

// Packet is an instance of a Descriptor with concrete field values. The
// wire framing for any Packet is [packet_id: u8][Pack(): Descriptor.Size() bytes].
type Packet struct {
	Descriptor *Descriptor
	Values     map[string]any
}

// Pack encodes the packet's id byte followed by its fields, in descriptor
// order, into a freshly allocated slice.
func (p *Packet) Pack() ([]byte, error) {
	buf := make([]byte, 0, 1+p.Descriptor.Size())
	buf = append(buf, p.Descriptor.ID)
	for _, f := range p.Descriptor.Fields {
		value, ok := p.Values[f.Name]
		if !ok {
			return nil, fmt.Errorf("protocol: %s missing field %s", p.Descriptor.Name, f.Name)
		}
		var err error
		buf, err = encodeField(buf, f.Kind, value)
		if err != nil {
			return nil, fmt.Errorf("protocol: encoding %s.%s: %w", p.Descriptor.Name, f.Name, err)
		}
	}
	return buf, nil
}

// UByte reads a field as uint8. It panics if the field is absent or of a
// different type — a programmer error, since field access always follows
// construction via a typed constructor or Unpack.
func (p *Packet) UByte(name string) uint8 { return p.Values[name].(uint8) }

// SByte reads a field as int8.
func (p *Packet) SByte(name string) int8 { return p.Values[name].(int8) }

// Str reads a field as string.
func (p *Packet) Str(name string) string { return p.Values[name].(string) }

// Bytes reads a field as []byte.
func (p *Packet) Bytes(name string) []byte { return p.Values[name].([]byte) }

// Pos reads a field as Position.
func (p *Packet) Pos(name string) Position { return p.Values[name].(Position) }
