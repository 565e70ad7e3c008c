package protocol

import (
	"bytes"
	"math"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "alice", "a name with spaces", "exactly sixty four characters long, padded to the max00000000000"}
	for _, s := range cases {
		encoded := encodeString(s)
		if len(encoded) != 64 {
			t.Fatalf("encodeString(%q) produced %d bytes, want 64", s, len(encoded))
		}
		decoded := decodeString(encoded)
		if decoded != s {
			t.Fatalf("round trip %q -> %q", s, decoded)
		}
	}
}

func TestStringPreservesEmbeddedSpaces(t *testing.T) {
	encoded := encodeString("a  b")
	decoded := decodeString(encoded)
	if decoded != "a  b" {
		t.Fatalf("got %q, want %q", decoded, "a  b")
	}
}

func TestCoarseVectorTruncation(t *testing.T) {
	p := Position{X: 12.9, Y: -3.2, Z: 255.999}
	c := p.toCoarse()
	if c.X != 12 || c.Y != -3 || c.Z != 255 {
		t.Fatalf("got %+v", c)
	}
}

func TestFineVectorScaling(t *testing.T) {
	p := Position{X: 10.5, Y: 1.0, Z: -4.25, Yaw: 180, Pitch: 90}
	f := p.toFine()
	back := positionFromFine(f)
	if math.Abs(back.X-p.X) > 1.0/32 {
		t.Fatalf("x round trip: got %v want ~%v", back.X, p.X)
	}
	if math.Abs(back.Yaw-p.Yaw) > 360.0/255 {
		t.Fatalf("yaw round trip: got %v want ~%v", back.Yaw, p.Yaw)
	}
}

func TestPacketRoundTrip(t *testing.T) {
	for _, desc := range []*Descriptor{
		DescPlayerIdentification,
		DescServerIdentification,
		DescPing,
		DescLevelInitialize,
		DescLevelDataChunk,
		DescLevelFinalize,
		DescClientSetBlock,
		DescServerSetBlock,
		DescSpawnPlayer,
		DescPositionUpdate,
		DescDespawnPlayer,
		DescChatMessage,
		DescDisconnect,
		DescUpdateUserType,
	} {
		p := desc.New()
		for _, f := range desc.Fields {
			p.Values[f.Name] = zeroValueFor(f.Kind)
		}
		buf, err := p.Pack()
		if err != nil {
			t.Fatalf("%s: pack: %v", desc.Name, err)
		}
		if len(buf) != 1+desc.Size() {
			t.Fatalf("%s: packed length %d, want %d", desc.Name, len(buf), 1+desc.Size())
		}
		if buf[0] != desc.ID {
			t.Fatalf("%s: packet id byte %d, want %d", desc.Name, buf[0], desc.ID)
		}
		round, err := desc.Unpack(buf[1:])
		if err != nil {
			t.Fatalf("%s: unpack: %v", desc.Name, err)
		}
		for _, f := range desc.Fields {
			if !valuesEqual(round.Values[f.Name], p.Values[f.Name]) {
				t.Fatalf("%s.%s: round trip %v != %v", desc.Name, f.Name, round.Values[f.Name], p.Values[f.Name])
			}
		}
	}
}

func TestUnpackShortBufferFails(t *testing.T) {
	_, err := DescChatMessage.Unpack(make([]byte, 2))
	if err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestReadClientPacketRejectsUnknownID(t *testing.T) {
	r := bytes.NewReader([]byte{0x02})
	_, err := ReadClientPacket(r)
	if err == nil {
		t.Fatal("expected error for non-client packet id")
	}
}

func zeroValueFor(kind FieldKind) any {
	switch kind {
	case KindUnsignedByte:
		return uint8(7)
	case KindSignedByte:
		return int8(-5)
	case KindShort:
		return int16(-100)
	case KindString:
		return "test"
	case KindByteArray:
		return make([]byte, 1024)
	case KindCoarseVector:
		return Position{X: 1, Y: 2, Z: 3}
	case KindFineVector:
		return Position{X: 1.5, Y: 2.5, Z: 3.5, Yaw: 90, Pitch: 45}
	default:
		panic("unhandled kind")
	}
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case Position:
		bv := b.(Position)
		// Coarse loses rotation and sub-block precision; fine loses none
		// beyond 1/32 block and 360/255 degrees, already covered above.
		return math.Abs(av.X-bv.X) < 1 && math.Abs(av.Y-bv.Y) < 1 && math.Abs(av.Z-bv.Z) < 1
	case []byte:
		return bytes.Equal(av, b.([]byte))
	default:
		return a == b
	}
}
