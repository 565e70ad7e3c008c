package world

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
	"testing"

	"ccserver/internal/protocol"
)

func testWorld() *World {
	return &World{
		DimX: 4, DimY: 4, DimZ: 4,
		Data:  make([]byte, 64),
		Spawn: protocol.Position{X: 2, Y: 2, Z: 2},
	}
}

func TestSetBlockInBounds(t *testing.T) {
	w := testWorld()
	w.SetBlock(protocol.Position{X: 1, Y: 2, Z: 3}, 0x25)
	idx := 1 + 3*w.DimX + 2*(w.DimX*w.DimZ)
	if w.Data[idx] != 0x25 {
		t.Fatalf("block not written at expected index %d", idx)
	}
}

func TestSetBlockOutOfBoundsDropped(t *testing.T) {
	w := testWorld()
	before := append([]byte(nil), w.Data...)
	w.SetBlock(protocol.Position{X: 1000, Y: 1000, Z: 1000}, 0x25)
	if !bytes.Equal(before, w.Data) {
		t.Fatal("out-of-range write should be silently dropped")
	}
}

func TestStreamChunksRoundTrip(t *testing.T) {
	w := testWorld()
	for i := range w.Data {
		w.Data[i] = byte(i)
	}
	payload := Payload(w)
	compressed, err := Compress(payload, gzip.DefaultCompression)
	if err != nil {
		t.Fatal(err)
	}
	chunks := Chunks(compressed)
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}

	var reassembled []byte
	for _, c := range chunks {
		reassembled = append(reassembled, c.Data[:c.Length]...)
	}
	if !bytes.Equal(reassembled, compressed) {
		t.Fatal("reassembled chunks do not match compressed payload")
	}

	gz, err := gzip.NewReader(bytes.NewReader(reassembled))
	if err != nil {
		t.Fatal(err)
	}
	decompressed, err := io.ReadAll(gz)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decompressed, payload) {
		t.Fatal("decompressed payload mismatch")
	}
	gotVolume := binary.BigEndian.Uint32(decompressed[:4])
	if int(gotVolume) != w.Volume() {
		t.Fatalf("volume mismatch: got %d want %d", gotVolume, w.Volume())
	}
}

func TestFlatGeneratorProducesSpawnableWorld(t *testing.T) {
	g := NewFlatGenerator()
	w, err := g.Load("ignored")
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Data) != w.Volume() {
		t.Fatalf("data length %d != volume %d", len(w.Data), w.Volume())
	}
}
