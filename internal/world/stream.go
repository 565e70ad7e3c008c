package world

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
)

// Chunk is one 1024-byte slice of a gzip-compressed level payload, with
// the metadata LevelDataChunk needs on the wire.
type Chunk struct {
	Data    []byte // exactly 1024 bytes, zero-padded if this is the last chunk
	Length  uint16 // actual byte count before padding
	Percent uint8  // floor(100 * offset / compressed_size)
}

// Payload builds the uncompressed level transfer payload: a big-endian
// u32 volume followed by the raw block array (spec §4.6 step 2).
func Payload(w *World) []byte {
	buf := make([]byte, 4+len(w.Data))
	binary.BigEndian.PutUint32(buf[:4], uint32(w.Volume()))
	copy(buf[4:], w.Data)
	return buf
}

// Compress gzips payload at the given level (any valid level is
// acceptable per spec §4.6; gzip.DefaultCompression matches the common
// case of "unspecified").
func Compress(payload []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("world: gzip writer: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return nil, fmt.Errorf("world: gzip write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("world: gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

// Chunks partitions compressed bytes into 1024-byte Chunks, zero-padding
// the final (possibly short) chunk, and stamping each with its transfer
// percentage (spec §4.6 step 3).
func Chunks(compressed []byte) []Chunk {
	total := len(compressed)
	if total == 0 {
		return nil
	}
	chunks := make([]Chunk, 0, (total+1023)/1024)
	for offset := 0; offset < total; offset += 1024 {
		end := offset + 1024
		if end > total {
			end = total
		}
		slice := compressed[offset:end]
		data := make([]byte, 1024)
		copy(data, slice)
		chunks = append(chunks, Chunk{
			Data:    data,
			Length:  uint16(len(slice)),
			Percent: uint8((100 * offset) / total),
		})
	}
	return chunks
}
