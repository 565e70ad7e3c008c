// Package world holds the in-memory voxel array the server streams to
// joining players and mutates on block edits.
package world

import "ccserver/internal/protocol"

// World is a linear voxel array plus the dimensions and spawn point
// needed to interpret it. It is created once at startup by a Loader and
// mutated only by SetBlock thereafter (spec §3 "VoxelWorld").
type World struct {
	DimX, DimY, DimZ int
	// OffsetBase is a loader-supplied constant prefix into Data before
	// block index 0; some NBT variants store a small header there. The
	// core treats it as opaque (spec §3, §9).
	OffsetBase int
	Data       []byte
	Spawn      protocol.Position
}

// Volume returns DimX*DimY*DimZ.
func (w *World) Volume() int {
	return w.DimX * w.DimY * w.DimZ
}

// Size returns the world dimensions as a Position, for use in
// LevelFinalize.map_size.
func (w *World) Size() protocol.Position {
	return protocol.Position{X: float64(w.DimX), Y: float64(w.DimY), Z: float64(w.DimZ)}
}

// index computes the linear offset for a block coordinate, per spec §3:
// offset_base + x + z*X + y*(X*Z).
func (w *World) index(x, y, z int) int {
	return w.OffsetBase + x + z*w.DimX + y*(w.DimX*w.DimZ)
}

// SetBlock writes block at pos, truncated to integer coordinates. Writes
// outside [0, len(Data)) are silently discarded (spec §3 bounds-check
// policy: "drop out-of-range writes").
func (w *World) SetBlock(pos protocol.Position, block byte) {
	x, y, z := int(pos.X), int(pos.Y), int(pos.Z)
	idx := w.index(x, y, z)
	if idx < 0 || idx >= len(w.Data) {
		return
	}
	w.Data[idx] = block
}

// Loader produces a World from an opaque source (typically an NBT level
// file). The core never parses the source itself — spec §6 treats the
// world file as an external collaborator surface that returns
// {dims, data, spawn}.
type Loader interface {
	Load(path string) (*World, error)
}
