// Package protocol implements the Classic Protocol v7 wire codec: the
// fixed-size, table-driven packet framing described by the game's network
// specification, plus the Position value type used by several packet
// fields.
package protocol

import "math"

// Position is a point in world space plus a facing direction. Coordinates
// are in blocks, yaw/pitch in degrees over 0..360.
type Position struct {
	X, Y, Z    float64
	Yaw, Pitch float64
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y, p.Z + o.Z, p.Yaw + o.Yaw, p.Pitch + o.Pitch}
}

// Sub returns the component-wise difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y, p.Z - o.Z, p.Yaw - o.Yaw, p.Pitch - o.Pitch}
}

// Scale multiplies every component of p by factor.
func (p Position) Scale(factor float64) Position {
	return Position{p.X * factor, p.Y * factor, p.Z * factor, p.Yaw * factor, p.Pitch * factor}
}

// Equal reports whether p and o are equal component-wise.
func (p Position) Equal(o Position) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z && p.Yaw == o.Yaw && p.Pitch == o.Pitch
}

// Truncate truncates x/y/z towards zero and remaps yaw/pitch linearly from
// degrees (0..360) onto the wire's 0..255 rotation range.
func (p Position) Truncate() Position {
	return Position{
		X:     math.Trunc(p.X),
		Y:     math.Trunc(p.Y),
		Z:     math.Trunc(p.Z),
		Yaw:   math.Trunc((p.Yaw * 255) / 360),
		Pitch: math.Trunc((p.Pitch * 255) / 360),
	}
}

// coarseVector is the wire encoding of a CoarseVector field: three
// big-endian int16, block granularity, no rotation.
type coarseVector struct {
	X, Y, Z int16
}

func (p Position) toCoarse() coarseVector {
	t := p.Truncate()
	return coarseVector{int16(t.X), int16(t.Y), int16(t.Z)}
}

func positionFromCoarse(c coarseVector) Position {
	return Position{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}

// fineVector is the wire encoding of a FineVector field: three big-endian
// int16 at 1/32-block resolution, plus yaw/pitch as unsigned bytes scaled
// linearly from degrees to 0..255.
type fineVector struct {
	X, Y, Z    int16
	Yaw, Pitch uint8
}

func (p Position) toFine() fineVector {
	return fineVector{
		X:     int16(math.Trunc(p.X * 32)),
		Y:     int16(math.Trunc(p.Y * 32)),
		Z:     int16(math.Trunc(p.Z * 32)),
		Yaw:   uint8(int16(math.Trunc((p.Yaw * 255) / 360))),
		Pitch: uint8(int16(math.Trunc((p.Pitch * 255) / 360))),
	}
}

func positionFromFine(f fineVector) Position {
	return Position{
		X:     float64(f.X) / 32,
		Y:     float64(f.Y) / 32,
		Z:     float64(f.Z) / 32,
		Yaw:   (float64(f.Yaw) * 360) / 255,
		Pitch: (float64(f.Pitch) * 360) / 255,
	}
}
