// Package geom provides the small set of planar primitives shared by the
// terrain packages: an axis-aligned clip rectangle with half-plane outcode
// tests, the 2D scalar cross product, and signed polygon area.
//
// Points and vectors are mgl64.Vec2 throughout; geom only adds what mathgl
// does not already carry for 2D work.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Outcode is a bitmask of the rectangle sides a point lies on or beyond,
// one bit per half-plane. A corner carries two bits; an interior point none.
type Outcode uint8

// Half-plane bits. Bottom is the Min.Y side, Top the Max.Y side.
const (
	Inside Outcode = 0
	Left   Outcode = 1 << iota
	Right
	Bottom
	Top
)

// Rect is an axis-aligned rectangle spanning [Min, Max].
type Rect struct {
	Min, Max mgl64.Vec2
}

// NewRect returns the rectangle with the given extents.
// Callers must supply minX ≤ maxX and minY ≤ maxY.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{Min: mgl64.Vec2{minX, minY}, Max: mgl64.Vec2{maxX, maxY}}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X() - r.Min.X() }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y() - r.Min.Y() }

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// Outcode returns the side bits for p with tolerance eps: a bit is set when
// p lies on or beyond the corresponding side. Points clipped to the border
// therefore report the side they were clipped to.
//
// Complexity: O(1).
func (r Rect) Outcode(p mgl64.Vec2, eps float64) Outcode {
	var oc Outcode
	if p.X() <= r.Min.X()+eps {
		oc |= Left
	}
	if p.X() >= r.Max.X()-eps {
		oc |= Right
	}
	if p.Y() <= r.Min.Y()+eps {
		oc |= Bottom
	}
	if p.Y() >= r.Max.Y()-eps {
		oc |= Top
	}
	return oc
}

// Corner returns the rectangle corner selected by a two-bit outcode,
// e.g. Left|Top yields (Min.X, Max.Y). Results for codes that do not name
// exactly one vertical and one horizontal side are unspecified.
func (r Rect) Corner(oc Outcode) mgl64.Vec2 {
	x := r.Min.X()
	if oc&Right != 0 {
		x = r.Max.X()
	}
	y := r.Min.Y()
	if oc&Top != 0 {
		y = r.Max.Y()
	}
	return mgl64.Vec2{x, y}
}

// Cross returns the scalar 2D cross product a.X*b.Y − a.Y*b.X.
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// SignedArea computes the shoelace area of the polygon pts (closed
// implicitly, last point connecting back to the first). Positive area means
// counter-clockwise winding in a y-up plane.
//
// Complexity: O(n).
func SignedArea(pts []mgl64.Vec2) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += Cross(p, q)
	}
	return sum / 2
}

// Normalize returns v scaled to unit length, or the zero vector when v is
// shorter than eps. Guards the NaN that mgl64.Vec2.Normalize produces on
// zero input.
func Normalize(v mgl64.Vec2, eps float64) mgl64.Vec2 {
	l := v.Len()
	if l < eps || math.IsNaN(l) {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}
