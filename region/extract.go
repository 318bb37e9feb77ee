package region

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
)

// Epsilon is the world-unit distance under which two clipped endpoints are
// treated as the same point.
const Epsilon = 0.005

// ErrOpenLoop indicates the supplied edges cannot be chained into a single
// closed boundary. The geometry provider emitted an inconsistent region.
var ErrOpenLoop = errors.New("region: edges do not form a closed loop")

// Polygon extracts the clipped cell polygon of a single site.
// Returns an empty slice when none of the site's edges is visible.
func Polygon(m mesh.Adjacency, s mesh.SiteID, clip geom.Rect) ([]mgl64.Vec2, error) {
	edges, err := m.IncidentEdges(s)
	if err != nil {
		return nil, fmt.Errorf("region: site %d: %w", s, err)
	}
	pts, err := Loop(m, edges, clip)
	if err != nil {
		return nil, fmt.Errorf("region: site %d: %w", s, err)
	}
	return pts, nil
}

// Loop builds the ordered, counter-clockwise polygon bounded by edges,
// clipped against clip. The edge set may come from one cell or from an
// aggregate selection boundary; it must chain into exactly one loop.
func Loop(m mesh.Adjacency, edges []mesh.EdgeID, clip geom.Rect) ([]mgl64.Vec2, error) {
	visible := make([]mesh.Edge, 0, len(edges))
	for _, id := range edges {
		e, err := m.Edge(id)
		if err != nil {
			return nil, fmt.Errorf("region: edge %d: %w", id, err)
		}
		if e.Visible {
			visible = append(visible, e)
		}
	}
	if len(visible) == 0 {
		return nil, nil
	}

	ordered, err := chain(visible)
	if err != nil {
		return nil, err
	}

	pts := connect(ordered, clip)
	if geom.SignedArea(pts) < 0 {
		reverse(pts)
	}
	return pts, nil
}

// oriented is an edge tagged with the flank whose clipped endpoint begins
// the traversal.
type oriented struct {
	edge  mesh.Edge
	start mesh.Side
}

func (o oriented) startPoint() mgl64.Vec2 { return o.edge.ClippedVertex(o.start) }
func (o oriented) endPoint() mgl64.Vec2   { return o.edge.ClippedVertex(o.start.Other()) }

// chain greedily orders edges into one walk by matching free endpoint
// vertices; unbounded ends (NoVertex) match each other. Stalling before
// every edge is placed means the set is not a single boundary.
func chain(edges []mesh.Edge) ([]oriented, error) {
	n := len(edges)
	ordered := make([]oriented, 0, n)
	ordered = append(ordered, oriented{edge: edges[0], start: mesh.SideLeft})
	first := edges[0].Vertex(mesh.SideLeft)
	last := edges[0].Vertex(mesh.SideRight)

	done := make([]bool, n)
	done[0] = true
	for remaining := n - 1; remaining > 0; {
		progress := false
		for i := 1; i < n; i++ {
			if done[i] {
				continue
			}
			le := edges[i].Vertex(mesh.SideLeft)
			re := edges[i].Vertex(mesh.SideRight)
			switch {
			case le == last:
				ordered = append(ordered, oriented{edge: edges[i], start: mesh.SideLeft})
				last = re
			case re == first:
				ordered = prepend(ordered, oriented{edge: edges[i], start: mesh.SideLeft})
				first = le
			case le == first:
				ordered = prepend(ordered, oriented{edge: edges[i], start: mesh.SideRight})
				first = re
			case re == last:
				ordered = append(ordered, oriented{edge: edges[i], start: mesh.SideRight})
				last = le
			default:
				continue
			}
			done[i] = true
			remaining--
			progress = true
		}
		if !progress {
			return nil, ErrOpenLoop
		}
	}
	return ordered, nil
}

func prepend(s []oriented, o oriented) []oriented {
	s = append(s, oriented{})
	copy(s[1:], s)
	s[0] = o
	return s
}

// connect walks the ordered edges, bridging every gap between consecutive
// clipped endpoints (and the final gap back to the first point) with
// rectangle corners.
func connect(ordered []oriented, clip geom.Rect) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, 0, 2*len(ordered)+4)
	pts = append(pts, ordered[0].startPoint())

	for _, oe := range ordered {
		start := oe.startPoint()
		if !near(pts[len(pts)-1], start) {
			pts = append(pts, cornersBetween(pts[len(pts)-1], start, clip)...)
			pts = append(pts, start)
		}
		if end := oe.endPoint(); !near(pts[len(pts)-1], end) {
			pts = append(pts, end)
		}
	}

	// Close last → first; when the walk already rejoined the start the
	// duplicate endpoint is dropped, otherwise corners bridge the final
	// gap (a same-side gap closes implicitly along the border).
	if len(pts) > 1 {
		if near(pts[len(pts)-1], pts[0]) {
			pts = pts[:len(pts)-1]
		} else {
			pts = append(pts, cornersBetween(pts[len(pts)-1], pts[0], clip)...)
			if near(pts[len(pts)-1], pts[0]) {
				pts = pts[:len(pts)-1]
			}
		}
	}
	return pts
}

// cornersBetween returns the rectangle corners bridging the border walk
// from one clipped point to the next, in walk order. Same-side pairs (and
// pairs involving an interior point) need no corner.
//
// Opposite sides take the perimeter path whose cumulative span is smaller,
// which assumes the region covers the smaller arc of the rectangle
// boundary; a region spanning more than half the perimeter picks the wrong
// pair here. Known limitation, kept as-is.
func cornersBetween(from, to mgl64.Vec2, r geom.Rect) []mgl64.Vec2 {
	ocF := r.Outcode(from, Epsilon)
	ocT := r.Outcode(to, Epsilon)
	if ocF == geom.Inside || ocT == geom.Inside || ocF&ocT != 0 {
		return nil
	}

	switch {
	case ocF&geom.Right != 0:
		x := r.Max.X()
		switch {
		case ocT&geom.Bottom != 0:
			return []mgl64.Vec2{{x, r.Min.Y()}}
		case ocT&geom.Top != 0:
			return []mgl64.Vec2{{x, r.Max.Y()}}
		default: // opposite: left
			y := pickSpan(from.Y(), to.Y(), r.Min.Y(), r.Max.Y(), r.Height())
			return []mgl64.Vec2{{x, y}, {r.Min.X(), y}}
		}
	case ocF&geom.Left != 0:
		x := r.Min.X()
		switch {
		case ocT&geom.Bottom != 0:
			return []mgl64.Vec2{{x, r.Min.Y()}}
		case ocT&geom.Top != 0:
			return []mgl64.Vec2{{x, r.Max.Y()}}
		default: // opposite: right
			y := pickSpan(from.Y(), to.Y(), r.Min.Y(), r.Max.Y(), r.Height())
			return []mgl64.Vec2{{x, y}, {r.Max.X(), y}}
		}
	case ocF&geom.Top != 0:
		y := r.Max.Y()
		switch {
		case ocT&geom.Right != 0:
			return []mgl64.Vec2{{r.Max.X(), y}}
		case ocT&geom.Left != 0:
			return []mgl64.Vec2{{r.Min.X(), y}}
		default: // opposite: bottom
			x := pickSpan(from.X(), to.X(), r.Min.X(), r.Max.X(), r.Width())
			return []mgl64.Vec2{{x, y}, {x, r.Min.Y()}}
		}
	default: // bottom
		y := r.Min.Y()
		switch {
		case ocT&geom.Right != 0:
			return []mgl64.Vec2{{r.Max.X(), y}}
		case ocT&geom.Left != 0:
			return []mgl64.Vec2{{r.Min.X(), y}}
		default: // opposite: top
			x := pickSpan(from.X(), to.X(), r.Min.X(), r.Max.X(), r.Width())
			return []mgl64.Vec2{{x, y}, {x, r.Max.Y()}}
		}
	}
}

// pickSpan chooses which of the two parallel rectangle sides to route an
// opposite-side bridge along: the one both points cumulatively sit closer
// to.
func pickSpan(a, b, lo, hi, extent float64) float64 {
	if (a-lo)+(b-lo) < extent {
		return lo
	}
	return hi
}

func near(a, b mgl64.Vec2) bool {
	return a.Sub(b).Len() < Epsilon
}

func reverse(pts []mgl64.Vec2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
