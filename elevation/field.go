package elevation

import (
	"math"

	"github.com/orogenlab/orogen/mesh"
)

// Field holds per-site elevation state for one mesh. Elevation only ever
// rises (preserve-highest); a raise marks the site dirty until the
// consumer re-derives whatever depends on it and clears the flag.
//
// Fields are replaced wholesale on regeneration. Out-of-range sites read
// as elevation 0, the "unassigned" terminal state.
type Field struct {
	elev  []float64
	dirty []bool
}

// NewField returns a zero field for n sites.
func NewField(n int) *Field {
	return &Field{
		elev:  make([]float64, n),
		dirty: make([]bool, n),
	}
}

// Len returns the number of sites the field covers.
func (f *Field) Len() int { return len(f.elev) }

// Elevation returns the stored elevation of s, or 0 when s is out of range.
func (f *Field) Elevation(s mesh.SiteID) float64 {
	if s < 0 || int(s) >= len(f.elev) {
		return 0
	}
	return f.elev[s]
}

// Raise lifts s to v if v exceeds the stored elevation, marking s dirty.
// Reports whether the site changed. Out-of-range sites are ignored.
func (f *Field) Raise(s mesh.SiteID, v float64) bool {
	if s < 0 || int(s) >= len(f.elev) || v <= f.elev[s] {
		return false
	}
	f.elev[s] = v
	f.dirty[s] = true
	return true
}

// Dirty reports whether s changed since the last ClearDirty.
func (f *Field) Dirty(s mesh.SiteID) bool {
	return s >= 0 && int(s) < len(f.dirty) && f.dirty[s]
}

// ClearDirty acknowledges that derived state for s has been rebuilt.
func (f *Field) ClearDirty(s mesh.SiteID) {
	if s >= 0 && int(s) < len(f.dirty) {
		f.dirty[s] = false
	}
}

// Range scans the field for its minimum and maximum elevation.
// A zero-length field reports (0, 0).
func (f *Field) Range() (min, max float64) {
	if len(f.elev) == 0 {
		return 0, 0
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range f.elev {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}
