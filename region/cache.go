package region

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
)

// Cache memoizes clipped cell polygons for one mesh and clip rectangle.
// It never watches the mesh: callers invalidate entries whenever the
// underlying edges or the clip rectangle change (site moves, regeneration).
//
// Not safe for concurrent use.
type Cache struct {
	m     mesh.Adjacency
	clip  geom.Rect
	polys map[mesh.SiteID][]mgl64.Vec2
}

// NewCache returns an empty cache over m clipped to clip.
func NewCache(m mesh.Adjacency, clip geom.Rect) *Cache {
	return &Cache{
		m:     m,
		clip:  clip,
		polys: make(map[mesh.SiteID][]mgl64.Vec2),
	}
}

// Clip returns the cache's clip rectangle.
func (c *Cache) Clip() geom.Rect { return c.clip }

// Polygon returns the memoized polygon of s, extracting it on first use.
// Empty (fully invisible) regions are memoized too. The returned slice is
// the caller's to keep; mutations never reach the cached copy.
func (c *Cache) Polygon(s mesh.SiteID) ([]mgl64.Vec2, error) {
	pts, ok := c.polys[s]
	if !ok {
		var err error
		if pts, err = Polygon(c.m, s, c.clip); err != nil {
			return nil, err
		}
		c.polys[s] = pts
	}
	out := make([]mgl64.Vec2, len(pts))
	copy(out, pts)
	return out, nil
}

// Invalidate drops the memoized polygon of s, if any.
func (c *Cache) Invalidate(s mesh.SiteID) {
	delete(c.polys, s)
}

// InvalidateAll drops every memoized polygon.
func (c *Cache) InvalidateAll() {
	clear(c.polys)
}
