package transform

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// Cache memoizes Instantiate for consumers that redraw the same board many
// times. Entries never expire; a cache belongs to one parsed board and is
// dropped together with it. Safe for concurrent use.
type Cache struct {
	items *gocache.Cache
}

// NewCache creates an empty instance cache
func NewCache() *Cache {
	return &Cache{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Instances returns the instanced shapes of el, computing them on first use.
// The returned slice is shared between callers and must not be modified.
func (c *Cache) Instances(el geom.Element, pkg *geom.Package) []geom.Shape {
	key := cacheKey(el)
	if v, found := c.items.Get(key); found {
		return v.([]geom.Shape)
	}

	shapes := Instantiate(el, pkg)
	c.items.Set(key, shapes, gocache.NoExpiration)
	return shapes
}

// Len returns the number of cached placements
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

// Flush drops every cached placement
func (c *Cache) Flush() {
	c.items.Flush()
}

// cacheKey identifies a placement by everything that affects its geometry
func cacheKey(el geom.Element) string {
	return fmt.Sprintf("%s\x00%s\x00%s\x00%g\x00%g\x00%s",
		el.Name, el.Library, el.Package, el.Position.X, el.Position.Y, el.Rotation)
}
