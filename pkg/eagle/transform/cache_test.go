package transform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

func TestCacheInstances(t *testing.T) {
	pkg := samplePackage()
	c := NewCache()

	r1 := geom.Element{Name: "R1", Package: pkg.Name, Position: geom.Point{X: 1, Y: 2}, Rotation: geom.Rotation{Angle: 90}}
	r2 := geom.Element{Name: "R2", Package: pkg.Name, Position: geom.Point{X: 1, Y: 2}, Rotation: geom.Rotation{Angle: 90, Mirror: true}}

	first := c.Instances(r1, pkg)
	again := c.Instances(r1, pkg)
	require.Len(t, first, len(pkg.Shapes))
	assert.Equal(t, first, again)
	assert.Equal(t, 1, c.Len())

	mirrored := c.Instances(r2, pkg)
	assert.Equal(t, Instantiate(r2, pkg), mirrored)
	assert.Equal(t, 2, c.Len())

	c.Flush()
	assert.Equal(t, 0, c.Len())
}

func TestCacheMissingPackage(t *testing.T) {
	c := NewCache()
	got := c.Instances(geom.Element{Name: "C7", Package: "SMD0603"}, nil)
	assert.Empty(t, got)
	assert.Equal(t, 1, c.Len())
}

// Instantiate shares nothing mutable, so concurrent callers must agree with a
// sequential run.
func TestInstantiateConcurrent(t *testing.T) {
	pkg := samplePackage()

	elements := make([]geom.Element, 64)
	for i := range elements {
		elements[i] = geom.Element{
			Name:     fmt.Sprintf("U%d", i),
			Package:  pkg.Name,
			Position: geom.Point{X: float64(i), Y: float64(-i)},
			Rotation: geom.Rotation{Angle: float64(i * 15), Mirror: i%2 == 1},
		}
	}

	want := make([][]geom.Shape, len(elements))
	for i, el := range elements {
		want[i] = Instantiate(el, pkg)
	}

	c := NewCache()
	got := make([][]geom.Shape, len(elements))
	var g errgroup.Group
	for i, el := range elements {
		i, el := i, el
		g.Go(func() error {
			got[i] = Instantiate(el, pkg)
			c.Instances(el, pkg)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, want, got)
	assert.Equal(t, len(elements), c.Len())
}
