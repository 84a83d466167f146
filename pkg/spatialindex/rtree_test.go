package spatialindex

import (
	"math"
	"testing"

	"github.com/bagaspn/navmerge/pkg"
	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const metersPerDeg = math.Pi * 6371000.0 / 180.0

func junctionGraph() (*datastructure.Graph, datastructure.Index, datastructure.Index) {
	g := datastructure.NewGraph()
	class := datastructure.NewRoadClassification(pkg.RESIDENTIAL, 1, false, false)

	addAt := func(x, y float64) datastructure.Index {
		return g.AddVertex(y/metersPerDeg, x/metersPerDeg)
	}
	connect := func(u, v datastructure.Index) {
		g.AddRoad(u, v, "Test St", pkg.TRAVEL_MODE_DRIVING, class, false)
	}

	// crossing at the origin, a second one 500 m north; everything else
	// is pass-through or dead-end
	first := addAt(0, 0)
	second := addAt(0, 500)
	mid := addAt(0, 250)
	connect(first, mid)
	connect(mid, second)
	connect(first, addAt(100, 0))
	connect(first, addAt(-100, 0))
	connect(second, addAt(100, 500))
	connect(second, addAt(-100, 500))

	return g, first, second
}

func TestNearestJunction(t *testing.T) {
	g, first, second := junctionGraph()
	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	near := 30.0 / metersPerDeg // 30 m north of the origin crossing
	got, ok := rt.NearestJunction(g, near, 0, 1.0)
	require.True(t, ok)
	assert.Equal(t, first, got)

	nearSecond := 450.0 / metersPerDeg
	got, ok = rt.NearestJunction(g, nearSecond, 0, 1.0)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestNearestJunctionOutOfRange(t *testing.T) {
	g, _, _ := junctionGraph()
	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	// 50 km east of the network
	_, ok := rt.NearestJunction(g, 0, 50000.0/metersPerDeg, 1.0)
	assert.False(t, ok)
}

func TestSearchWithinRadiusOnlyIndexesJunctions(t *testing.T) {
	g, first, second := junctionGraph()
	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	found := rt.SearchWithinRadius(0, 0, 5.0, 64)
	assert.ElementsMatch(t, []datastructure.Index{first, second}, found)
}
