package osmparser

import (
	"testing"

	"github.com/bagaspn/navmerge/pkg"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func wayWithTags(tags map[string]string) *osm.Way {
	way := &osm.Way{
		Nodes: osm.WayNodes{{ID: 1}, {ID: 2}},
	}
	for k, v := range tags {
		way.Tags = append(way.Tags, osm.Tag{Key: k, Value: v})
	}
	return way
}

func TestAcceptOsmWay(t *testing.T) {
	assert.True(t, acceptOsmWay(wayWithTags(map[string]string{"highway": "residential"})))
	assert.True(t, acceptOsmWay(wayWithTags(map[string]string{"highway": "motorway"})))

	assert.False(t, acceptOsmWay(wayWithTags(map[string]string{"highway": "footway"})))
	assert.False(t, acceptOsmWay(wayWithTags(map[string]string{"waterway": "river"})))
	assert.False(t, acceptOsmWay(wayWithTags(map[string]string{
		"highway": "residential", "area": "yes",
	})))
}

func TestParseLanes(t *testing.T) {
	assert.Equal(t, uint8(3), parseLanes("3", pkg.RESIDENTIAL))
	assert.Equal(t, uint8(2), parseLanes("2;3", pkg.RESIDENTIAL))
	assert.Equal(t, uint8(4), parseLanes(" 4 ", pkg.PRIMARY))

	// missing or malformed lanes fall back to the highway-class default
	assert.Equal(t, uint8(1), parseLanes("", pkg.RESIDENTIAL))
	assert.Equal(t, uint8(2), parseLanes("", pkg.MOTORWAY))
	assert.Equal(t, uint8(1), parseLanes("many", pkg.RESIDENTIAL))
	assert.Equal(t, uint8(1), parseLanes("0", pkg.RESIDENTIAL))
	assert.Equal(t, uint8(1), parseLanes("99", pkg.RESIDENTIAL))
}

func TestIsOneway(t *testing.T) {
	assert.True(t, isOneway("yes", false, pkg.RESIDENTIAL))
	assert.True(t, isOneway("1", false, pkg.RESIDENTIAL))
	assert.True(t, isOneway("-1", false, pkg.RESIDENTIAL))
	assert.False(t, isOneway("no", false, pkg.RESIDENTIAL))
	assert.False(t, isOneway("", false, pkg.RESIDENTIAL))

	// implied oneways
	assert.True(t, isOneway("", true, pkg.RESIDENTIAL))
	assert.True(t, isOneway("", false, pkg.MOTORWAY))
	// an explicit tag overrides the implication
	assert.False(t, isOneway("no", true, pkg.RESIDENTIAL))
}

func TestNewOsmWay(t *testing.T) {
	way := wayWithTags(map[string]string{
		"highway": "primary_link",
		"name":    "Exit 12",
		"lanes":   "2",
		"oneway":  "-1",
	})

	w := newOsmWay(way)
	assert.Equal(t, "Exit 12", w.name)
	assert.Equal(t, pkg.PRIMARY_LINK, w.highwayType)
	assert.Equal(t, uint8(2), w.lanes)
	assert.True(t, w.link)
	assert.True(t, w.oneway)
	assert.True(t, w.reverseNodes)
	assert.False(t, w.roundabout)
	assert.Equal(t, []int64{1, 2}, w.nodes)
}
