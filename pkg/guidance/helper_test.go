package guidance

import (
	"math"

	"github.com/bagaspn/navmerge/pkg"
	"github.com/bagaspn/navmerge/pkg/datastructure"
)

const metersPerDeg = math.Pi * 6371000.0 / 180.0

/*
fixture. small road networks laid out on a local flat frame around
(0, 0): x meters east, y meters north. At the equator both axes scale
identically, so planned geometry survives the haversine round trip.
*/
type fixture struct {
	graph *datastructure.Graph
}

func newFixture() *fixture {
	return &fixture{graph: datastructure.NewGraph()}
}

func (f *fixture) node(x, y float64) datastructure.Index {
	return f.graph.AddVertex(y/metersPerDeg, x/metersPerDeg)
}

type roadOpts struct {
	name       string
	lanes      uint8
	oneway     bool
	roundabout bool
	link       bool
	mode       pkg.TravelMode
	highway    pkg.OsmHighwayType
}

func road(name string) roadOpts {
	return roadOpts{
		name:    name,
		lanes:   1,
		mode:    pkg.TRAVEL_MODE_DRIVING,
		highway: pkg.RESIDENTIAL,
	}
}

func (o roadOpts) asOneway() roadOpts {
	o.oneway = true
	return o
}

func (o roadOpts) withLanes(lanes uint8) roadOpts {
	o.lanes = lanes
	return o
}

func (o roadOpts) asRoundabout() roadOpts {
	o.roundabout = true
	return o
}

func (o roadOpts) withMode(mode pkg.TravelMode) roadOpts {
	o.mode = mode
	return o
}

// connect. add a road segment u->v, returning forward and backward edge ids.
func (f *fixture) connect(u, v datastructure.Index, opts roadOpts) (datastructure.Index, datastructure.Index) {
	class := datastructure.NewRoadClassification(opts.highway, opts.lanes,
		opts.roundabout, opts.link)
	return f.graph.AddRoad(u, v, opts.name, opts.mode, class, opts.oneway)
}

func (f *fixture) detector() *MergableRoadDetector {
	return f.detectorWithConfig(DefaultDetectorConfig())
}

func (f *fixture) detectorWithConfig(config DetectorConfig) *MergableRoadDetector {
	return NewMergableRoadDetector(f.graph, NewIntersectionGenerator(f.graph), config)
}

// departing. the merge-candidate view of eid at its tail node.
func (f *fixture) departing(eid datastructure.Index) MergableRoadData {
	return NewMergableRoadData(eid, f.graph.EdgeBearing(eid))
}

/*
dualCarriagewayFixture. a divided road heading north out of junction n,
with the outgoing carriageway offset 5 m west and the incoming one 5 m
east. Both carriageways are oneway and share name and classification;
an undivided approach road arrives from the south.

	l3         r3
	|           |
	l2         r2
	|           |
	l1         r1
	 \         /
	  `---n---'
	      |
	      a
*/
func dualCarriagewayFixture() (*fixture, datastructure.Index, MergableRoadData, MergableRoadData) {
	f := newFixture()

	n := f.node(0, 0)
	a := f.node(0, -50)
	l1, l2, l3 := f.node(-5, 30), f.node(-5, 60), f.node(-5, 110)
	r1, r2, r3 := f.node(5, 30), f.node(5, 60), f.node(5, 110)

	main := road("Main St")
	f.connect(a, n, main)

	// outgoing carriageway, drivable away from n
	lhsEid, _ := f.connect(n, l1, main.asOneway())
	f.connect(l1, l2, main.asOneway())
	f.connect(l2, l3, main.asOneway())

	// incoming carriageway, drivable towards n
	_, rhsEid := f.connect(r1, n, main.asOneway())
	f.connect(r2, r1, main.asOneway())
	f.connect(r3, r2, main.asOneway())

	return f, n, f.departing(lhsEid), f.departing(rhsEid)
}

/*
narrowTriangleFixture. one road forking around a small island at n and
reconverging within a couple of meters:

	d         e
	 \       /
	  b --- c
	   \   /
	    \ /
	     n
*/
func narrowTriangleFixture() (*fixture, datastructure.Index, MergableRoadData, MergableRoadData) {
	f := newFixture()

	n := f.node(0, 0)
	b, c := f.node(-6, 50), f.node(6, 50)
	d, e := f.node(-12, 100), f.node(12, 100)

	fork := road("Fork Rd")
	lhsEid, _ := f.connect(n, b, fork.asOneway())
	_, rhsEid := f.connect(c, n, fork.asOneway())
	f.connect(b, c, fork)
	f.connect(b, d, fork)
	f.connect(e, c, fork.asOneway())

	return f, n, f.departing(lhsEid), f.departing(rhsEid)
}

/*
linkRoadFixture. a two-way ramp pair departing n and feeding into a
differently named oneway through road at j:

	 t1
	  \
	   j ---.
	  /|     \
	t2 |     r2
	   |     /
	   |    r
	   |   /
	    n-'
*/
func linkRoadFixture() (*fixture, datastructure.Index, MergableRoadData, MergableRoadData) {
	f := newFixture()

	n := f.node(0, 0)
	j := f.node(0, 60)
	t1 := f.node(40, 129.28)
	t2 := f.node(-16.63, -18.25)
	r := f.node(8, 60)
	r2 := f.node(16, 120)

	ramp := road("Bridge Approach")
	lhsEid, _ := f.connect(n, j, ramp.asOneway())
	_, rhsEid := f.connect(r, n, ramp.asOneway())
	f.connect(r2, r, ramp.asOneway())

	highway := road("Riverside Hwy")
	f.connect(j, t1, highway.asOneway())
	f.connect(t2, j, highway.asOneway())

	return f, n, f.departing(lhsEid), f.departing(rhsEid)
}

/*
connectAgainFixture. a short split around an island between two
homogeneous degree-three junctions n and m, with plain continuations on
both ends:

	     z
	     |
	     m
	    / \
	   p   q
	    \ /
	     n
	     |
	     a
*/
func connectAgainFixture() (*fixture, datastructure.Index, MergableRoadData, MergableRoadData) {
	f := newFixture()

	n := f.node(0, 0)
	a := f.node(0, -50)
	p, q := f.node(-8, 40), f.node(8, 40)
	m := f.node(0, 80)
	z := f.node(0, 140)

	loop := road("Loop Rd")
	f.connect(a, n, loop)
	f.connect(m, z, loop)

	lhsEid, _ := f.connect(n, p, loop.asOneway())
	f.connect(p, m, loop.asOneway())
	_, rhsEid := f.connect(q, n, loop.asOneway())
	f.connect(m, q, loop.asOneway())

	return f, n, f.departing(lhsEid), f.departing(rhsEid)
}

/*
oneSidedConnectAgainFixture. only the reconvergence node m is a
homogeneous degree-three junction; n carries an unrelated fourth road.
scale stretches the island, moving m away from n.
*/
func oneSidedConnectAgainFixture(scale float64) (*fixture, datastructure.Index, MergableRoadData, MergableRoadData) {
	f := newFixture()

	n := f.node(0, 0)
	a := f.node(0, -50)
	w := f.node(30, 0)
	p, q := f.node(-3*scale, 6*scale), f.node(3*scale, 6*scale)
	m := f.node(0, 12*scale)
	z := f.node(0, 12*scale+6*scale)

	loop := road("Loop Rd")
	f.connect(a, n, loop)
	f.connect(n, w, road("Other St"))
	f.connect(m, z, loop)

	lhsEid, _ := f.connect(n, p, loop.asOneway())
	f.connect(p, m, loop.asOneway())
	_, rhsEid := f.connect(q, n, loop.asOneway())
	f.connect(m, q, loop.asOneway())

	return f, n, f.departing(lhsEid), f.departing(rhsEid)
}
