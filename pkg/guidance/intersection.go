package guidance

import (
	"sort"

	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/bagaspn/navmerge/pkg/geo"
	"github.com/bagaspn/navmerge/pkg/util"
)

/*
MergableRoadData. one road departing a specific intersection node, with the
compass bearing at which it departs. Only meaningful relative to that node.
*/
type MergableRoadData struct {
	eid     datastructure.Index
	bearing float64
}

func NewMergableRoadData(eid datastructure.Index, bearing float64) MergableRoadData {
	return MergableRoadData{
		eid:     eid,
		bearing: bearing,
	}
}

func (m MergableRoadData) GetEid() datastructure.Index {
	return m.eid
}

func (m MergableRoadData) GetBearing() float64 {
	return m.bearing
}

/*
TurnRoad. a road departing a decision node, annotated with its turn angle
relative to the arrival direction (0 u-turn, 90 right, 180 straight on,
270 left) and its absolute departure bearing.
*/
type TurnRoad struct {
	eid     datastructure.Index
	angle   float64
	bearing float64
}

func (t TurnRoad) GetEid() datastructure.Index {
	return t.eid
}

func (t TurnRoad) GetAngle() float64 {
	return t.angle
}

func (t TurnRoad) GetBearing() float64 {
	return t.bearing
}

// Intersection. all roads departing one decision node, sorted by turn
// angle, u-turn first.
type Intersection []TurnRoad

/*
FindClosestTurn. the road whose turn angle is nearest target among those
accepted by every filter. ok is false when no road qualifies.
*/
func (in Intersection) FindClosestTurn(target float64,
	filters ...func(TurnRoad) bool) (TurnRoad, bool) {
	var (
		best      TurnRoad
		bestDev   float64
		found     bool
		qualifies = func(road TurnRoad) bool {
			for _, filter := range filters {
				if !filter(road) {
					return false
				}
			}
			return true
		}
	)

	for _, road := range in {
		if !qualifies(road) {
			continue
		}
		dev := geo.AngularDeviation(road.angle, target)
		if !found || dev < bestDev {
			best, bestDev, found = road, dev, true
		}
	}
	return best, found
}

/*
SkippedIntersection. result of pass-through compaction: the edge used to
arrive at the first genuine decision point, and the node that edge departs
from.
*/
type SkippedIntersection struct {
	nid    datastructure.Index
	viaEid datastructure.Index
}

func (s SkippedIntersection) GetNid() datastructure.Index {
	return s.nid
}

func (s SkippedIntersection) GetViaEid() datastructure.Index {
	return s.viaEid
}

// IntersectionGenerator. read-only intersection enumeration over the node
// based graph.
type IntersectionGenerator struct {
	graph *datastructure.Graph
}

func NewIntersectionGenerator(graph *datastructure.Graph) *IntersectionGenerator {
	return &IntersectionGenerator{graph: graph}
}

/*
GetConnectedRoads. the Intersection at the node viaEid arrives at, with
turn angles relative to the arrival bearing of viaEid. The u-turn road is
included like any other.
*/
func (ig *IntersectionGenerator) GetConnectedRoads(nid, viaEid datastructure.Index) Intersection {
	g := ig.graph
	util.AssertPanic(g.GetTail(viaEid) == nid, "viaEid must depart from nid")
	node := g.GetTarget(viaEid)
	arrivalBearing := g.EdgeBearing(viaEid)

	roads := make(Intersection, 0, g.GetOutDegree(node))
	g.ForAdjacentEdgesOf(node, func(eid datastructure.Index) {
		bearing := g.EdgeBearing(eid)
		roads = append(roads, TurnRoad{
			eid:     eid,
			angle:   geo.TurnAngle(arrivalBearing, bearing),
			bearing: bearing,
		})
	})

	sort.Slice(roads, func(i, j int) bool {
		return roads[i].angle < roads[j].angle
	})
	return roads
}

/*
SkipDegreeTwoNodes. follow the chain of pass-through (degree-two) nodes
starting with eid at node, returning the edge that reaches the first
genuine decision point. Chains that close back onto node stop there, and a
hop cap aborts degenerate circular chains.
*/
func (ig *IntersectionGenerator) SkipDegreeTwoNodes(node, eid datastructure.Index) SkippedIntersection {
	g := ig.graph
	cur, curEdge := node, eid

	for hops := 0; hops < MAX_SKIP_DEGREE_TWO_HOPS; hops++ {
		target := g.GetTarget(curEdge)
		if target == node || g.GetOutDegree(target) != 2 {
			break
		}

		next := datastructure.InvalidIndex
		for _, cand := range g.GetAdjacentEdges(target) {
			if g.GetTarget(cand) != cur {
				next = cand
				break
			}
		}
		if next == datastructure.InvalidIndex {
			break
		}
		cur, curEdge = target, next
	}

	return SkippedIntersection{nid: cur, viaEid: curEdge}
}
