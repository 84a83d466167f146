package guidance

import (
	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/bagaspn/navmerge/pkg/geo"
)

// hard upper bound on walker iterations; every accumulator bounds the walk
// itself, this only guards zero-length-edge degeneracies
const maxTraversalSteps = 1024

/*
Accumulator. capability collecting state along a road walk. Update is
called once per traversed edge with the intersection that edge arrives at;
the walk stops as soon as IsDone reports true.
*/
type Accumulator interface {
	Update(viaEid datastructure.Index, intersection Intersection)
	IsDone() bool
}

/*
Selector. capability choosing the next edge out of an intersection.
prevNode is the node the current edge departed from, so implementations
can recognize the u-turn road. ok is false when the walk should stop.
*/
type Selector interface {
	SelectTurn(intersection Intersection, prevNode datastructure.Index) (datastructure.Index, bool)
}

// GraphWalker. generic walk over the road graph, parameterized by an
// Accumulator and a Selector.
type GraphWalker struct {
	graph                 *datastructure.Graph
	intersectionGenerator *IntersectionGenerator
}

func NewGraphWalker(graph *datastructure.Graph,
	intersectionGenerator *IntersectionGenerator) *GraphWalker {
	return &GraphWalker{
		graph:                 graph,
		intersectionGenerator: intersectionGenerator,
	}
}

func (w *GraphWalker) TraverseRoad(start, eid datastructure.Index,
	accumulator Accumulator, selector Selector) {
	cur, curEdge := start, eid

	for step := 0; step < maxTraversalSteps; step++ {
		node := w.graph.GetTarget(curEdge)
		intersection := w.intersectionGenerator.GetConnectedRoads(cur, curEdge)

		accumulator.Update(curEdge, intersection)
		if accumulator.IsDone() {
			return
		}

		next, ok := selector.SelectTurn(intersection, cur)
		if !ok {
			return
		}
		cur, curEdge = node, next
	}
}

/*
IntersectionFinderAccumulator. stops at the first genuine intersection
(more than two departing roads) or after hopLimit traversed edges,
remembering the edge used to arrive there and the intersection itself.
*/
type IntersectionFinderAccumulator struct {
	hops         int
	hopLimit     int
	viaEid       datastructure.Index
	intersection Intersection
}

func NewIntersectionFinderAccumulator(hopLimit int) *IntersectionFinderAccumulator {
	return &IntersectionFinderAccumulator{
		hopLimit: hopLimit,
		viaEid:   datastructure.InvalidIndex,
	}
}

func (a *IntersectionFinderAccumulator) Update(viaEid datastructure.Index,
	intersection Intersection) {
	a.hops++
	a.viaEid = viaEid
	a.intersection = intersection
}

func (a *IntersectionFinderAccumulator) IsDone() bool {
	return a.hops >= a.hopLimit || len(a.intersection) > 2
}

func (a *IntersectionFinderAccumulator) GetViaEid() datastructure.Index {
	return a.viaEid
}

func (a *IntersectionFinderAccumulator) GetIntersection() Intersection {
	return a.intersection
}

/*
LengthLimitedCoordinateAccumulator. collects the raw coordinates along the
walk up to maxLength meters of path, clamping the final coordinate exactly
onto the length cap.
*/
type LengthLimitedCoordinateAccumulator struct {
	graph             *datastructure.Graph
	maxLength         float64
	accumulatedLength float64
	coordinates       []geo.Coordinate
	done              bool
}

func NewLengthLimitedCoordinateAccumulator(graph *datastructure.Graph,
	maxLength float64) *LengthLimitedCoordinateAccumulator {
	return &LengthLimitedCoordinateAccumulator{
		graph:     graph,
		maxLength: maxLength,
	}
}

func (a *LengthLimitedCoordinateAccumulator) Update(viaEid datastructure.Index,
	_ Intersection) {
	tail := a.graph.GetVertex(a.graph.GetTail(viaEid)).GetCoordinate()
	head := a.graph.GetVertex(a.graph.GetTarget(viaEid)).GetCoordinate()

	if len(a.coordinates) == 0 {
		a.coordinates = append(a.coordinates, tail)
	}

	segLen := a.graph.GetEdgeDist(viaEid)
	remaining := a.maxLength - a.accumulatedLength
	if segLen >= remaining {
		if segLen > 0 {
			a.coordinates = append(a.coordinates,
				geo.InterpolateCoordinate(tail, head, remaining/segLen))
		}
		a.accumulatedLength = a.maxLength
		a.done = true
		return
	}

	a.coordinates = append(a.coordinates, head)
	a.accumulatedLength += segLen
}

func (a *LengthLimitedCoordinateAccumulator) IsDone() bool {
	return a.done
}

func (a *LengthLimitedCoordinateAccumulator) GetAccumulatedLength() float64 {
	return a.accumulatedLength
}

func (a *LengthLimitedCoordinateAccumulator) GetCoordinates() []geo.Coordinate {
	return a.coordinates
}

/*
SelectStraightmostRoadByNameAndOnlyChoice. prefers the same-named
continuation closest to straight ahead; when no road shares the name,
falls back to the sole alternative if exactly one exists. The u-turn road
never qualifies.
*/
type SelectStraightmostRoadByNameAndOnlyChoice struct {
	graph        *datastructure.Graph
	nameID       datastructure.Index
	requireEntry bool // skip edges not drivable in walk direction
}

func NewSelectStraightmostRoadByNameAndOnlyChoice(graph *datastructure.Graph,
	nameID datastructure.Index, requireEntry bool) SelectStraightmostRoadByNameAndOnlyChoice {
	return SelectStraightmostRoadByNameAndOnlyChoice{
		graph:        graph,
		nameID:       nameID,
		requireEntry: requireEntry,
	}
}

func (s SelectStraightmostRoadByNameAndOnlyChoice) SelectTurn(intersection Intersection,
	prevNode datastructure.Index) (datastructure.Index, bool) {
	var (
		sameName     []TurnRoad
		alternatives int
		soleChoice   datastructure.Index
	)

	for _, road := range intersection {
		if s.graph.GetTarget(road.eid) == prevNode {
			continue // u-turn
		}
		if s.requireEntry && s.graph.GetEdgeData(road.eid).IsReversed() {
			continue
		}
		alternatives++
		soleChoice = road.eid
		if s.graph.GetEdgeData(road.eid).GetNameID() == s.nameID {
			sameName = append(sameName, road)
		}
	}

	if len(sameName) > 0 {
		best := sameName[0]
		for _, road := range sameName[1:] {
			if geo.AngularDeviation(road.angle, STRAIGHT_ANGLE) <
				geo.AngularDeviation(best.angle, STRAIGHT_ANGLE) {
				best = road
			}
		}
		return best.eid, true
	}

	if alternatives == 1 {
		return soleChoice, true
	}
	return datastructure.InvalidIndex, false
}
