package guidance

import (
	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/bagaspn/navmerge/pkg/geo"
	"github.com/bagaspn/navmerge/pkg/util"
)

/*
MergableRoadDetector. decides whether two roads departing the same
intersection are cartographic duplicates of one real-world road (a divided
carriageway or a short fork around an island) and may be merged by the
guidance pipeline. Pure read-only queries over the graph; safe for
concurrent use.
*/
type MergableRoadDetector struct {
	graph                 *datastructure.Graph
	intersectionGenerator *IntersectionGenerator
	walker                *GraphWalker
	config                DetectorConfig
}

func NewMergableRoadDetector(graph *datastructure.Graph,
	intersectionGenerator *IntersectionGenerator,
	config DetectorConfig) *MergableRoadDetector {
	return &MergableRoadDetector{
		graph:                 graph,
		intersectionGenerator: intersectionGenerator,
		walker:                NewGraphWalker(graph, intersectionGenerator),
		config:                config,
	}
}

/*
CanMergeRoad. admissibility test for merging lhs and rhs at
intersectionNode. The checks run in fixed order and short-circuit:
reconvergence has to be tested before the link-road exclusion, since a
genuine reconnection can look like a link road.
*/
func (d *MergableRoadDetector) CanMergeRoad(intersectionNode datastructure.Index,
	lhs, rhs MergableRoadData) bool {
	// roads should be somewhat close
	if geo.AngularDeviation(lhs.bearing, rhs.bearing) > d.config.MaxBearingDeviation {
		return false
	}

	lhsEdgeData := d.graph.GetEdgeData(lhs.eid)
	rhsEdgeData := d.graph.GetEdgeData(rhs.eid)

	// roundabouts are special, simply don't touch them
	if lhsEdgeData.GetRoadClassification().IsRoundabout() ||
		rhsEdgeData.GetRoadClassification().IsRoundabout() {
		return false
	}

	// and they need to describe the same road
	if !d.RoadDataIsCompatible(lhsEdgeData, rhsEdgeData) {
		return false
	}

	/* don't use any circular links, they mess up the detection
	 *
	 *          / -- \
	 * a ---- b - - /
	 */
	if d.graph.GetTarget(lhs.eid) == intersectionNode ||
		d.graph.GetTarget(rhs.eid) == intersectionNode {
		return false
	}

	// don't merge turning circles/traffic loops
	if d.IsTrafficLoop(intersectionNode, lhs) || d.IsTrafficLoop(intersectionNode, rhs) {
		return false
	}

	// needs to be checked prior to link roads, since connections can seem
	// like links
	if d.ConnectAgain(intersectionNode, lhs, rhs) {
		return true
	}

	// don't merge link roads
	if d.IsLinkRoad(intersectionNode, lhs) || d.IsLinkRoad(intersectionNode, rhs) {
		return false
	}

	// check if we simply split up prior to an intersection
	if d.IsNarrowTriangle(intersectionNode, lhs, rhs) {
		return true
	}

	// finally check if the two roads describe the same direction
	return d.HaveSameDirection(intersectionNode, lhs, rhs)
}

/*
RoadDataIsCompatible. merging hides information, so only edges that are
unambiguously the same named road, same travel mode, same classification
and opposite digitized direction qualify.
*/
func (d *MergableRoadDetector) RoadDataIsCompatible(lhsEdgeData, rhsEdgeData datastructure.EdgeData) bool {
	// describing the same road in opposite directions requires one
	// reversed and one non-reversed edge
	if lhsEdgeData.IsReversed() == rhsEdgeData.IsReversed() {
		return false
	}

	if lhsEdgeData.GetTravelMode() != rhsEdgeData.GetTravelMode() {
		return false
	}

	// merging is quite severe, ask for identical names, not just similar
	if lhsEdgeData.GetNameID() != rhsEdgeData.GetNameID() {
		return false
	}

	return lhsEdgeData.GetRoadClassification().Equal(rhsEdgeData.GetRoadClassification())
}

// IsTrafficLoop. a road that circles back to its own origin through
// pass-through nodes.
func (d *MergableRoadDetector) IsTrafficLoop(intersectionNode datastructure.Index,
	road MergableRoadData) bool {
	connection := d.intersectionGenerator.SkipDegreeTwoNodes(intersectionNode, road.eid)
	return intersectionNode == d.graph.GetTarget(connection.viaEid)
}

/*
IsNarrowTriangle. a road splitting around a small island and reconverging
right away:

	b ..... c
	 \     /
	  \   /
	   \ /
	    a

looking along (a,b), a narrow triangle offers a turn to the right at b
that connects over to c.
*/
func (d *MergableRoadDetector) IsNarrowTriangle(intersectionNode datastructure.Index,
	lhs, rhs MergableRoadData) bool {
	leftAccumulator := NewIntersectionFinderAccumulator(d.config.IntersectionHopLimit)
	rightAccumulator := NewIntersectionFinderAccumulator(d.config.IntersectionHopLimit)

	// both roads share an edge id name; either one works for selection
	selector := NewSelectStraightmostRoadByNameAndOnlyChoice(d.graph,
		d.graph.GetEdgeData(lhs.eid).GetNameID(), false)

	d.walker.TraverseRoad(intersectionNode, lhs.eid, leftAccumulator, selector)

	// if the intersection has no right turn, continue onto the next one
	// once, skipping over a single small side street
	leftTurn, ok := leftAccumulator.GetIntersection().FindClosestTurn(90)
	util.AssertPanic(ok, "left corner intersection must not be empty")
	if geo.AngularDeviation(leftTurn.angle, 90) > d.config.NarrowTurnAngle {
		straight, ok := leftAccumulator.GetIntersection().FindClosestTurn(STRAIGHT_ANGLE)
		util.AssertPanic(ok, "left corner intersection must not be empty")
		d.walker.TraverseRoad(d.graph.GetTarget(leftAccumulator.GetViaEid()),
			straight.eid, leftAccumulator, selector)
	}

	distanceToTriangle := geo.HaversineDistanceM(
		d.graph.GetVertex(intersectionNode).GetCoordinate(),
		d.graph.GetVertex(d.graph.GetTarget(leftAccumulator.GetViaEid())).GetCoordinate())

	// don't move too far down the road
	if distanceToTriangle > d.config.MaxTriangleCornerDistance {
		return false
	}

	d.walker.TraverseRoad(intersectionNode, rhs.eid, rightAccumulator, selector)
	rightTurn, ok := rightAccumulator.GetIntersection().FindClosestTurn(270)
	util.AssertPanic(ok, "right corner intersection must not be empty")
	if geo.AngularDeviation(rightTurn.angle, 270) > d.config.NarrowTurnAngle {
		straight, ok := rightAccumulator.GetIntersection().FindClosestTurn(STRAIGHT_ANGLE)
		util.AssertPanic(ok, "right corner intersection must not be empty")
		d.walker.TraverseRoad(d.graph.GetTarget(rightAccumulator.GetViaEid()),
			straight.eid, rightAccumulator, selector)
	}

	// the turn closest to a right turn has to connect the two corners
	connectorTurn, ok := leftAccumulator.GetIntersection().FindClosestTurn(90)
	util.AssertPanic(ok, "left corner intersection must not be empty")
	if geo.AngularDeviation(connectorTurn.angle, 90) > d.config.NarrowTurnAngle {
		return false
	}

	numLanes := func(road MergableRoadData) float64 {
		return float64(util.Max(
			d.graph.GetEdgeData(road.eid).GetRoadClassification().GetNumberOfLanes(), 1))
	}

	// the width we can bridge at the intersection
	assumedRoadWidth := (numLanes(lhs) + numLanes(rhs)) * d.config.AssumedLaneWidth
	leftCorner := d.graph.GetTarget(leftAccumulator.GetViaEid())
	rightCorner := d.graph.GetTarget(rightAccumulator.GetViaEid())
	distanceBetweenCorners := geo.HaversineDistanceM(
		d.graph.GetVertex(leftCorner).GetCoordinate(),
		d.graph.GetVertex(rightCorner).GetCoordinate())
	if distanceBetweenCorners > assumedRoadWidth+d.config.TriangleWidthMargin {
		return false
	}

	// check that both corners are actually connected
	connectAccumulator := NewIntersectionFinderAccumulator(d.config.IntersectionHopLimit)
	d.walker.TraverseRoad(leftCorner, connectorTurn.eid, connectAccumulator, selector)
	return d.graph.GetTarget(connectAccumulator.GetViaEid()) == rightCorner
}

// HaveSameDirection. true geometric parallelism of a dual carriageway.
func (d *MergableRoadDetector) HaveSameDirection(intersectionNode datastructure.Index,
	lhs, rhs MergableRoadData) bool {
	if geo.AngularDeviation(lhs.bearing, rhs.bearing) > d.config.MaxBearingDeviation {
		return false
	}

	// find coordinates following each road far away from the junction
	coordinatesAlongRoad := func(eid datastructure.Index) (float64, []geo.Coordinate) {
		accumulator := NewLengthLimitedCoordinateAccumulator(d.graph, d.config.ExtractionDistance)
		selector := NewSelectStraightmostRoadByNameAndOnlyChoice(d.graph,
			d.graph.GetEdgeData(eid).GetNameID(), false)
		d.walker.TraverseRoad(intersectionNode, eid, accumulator, selector)
		return accumulator.GetAccumulatedLength(), accumulator.GetCoordinates()
	}

	lengthToTheLeft, coordinatesToTheLeft := coordinatesAlongRoad(lhs.eid)

	// quit early if the road is not very long
	if lengthToTheLeft <= d.config.MinTraversedDistance {
		return false
	}

	lengthToTheRight, coordinatesToTheRight := coordinatesAlongRoad(rhs.eid)
	if lengthToTheRight <= d.config.MinTraversedDistance {
		return false
	}

	coordinatesToTheLeft = geo.SampleCoordinates(coordinatesToTheLeft,
		d.config.ExtractionDistance, d.config.SampledCoordinateCount)
	coordinatesToTheRight = geo.SampleCoordinates(coordinatesToTheRight,
		d.config.ExtractionDistance, d.config.SampledCoordinateCount)

	// near-junction geometry is noisy, keep the last two thirds only
	prune := func(coordinates []geo.Coordinate) []geo.Coordinate {
		util.AssertPanic(len(coordinates) >= 3, "pruning needs at least three coordinates")
		return coordinates[len(coordinates)/3:]
	}
	coordinatesToTheLeft = prune(coordinatesToTheLeft)
	coordinatesToTheRight = prune(coordinatesToTheRight)

	if !geo.AreParallel(coordinatesToTheLeft, coordinatesToTheRight,
		d.config.ParallelAngleTolerance) {
		return false
	}

	distanceBetweenRoads := geo.FindClosestDistance(
		coordinatesToTheLeft[len(coordinatesToTheLeft)/2], coordinatesToTheRight)

	lanes := func(eid datastructure.Index) float64 {
		return float64(util.Max(
			d.graph.GetEdgeData(eid).GetRoadClassification().GetNumberOfLanes(), 1))
	}
	combinedRoadWidth := 0.5 * (lanes(lhs.eid) + lanes(rhs.eid)) * d.config.AssumedLaneWidth
	return distanceBetweenRoads <= combinedRoadWidth+d.config.SameDirectionWidthMargin
}

/*
ConnectAgain. both roads reconverge onto the same decision node right
after the split. Two homogeneous degree-three junctions (all edges sharing
one name) are the classic short dual-carriageway split; a single one still
counts when the reconnection is nearly immediate.
*/
func (d *MergableRoadDetector) ConnectAgain(intersectionNode datastructure.Index,
	lhs, rhs MergableRoadData) bool {
	leftConnection := d.intersectionGenerator.SkipDegreeTwoNodes(intersectionNode, lhs.eid)
	rightConnection := d.intersectionGenerator.SkipDegreeTwoNodes(intersectionNode, rhs.eid)

	leftCandidate := d.graph.GetTarget(leftConnection.viaEid)
	rightCandidate := d.graph.GetTarget(rightConnection.viaEid)

	if leftCandidate != rightCandidate || leftCandidate == intersectionNode {
		return false
	}

	allSameNameAndDegreeThree := func(nid datastructure.Index) bool {
		if d.graph.GetOutDegree(nid) != 3 {
			return false
		}

		adjacent := d.graph.GetAdjacentEdges(nid)
		requiredNameID := d.graph.GetEdgeData(adjacent[0]).GetNameID()
		for _, eid := range adjacent {
			if d.graph.GetEdgeData(eid).GetNameID() != requiredNameID {
				return false
			}
		}
		return true
	}

	degreeThreeConnectIn := allSameNameAndDegreeThree(intersectionNode)
	degreeThreeConnectOut := allSameNameAndDegreeThree(leftCandidate)

	if !degreeThreeConnectIn && !degreeThreeConnectOut {
		return false
	}
	if degreeThreeConnectIn && degreeThreeConnectOut {
		return true
	}

	distanceBetweenCandidates := geo.HaversineDistanceM(
		d.graph.GetVertex(intersectionNode).GetCoordinate(),
		d.graph.GetVertex(leftCandidate).GetCoordinate())
	return distanceBetweenCandidates < d.config.MaxConnectAgainDistance
}

/*
IsLinkRoad. a connector feeding into a distinct through-road:

	     d
	     ^
	     |
	c -> b -> a
	     ^
	     e

looking along (e,b): the differently-named continuation (b,a) and its
near-opposite (b,c) form one coherent through-road, so (e,b) is a link.
*/
func (d *MergableRoadDetector) IsLinkRoad(intersectionNode datastructure.Index,
	road MergableRoadData) bool {
	nextIntersectionParameters := d.intersectionGenerator.SkipDegreeTwoNodes(intersectionNode, road.eid)
	nextIntersection := d.intersectionGenerator.GetConnectedRoads(
		nextIntersectionParameters.nid, nextIntersectionParameters.viaEid)

	requestedNameID := d.graph.GetEdgeData(road.eid).GetNameID()
	hasDifferentName := func(turn TurnRoad) bool {
		return d.graph.GetEdgeData(turn.eid).GetNameID() != requestedNameID
	}

	// we need a continuing road to successfully detect a link road
	nextRoadAlongPath, ok := nextIntersection.FindClosestTurn(STRAIGHT_ANGLE, hasDifferentName)
	if !ok {
		return false
	}

	oppositeOfNextRoad, ok := nextIntersection.FindClosestTurn(
		geo.RestrictAngleToValidRange(nextRoadAlongPath.angle + 180))
	util.AssertPanic(ok, "intersection along a road must not be empty")

	// we cannot be looking at the same road we came from
	if d.graph.GetTarget(oppositeOfNextRoad.eid) == nextIntersectionParameters.nid {
		return false
	}

	// check the opposite-road decision was sane; it could have been just
	// as well our incoming road
	if geo.AngularDeviation(
		geo.AngularDeviation(nextRoadAlongPath.angle, STRAIGHT_ANGLE),
		geo.AngularDeviation(oppositeOfNextRoad.angle, 0)) < d.config.FuzzyAngleDifference {
		return false
	}

	// near-straight road that continues through
	return geo.AngularDeviation(oppositeOfNextRoad.angle, nextRoadAlongPath.angle) >= d.config.MinLinkOpeningAngle &&
		d.RoadDataIsCompatible(d.graph.GetEdgeData(nextRoadAlongPath.eid),
			d.graph.GetEdgeData(oppositeOfNextRoad.eid))
}
