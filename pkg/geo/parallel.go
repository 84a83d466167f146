package geo

import (
	"math"

	"github.com/bagaspn/navmerge/pkg/util"
	"github.com/golang/geo/s2"
)

const metersPerDegree = math.Pi * earthRadiusKM * 1000.0 / 180.0

// local equirectangular projection around origin, in meters.
func projectLocal(origin, p Coordinate) (x, y float64) {
	x = (p.Lon - origin.Lon) * metersPerDegree * math.Cos(util.DegreeToRadians(origin.Lat))
	y = (p.Lat - origin.Lat) * metersPerDegree
	return x, y
}

/*
RegressionBearing. compass bearing of the least-squares regression line
through coords, oriented along the first-to-last displacement of the input.
*/
func RegressionBearing(coords []Coordinate) float64 {
	util.AssertPanic(len(coords) >= 2, "regression needs at least two coordinates")

	var sumX, sumY, sumXX, sumYY, sumXY float64
	n := float64(len(coords))
	for _, c := range coords {
		x, y := projectLocal(coords[0], c)
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}

	// direction of the fitted line: solve for the dominant axis so near
	// north-south lines stay numerically stable
	varX := sumXX - sumX*sumX/n
	varY := sumYY - sumY*sumY/n
	cov := sumXY - sumX*sumY/n

	var dx, dy float64
	if varX >= varY {
		dx, dy = varX, cov
	} else {
		dx, dy = cov, varY
	}

	lastX, lastY := projectLocal(coords[0], coords[len(coords)-1])
	if dx*lastX+dy*lastY < 0 {
		dx, dy = -dx, -dy
	}

	return RestrictAngleToValidRange(util.RadiansToDegree(math.Atan2(dx, dy)))
}

// AreParallel. two polylines run parallel when their regression-line
// bearings deviate by at most toleranceDeg (opposite orientation counts).
func AreParallel(lhs, rhs []Coordinate, toleranceDeg float64) bool {
	deviation := AngularDeviation(RegressionBearing(lhs), RegressionBearing(rhs))
	if deviation > 90 {
		deviation = 180 - deviation
	}
	return deviation <= toleranceDeg
}

// PointSegmentDistanceM. distance in meters from p to the closest point of
// the great-circle segment (a,b).
func PointSegmentDistanceM(p, a, b Coordinate) float64 {
	pS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))

	projection := s2.Project(pS2, aS2, bS2)
	projLatLng := s2.LatLngFromPoint(projection)
	return HaversineDistanceM(p, NewCoordinate(projLatLng.Lat.Degrees(), projLatLng.Lng.Degrees()))
}

// FindClosestDistance. minimum distance in meters from point to any segment
// of line.
func FindClosestDistance(point Coordinate, line []Coordinate) float64 {
	util.AssertPanic(len(line) >= 1, "closest distance needs a non-empty line")

	if len(line) == 1 {
		return HaversineDistanceM(point, line[0])
	}

	closest := math.Inf(1)
	for i := 1; i < len(line); i++ {
		d := PointSegmentDistanceM(point, line[i-1], line[i])
		if d < closest {
			closest = d
		}
	}
	return closest
}
