package geo

import (
	"math"

	"github.com/bagaspn/navmerge/pkg/util"
)

/*
BearingTo. initial compass bearing of the edge (p1,p2) in [0,360).
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := util.DegreeToRadians(p2Lon - p1Lon)

	lat1 := util.DegreeToRadians(p1Lat)
	lat2 := util.DegreeToRadians(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)

	return brng
}

// RestrictAngleToValidRange. normalize an angle to [0,360).
func RestrictAngleToValidRange(angle float64) float64 {
	angle = math.Mod(angle, 360.0)
	if angle < 0 {
		angle += 360.0
	}
	return angle
}

// AngularDeviation. minimal circular difference of two angles, in [0,180].
func AngularDeviation(angle, from float64) float64 {
	d := math.Abs(RestrictAngleToValidRange(angle) - RestrictAngleToValidRange(from))
	if d > 180.0 {
		return 360.0 - d
	}
	return d
}

// ReverseBearing. the bearing pointing the opposite way.
func ReverseBearing(bearing float64) float64 {
	return RestrictAngleToValidRange(bearing + 180.0)
}

/*
TurnAngle. angle of a turn relative to the arrival direction:
0 = u-turn, 90 = right, 180 = straight on, 270 = left.
*/
func TurnAngle(arrivalBearing, departureBearing float64) float64 {
	return RestrictAngleToValidRange(ReverseBearing(arrivalBearing) - departureBearing)
}
