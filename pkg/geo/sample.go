package geo

import "github.com/bagaspn/navmerge/pkg/util"

/*
SampleCoordinates. resample a polyline to exactly count points placed at
equal spacing along targetLength meters of the line (linear referencing).
Sample positions past the accumulated length clamp to the final coordinate,
so a shorter input still yields count points.
*/
func SampleCoordinates(coords []Coordinate, targetLength float64, count int) []Coordinate {
	util.AssertPanic(len(coords) >= 2, "sampling needs at least two coordinates")
	util.AssertPanic(count >= 2, "sampling needs at least two output points")

	sampled := make([]Coordinate, 0, count)
	step := targetLength / float64(count-1)

	segment := 0
	segmentStart := 0.0 // distance from line start to coords[segment]
	segmentLength := HaversineDistanceM(coords[0], coords[1])

	for k := 0; k < count; k++ {
		position := float64(k) * step

		for position > segmentStart+segmentLength && segment+2 < len(coords) {
			segmentStart += segmentLength
			segment++
			segmentLength = HaversineDistanceM(coords[segment], coords[segment+1])
		}

		if segmentLength <= 0 {
			sampled = append(sampled, coords[segment])
			continue
		}

		frac := (position - segmentStart) / segmentLength
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		sampled = append(sampled, InterpolateCoordinate(coords[segment], coords[segment+1], frac))
	}

	return sampled
}
