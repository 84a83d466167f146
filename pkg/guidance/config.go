package guidance

import "github.com/spf13/viper"

/*
DetectorConfig. every tuned threshold of the merge detector, passed at
construction so tests can vary them deterministically. Distances in
meters, angles in degrees.
*/
type DetectorConfig struct {
	MaxBearingDeviation       float64
	NarrowTurnAngle           float64
	FuzzyAngleDifference      float64
	AssumedLaneWidth          float64
	MaxTriangleCornerDistance float64
	TriangleWidthMargin       float64
	ExtractionDistance        float64
	MinTraversedDistance      float64
	SameDirectionWidthMargin  float64
	MaxConnectAgainDistance   float64
	MinLinkOpeningAngle       float64
	ParallelAngleTolerance    float64
	IntersectionHopLimit      int
	SampledCoordinateCount    int
}

func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MaxBearingDeviation:       MAX_BEARING_DEVIATION,
		NarrowTurnAngle:           NARROW_TURN_ANGLE,
		FuzzyAngleDifference:      FUZZY_ANGLE_DIFFERENCE,
		AssumedLaneWidth:          ASSUMED_LANE_WIDTH,
		MaxTriangleCornerDistance: MAX_TRIANGLE_CORNER_METER,
		TriangleWidthMargin:       TRIANGLE_WIDTH_MARGIN_METER,
		ExtractionDistance:        EXTRACTION_DISTANCE_METER,
		MinTraversedDistance:      MIN_TRAVERSED_METER,
		SameDirectionWidthMargin:  SAME_DIRECTION_MARGIN_METER,
		MaxConnectAgainDistance:   MAX_CONNECT_AGAIN_METER,
		MinLinkOpeningAngle:       MIN_LINK_OPENING_ANGLE,
		ParallelAngleTolerance:    PARALLEL_ANGLE_TOLERANCE,
		IntersectionHopLimit:      INTERSECTION_HOP_LIMIT,
		SampledCoordinateCount:    SAMPLED_COORDINATE_COUNT,
	}
}

// DetectorConfigFromViper. defaults overridable from data/config.yaml
// under the detector.* keys.
func DetectorConfigFromViper() DetectorConfig {
	def := DefaultDetectorConfig()

	viper.SetDefault("DETECTOR_MAX_BEARING_DEVIATION", def.MaxBearingDeviation)
	viper.SetDefault("DETECTOR_NARROW_TURN_ANGLE", def.NarrowTurnAngle)
	viper.SetDefault("DETECTOR_FUZZY_ANGLE_DIFFERENCE", def.FuzzyAngleDifference)
	viper.SetDefault("DETECTOR_ASSUMED_LANE_WIDTH", def.AssumedLaneWidth)
	viper.SetDefault("DETECTOR_MAX_TRIANGLE_CORNER_DISTANCE", def.MaxTriangleCornerDistance)
	viper.SetDefault("DETECTOR_TRIANGLE_WIDTH_MARGIN", def.TriangleWidthMargin)
	viper.SetDefault("DETECTOR_EXTRACTION_DISTANCE", def.ExtractionDistance)
	viper.SetDefault("DETECTOR_MIN_TRAVERSED_DISTANCE", def.MinTraversedDistance)
	viper.SetDefault("DETECTOR_SAME_DIRECTION_WIDTH_MARGIN", def.SameDirectionWidthMargin)
	viper.SetDefault("DETECTOR_MAX_CONNECT_AGAIN_DISTANCE", def.MaxConnectAgainDistance)
	viper.SetDefault("DETECTOR_MIN_LINK_OPENING_ANGLE", def.MinLinkOpeningAngle)
	viper.SetDefault("DETECTOR_PARALLEL_ANGLE_TOLERANCE", def.ParallelAngleTolerance)
	viper.SetDefault("DETECTOR_INTERSECTION_HOP_LIMIT", def.IntersectionHopLimit)
	viper.SetDefault("DETECTOR_SAMPLED_COORDINATE_COUNT", def.SampledCoordinateCount)

	return DetectorConfig{
		MaxBearingDeviation:       viper.GetFloat64("DETECTOR_MAX_BEARING_DEVIATION"),
		NarrowTurnAngle:           viper.GetFloat64("DETECTOR_NARROW_TURN_ANGLE"),
		FuzzyAngleDifference:      viper.GetFloat64("DETECTOR_FUZZY_ANGLE_DIFFERENCE"),
		AssumedLaneWidth:          viper.GetFloat64("DETECTOR_ASSUMED_LANE_WIDTH"),
		MaxTriangleCornerDistance: viper.GetFloat64("DETECTOR_MAX_TRIANGLE_CORNER_DISTANCE"),
		TriangleWidthMargin:       viper.GetFloat64("DETECTOR_TRIANGLE_WIDTH_MARGIN"),
		ExtractionDistance:        viper.GetFloat64("DETECTOR_EXTRACTION_DISTANCE"),
		MinTraversedDistance:      viper.GetFloat64("DETECTOR_MIN_TRAVERSED_DISTANCE"),
		SameDirectionWidthMargin:  viper.GetFloat64("DETECTOR_SAME_DIRECTION_WIDTH_MARGIN"),
		MaxConnectAgainDistance:   viper.GetFloat64("DETECTOR_MAX_CONNECT_AGAIN_DISTANCE"),
		MinLinkOpeningAngle:       viper.GetFloat64("DETECTOR_MIN_LINK_OPENING_ANGLE"),
		ParallelAngleTolerance:    viper.GetFloat64("DETECTOR_PARALLEL_ANGLE_TOLERANCE"),
		IntersectionHopLimit:      viper.GetInt("DETECTOR_INTERSECTION_HOP_LIMIT"),
		SampledCoordinateCount:    viper.GetInt("DETECTOR_SAMPLED_COORDINATE_COUNT"),
	}
}
