package datastructure

import (
	"github.com/bagaspn/navmerge/pkg"
)

/*
RoadClassification. classification of a road edge: highway class, lane
count, roundabout membership and link/ramp flag. Value type with exact
equality; the merge detector only pairs edges of identical classification.
*/
type RoadClassification struct {
	highwayType   pkg.OsmHighwayType
	numberOfLanes uint8
	roundabout    bool
	link          bool
}

func NewRoadClassification(highwayType pkg.OsmHighwayType, numberOfLanes uint8,
	roundabout, link bool) RoadClassification {
	return RoadClassification{
		highwayType:   highwayType,
		numberOfLanes: numberOfLanes,
		roundabout:    roundabout,
		link:          link,
	}
}

func (rc RoadClassification) GetHighwayType() pkg.OsmHighwayType {
	return rc.highwayType
}

func (rc RoadClassification) GetNumberOfLanes() uint8 {
	return rc.numberOfLanes
}

func (rc RoadClassification) IsRoundabout() bool {
	return rc.roundabout
}

func (rc RoadClassification) IsLink() bool {
	return rc.link
}

func (rc RoadClassification) Equal(other RoadClassification) bool {
	return rc == other
}
