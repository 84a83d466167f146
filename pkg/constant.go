package pkg

// TravelMode. mode of transport an edge is usable with. merging two edges of
// different modes would hide valid choices from the user (e.g. a short
// stretch of pushing a bike), so the detector compares modes exactly.
type TravelMode uint8

const (
	TRAVEL_MODE_DRIVING TravelMode = iota
	TRAVEL_MODE_CYCLING
	TRAVEL_MODE_WALKING
	TRAVEL_MODE_INACCESSIBLE
)

type OsmHighwayType uint8

// enum for osm highway types relevant to car navigation: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	UNKNOWN        OsmHighwayType = 15
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	default:
		return UNKNOWN
	}
}

// IsLinkHighway. *_link highways are connectors/ramps between two distinct
// roads, never a cartographic split of one road.
func IsLinkHighway(hw OsmHighwayType) bool {
	switch hw {
	case MOTORWAY_LINK, TRUNK_LINK, PRIMARY_LINK, SECONDARY_LINK, TERTIARY_LINK:
		return true
	default:
		return false
	}
}

// DefaultLanes. lane count assumed when the osm way carries no lanes tag.
func DefaultLanes(hw OsmHighwayType) uint8 {
	switch hw {
	case MOTORWAY, TRUNK:
		return 2
	default:
		return 1
	}
}

const (
	DEBUG = false
)
