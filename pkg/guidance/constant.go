package guidance

const (
	// turn geometry
	STRAIGHT_ANGLE         = 180.0
	NARROW_TURN_ANGLE      = 40.0
	FUZZY_ANGLE_DIFFERENCE = 15.0

	// assumed physical width per lane, in meters
	ASSUMED_LANE_WIDTH = 3.25

	// merge detector defaults
	MAX_BEARING_DEVIATION       = 95.0
	MAX_TRIANGLE_CORNER_METER   = 80.0
	TRIANGLE_WIDTH_MARGIN_METER = 10.0
	EXTRACTION_DISTANCE_METER   = 100.0
	MIN_TRAVERSED_METER         = 40.0
	SAME_DIRECTION_MARGIN_METER = 8.0
	MAX_CONNECT_AGAIN_METER     = 15.0
	MIN_LINK_OPENING_ANGLE      = 160.0
	PARALLEL_ANGLE_TOLERANCE    = 20.0
	INTERSECTION_HOP_LIMIT      = 5
	SAMPLED_COORDINATE_COUNT    = 5

	// hard cap on pass-through chain skipping, guards degenerate
	// degree-two cycles
	MAX_SKIP_DEGREE_TWO_HOPS = 1024
)
