package controllers

type mergeCandidatesRequest struct {
	Lat      float64 `validate:"gte=-90,lte=90"`
	Lon      float64 `validate:"gte=-180,lte=180"`
	RadiusKm float64 `validate:"gt=0,lte=5"`
}

type canMergeRequest struct {
	Node int `validate:"gte=0"`
	Lhs  int `validate:"gte=0"`
	Rhs  int `validate:"gte=0"`
}

type candidateResponse struct {
	LhsEdge     uint32 `json:"lhs_edge"`
	RhsEdge     uint32 `json:"rhs_edge"`
	StreetName  string `json:"street_name"`
	LhsGeometry string `json:"lhs_geometry"`
	RhsGeometry string `json:"rhs_geometry"`
}

type mergeCandidatesResponse struct {
	JunctionNode uint32              `json:"junction_node"`
	Lat          float64             `json:"lat"`
	Lon          float64             `json:"lon"`
	Candidates   []candidateResponse `json:"candidates"`
}

type canMergeResponse struct {
	CanMerge   bool   `json:"can_merge"`
	StreetName string `json:"street_name"`
}

type errorResponse struct {
	Error interface{} `json:"error"`
}
