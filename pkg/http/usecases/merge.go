package usecases

import (
	"context"

	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/bagaspn/navmerge/pkg/guidance"
	"github.com/bagaspn/navmerge/pkg/spatialindex"
	"github.com/bagaspn/navmerge/pkg/util"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

// CandidateDetail. one merge candidate plus the encoded geometry of both
// departing edges, ready for rendering on a map.
type CandidateDetail struct {
	Candidate   guidance.MergeCandidate
	LhsGeometry string
	RhsGeometry string
}

// JunctionReport. merge candidates of the junction nearest to a queried
// coordinate.
type JunctionReport struct {
	JunctionNode uint32
	Lat          float64
	Lon          float64
	Candidates   []CandidateDetail
}

type MergeDecision struct {
	CanMerge   bool
	StreetName string
}

type MergeService struct {
	graph    *datastructure.Graph
	scanner  *guidance.MergeScanner
	detector *guidance.MergableRoadDetector
	index    *spatialindex.Rtree
	log      *zap.Logger
}

func NewMergeService(graph *datastructure.Graph, scanner *guidance.MergeScanner,
	detector *guidance.MergableRoadDetector, index *spatialindex.Rtree,
	log *zap.Logger) *MergeService {
	return &MergeService{
		graph:    graph,
		scanner:  scanner,
		detector: detector,
		index:    index,
		log:      log,
	}
}

// MergeCandidatesNear. snap (lat, lon) to the nearest junction within
// radiusKm and evaluate every departing-road pair there.
func (s *MergeService) MergeCandidatesNear(ctx context.Context, lat, lon,
	radiusKm float64) (JunctionReport, error) {
	nid, ok := s.index.NearestJunction(s.graph, lat, lon, radiusKm)
	if !ok {
		return JunctionReport{}, util.WrapErrorf(nil, util.ErrNotFound,
			"no junction within %.2f km of (%f, %f)", radiusKm, lat, lon)
	}

	jLat, jLon := s.graph.GetVertexCoordinates(nid)
	report := JunctionReport{
		JunctionNode: uint32(nid),
		Lat:          jLat,
		Lon:          jLon,
	}
	for _, cand := range s.scanner.CandidatesAt(nid) {
		report.Candidates = append(report.Candidates, CandidateDetail{
			Candidate:   cand,
			LhsGeometry: s.encodeEdgeGeometry(cand.LhsEid),
			RhsGeometry: s.encodeEdgeGeometry(cand.RhsEid),
		})
	}
	return report, nil
}

// CanMerge. evaluate one explicit pair of departing edges at node.
func (s *MergeService) CanMerge(ctx context.Context, node, lhs,
	rhs uint32) (MergeDecision, error) {
	nid := datastructure.Index(node)
	lhsEid, rhsEid := datastructure.Index(lhs), datastructure.Index(rhs)
	if int(node) >= s.graph.NumberOfVertices() {
		return MergeDecision{}, util.WrapErrorf(nil, util.ErrNotFound,
			"node %d is not in the graph", node)
	}
	if !s.departsFrom(nid, lhsEid) || !s.departsFrom(nid, rhsEid) {
		return MergeDecision{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"edges %d and %d must both depart from node %d", lhs, rhs, node)
	}

	lhsRoad := guidance.NewMergableRoadData(lhsEid, s.graph.EdgeBearing(lhsEid))
	rhsRoad := guidance.NewMergableRoadData(rhsEid, s.graph.EdgeBearing(rhsEid))
	decision := MergeDecision{
		CanMerge:   s.detector.CanMergeRoad(nid, lhsRoad, rhsRoad),
		StreetName: s.graph.GetStreetName(s.graph.GetEdgeData(lhsEid).GetNameID()),
	}
	return decision, nil
}

func (s *MergeService) departsFrom(nid, eid datastructure.Index) bool {
	if int(eid) >= s.graph.NumberOfEdges() {
		return false
	}
	return s.graph.GetTail(eid) == nid
}

func (s *MergeService) encodeEdgeGeometry(eid datastructure.Index) string {
	tailLat, tailLon := s.graph.GetVertexCoordinates(s.graph.GetTail(eid))
	headLat, headLon := s.graph.GetVertexCoordinates(s.graph.GetTarget(eid))
	coords := [][]float64{{tailLat, tailLon}, {headLat, headLon}}
	return string(polyline.EncodeCoords(coords))
}
