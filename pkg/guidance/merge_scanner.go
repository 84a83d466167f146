package guidance

import (
	"context"
	"runtime"

	"github.com/bagaspn/navmerge/pkg/concurrent"
	"github.com/bagaspn/navmerge/pkg/datastructure"
	"go.uber.org/zap"
)

/*
MergeCandidate. one admissible pair of roads at a junction, as produced by
the whole-graph scan. The downstream merge step consumes these.
*/
type MergeCandidate struct {
	IntersectionNode datastructure.Index `json:"intersection_node"`
	LhsEid           datastructure.Index `json:"lhs_edge"`
	RhsEid           datastructure.Index `json:"rhs_edge"`
	StreetName       string              `json:"street_name"`
}

// MergeScanner. evaluates every departing-edge pair of every genuine
// junction through the detector. The detector is a pure function of the
// immutable graph, so junctions fan out across workers freely.
type MergeScanner struct {
	graph    *datastructure.Graph
	detector *MergableRoadDetector
	log      *zap.Logger
}

func NewMergeScanner(graph *datastructure.Graph, detector *MergableRoadDetector,
	log *zap.Logger) *MergeScanner {
	return &MergeScanner{
		graph:    graph,
		detector: detector,
		log:      log,
	}
}

// CandidatesAt. all admissible pairs among the roads departing nid.
func (s *MergeScanner) CandidatesAt(nid datastructure.Index) []MergeCandidate {
	roads := s.DepartingRoads(nid)

	var candidates []MergeCandidate
	for i := 0; i < len(roads); i++ {
		for j := i + 1; j < len(roads); j++ {
			if !s.detector.CanMergeRoad(nid, roads[i], roads[j]) {
				continue
			}
			nameID := s.graph.GetEdgeData(roads[i].GetEid()).GetNameID()
			candidates = append(candidates, MergeCandidate{
				IntersectionNode: nid,
				LhsEid:           roads[i].GetEid(),
				RhsEid:           roads[j].GetEid(),
				StreetName:       s.graph.GetStreetName(nameID),
			})
		}
	}
	return candidates
}

// DepartingRoads. the candidate road records of nid, bearings taken at
// the junction.
func (s *MergeScanner) DepartingRoads(nid datastructure.Index) []MergableRoadData {
	roads := make([]MergableRoadData, 0, s.graph.GetOutDegree(nid))
	s.graph.ForAdjacentEdgesOf(nid, func(eid datastructure.Index) {
		roads = append(roads, NewMergableRoadData(eid, s.graph.EdgeBearing(eid)))
	})
	return roads
}

// ScanJunctions. evaluate every junction (more than two departing roads)
// in parallel and collect all merge candidates.
func (s *MergeScanner) ScanJunctions(ctx context.Context) []MergeCandidate {
	numWorkers := runtime.NumCPU()

	junctions := make([]datastructure.Index, 0)
	for nid := 0; nid < s.graph.NumberOfVertices(); nid++ {
		if s.graph.GetOutDegree(datastructure.Index(nid)) > 2 {
			junctions = append(junctions, datastructure.Index(nid))
		}
	}
	s.log.Info("scanning junctions for mergable roads",
		zap.Int("junctions", len(junctions)), zap.Int("workers", numWorkers))

	pool := concurrent.NewWorkerPool[datastructure.Index, []MergeCandidate](
		numWorkers, len(junctions))
	pool.Start(ctx, s.CandidatesAt)
	for _, nid := range junctions {
		pool.AddJob(nid)
	}
	pool.Close()
	pool.Wait()

	var candidates []MergeCandidate
	for result := range pool.CollectResults() {
		candidates = append(candidates, result...)
	}

	s.log.Info("junction scan done", zap.Int("merge_candidates", len(candidates)))
	return candidates
}
