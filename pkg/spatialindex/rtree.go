package spatialindex

import (
	"math"

	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/bagaspn/navmerge/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. spatial index over junction nodes (more than two departing
// roads), so API queries can snap a coordinate to the nearest junction.
type Rtree struct {
	tr *rtree.RTreeG[datastructure.Index]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("building junction r-tree...")
	count := 0
	for nid := 0; nid < graph.NumberOfVertices(); nid++ {
		if graph.GetOutDegree(datastructure.Index(nid)) <= 2 {
			continue
		}
		lat, lon := graph.GetVertexCoordinates(datastructure.Index(nid))
		rt.tr.Insert([2]float64{lon, lat}, [2]float64{lon, lat}, datastructure.Index(nid))
		count++
	}
	log.Info("junction r-tree built", zap.Int("junctions", count))
}

// SearchWithinRadius. junction nodes within radius (km) of the query
// point, capped at maxResults.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64, maxResults int) []datastructure.Index {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]datastructure.Index, 0, maxResults)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data datastructure.Index) bool {
			results = append(results, data)
			return len(results) < maxResults
		})
	return results
}

// NearestJunction. junction closest to the query point within radius
// (km). ok is false when none is indexed there.
func (rt *Rtree) NearestJunction(graph *datastructure.Graph, qLat, qLon,
	radius float64) (datastructure.Index, bool) {
	candidates := rt.SearchWithinRadius(qLat, qLon, radius, 64)
	if len(candidates) == 0 {
		return datastructure.InvalidIndex, false
	}

	query := geo.NewCoordinate(qLat, qLon)
	best := candidates[0]
	bestDist := math.Inf(1)
	for _, nid := range candidates {
		d := geo.HaversineDistanceM(query, graph.GetVertex(nid).GetCoordinate())
		if d < bestDist {
			best, bestDist = nid, d
		}
	}
	return best, true
}
