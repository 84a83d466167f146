package usecases

import (
	"context"
	"math"
	"testing"

	"github.com/bagaspn/navmerge/pkg"
	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/bagaspn/navmerge/pkg/guidance"
	"github.com/bagaspn/navmerge/pkg/spatialindex"
	"github.com/bagaspn/navmerge/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const metersPerDeg = math.Pi * 6371000.0 / 180.0

// dual carriageway north of a junction at the origin, plus an approach
// road from the south.
func dualCarriagewayService() (*MergeService, datastructure.Index,
	datastructure.Index, datastructure.Index) {
	g := datastructure.NewGraph()
	class := datastructure.NewRoadClassification(pkg.RESIDENTIAL, 1, false, false)

	addAt := func(x, y float64) datastructure.Index {
		return g.AddVertex(y/metersPerDeg, x/metersPerDeg)
	}
	connect := func(u, v datastructure.Index, oneway bool) (datastructure.Index, datastructure.Index) {
		return g.AddRoad(u, v, "Main St", pkg.TRAVEL_MODE_DRIVING, class, oneway)
	}

	n := addAt(0, 0)
	a := addAt(0, -50)
	l1, l2, l3 := addAt(-5, 30), addAt(-5, 60), addAt(-5, 110)
	r1, r2, r3 := addAt(5, 30), addAt(5, 60), addAt(5, 110)

	connect(a, n, false)
	lhsEid, _ := connect(n, l1, true)
	connect(l1, l2, true)
	connect(l2, l3, true)
	_, rhsEid := connect(r1, n, true)
	connect(r2, r1, true)
	connect(r3, r2, true)

	log := zap.NewNop()
	detector := guidance.NewMergableRoadDetector(g,
		guidance.NewIntersectionGenerator(g), guidance.DefaultDetectorConfig())
	scanner := guidance.NewMergeScanner(g, detector, log)
	index := spatialindex.NewRtree()
	index.Build(g, log)

	return NewMergeService(g, scanner, detector, index, log), n, lhsEid, rhsEid
}

func TestMergeCandidatesNear(t *testing.T) {
	service, n, _, _ := dualCarriagewayService()

	report, err := service.MergeCandidatesNear(context.Background(),
		20.0/metersPerDeg, 0, 1.0)
	require.NoError(t, err)

	assert.Equal(t, uint32(n), report.JunctionNode)
	require.Len(t, report.Candidates, 1)
	assert.Equal(t, "Main St", report.Candidates[0].Candidate.StreetName)
	assert.NotEmpty(t, report.Candidates[0].LhsGeometry)
	assert.NotEmpty(t, report.Candidates[0].RhsGeometry)
}

func TestMergeCandidatesNearNoJunction(t *testing.T) {
	service, _, _, _ := dualCarriagewayService()

	_, err := service.MergeCandidatesNear(context.Background(), 5.0, 5.0, 1.0)
	require.Error(t, err)

	var wrapped *util.Error
	require.ErrorAs(t, err, &wrapped)
	assert.Equal(t, util.ErrNotFound, wrapped.Code())
}

func TestCanMerge(t *testing.T) {
	service, n, lhsEid, rhsEid := dualCarriagewayService()

	decision, err := service.CanMerge(context.Background(),
		uint32(n), uint32(lhsEid), uint32(rhsEid))
	require.NoError(t, err)
	assert.True(t, decision.CanMerge)
	assert.Equal(t, "Main St", decision.StreetName)
}

func TestCanMergeRejectsForeignEdges(t *testing.T) {
	service, n, lhsEid, _ := dualCarriagewayService()

	// the second edge departs from a different node
	foreign := uint32(lhsEid + 1)
	_, err := service.CanMerge(context.Background(), uint32(n), uint32(lhsEid), foreign)
	require.Error(t, err)

	var wrapped *util.Error
	require.ErrorAs(t, err, &wrapped)
	assert.Equal(t, util.ErrBadParamInput, wrapped.Code())
}

func TestCanMergeUnknownNode(t *testing.T) {
	service, _, lhsEid, rhsEid := dualCarriagewayService()

	_, err := service.CanMerge(context.Background(), 9999, uint32(lhsEid), uint32(rhsEid))
	require.Error(t, err)

	var wrapped *util.Error
	require.ErrorAs(t, err, &wrapped)
	assert.Equal(t, util.ErrNotFound, wrapped.Code())
}
