package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bagaspn/navmerge/pkg/http/usecases"
	"github.com/bagaspn/navmerge/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMergeService struct {
	report   usecases.JunctionReport
	decision usecases.MergeDecision
	err      error
}

func (s *stubMergeService) MergeCandidatesNear(_ context.Context, _, _, _ float64) (usecases.JunctionReport, error) {
	return s.report, s.err
}

func (s *stubMergeService) CanMerge(_ context.Context, _, _, _ uint32) (usecases.MergeDecision, error) {
	return s.decision, s.err
}

func TestCanMergeEndpoint(t *testing.T) {
	service := &stubMergeService{
		decision: usecases.MergeDecision{CanMerge: true, StreetName: "Main St"},
	}
	handler := NewMergeHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/navmerge/canMerge?node=4&lhs=10&rhs=11", nil)
	rec := httptest.NewRecorder()
	handler.canMerge(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data canMergeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.CanMerge)
	assert.Equal(t, "Main St", body.Data.StreetName)
}

func TestCanMergeEndpointRejectsBadParams(t *testing.T) {
	handler := NewMergeHandler(&stubMergeService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/navmerge/canMerge?node=abc&lhs=1&rhs=2", nil)
	rec := httptest.NewRecorder()
	handler.canMerge(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMergeCandidatesEndpoint(t *testing.T) {
	service := &stubMergeService{
		report: usecases.JunctionReport{
			JunctionNode: 7,
			Lat:          52.52,
			Lon:          13.40,
			Candidates: []usecases.CandidateDetail{{
				LhsGeometry: "_p~iF~ps|U",
				RhsGeometry: "_ulLnnqC",
			}},
		},
	}
	handler := NewMergeHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/navmerge/mergeCandidates?lat=52.52&lon=13.40&radius=0.5", nil)
	rec := httptest.NewRecorder()
	handler.mergeCandidates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data mergeCandidatesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint32(7), body.Data.JunctionNode)
	require.Len(t, body.Data.Candidates, 1)
	assert.Equal(t, "_p~iF~ps|U", body.Data.Candidates[0].LhsGeometry)
}

func TestMergeCandidatesEndpointValidatesCoordinates(t *testing.T) {
	handler := NewMergeHandler(&stubMergeService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/navmerge/mergeCandidates?lat=123.0&lon=13.40", nil)
	rec := httptest.NewRecorder()
	handler.mergeCandidates(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMergeCandidatesEndpointNotFound(t *testing.T) {
	service := &stubMergeService{
		err: util.WrapErrorf(nil, util.ErrNotFound, "no junction nearby"),
	}
	handler := NewMergeHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/navmerge/mergeCandidates?lat=52.52&lon=13.40", nil)
	rec := httptest.NewRecorder()
	handler.mergeCandidates(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
