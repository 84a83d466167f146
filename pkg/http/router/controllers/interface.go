package controllers

import (
	"context"

	"github.com/bagaspn/navmerge/pkg/http/usecases"
)

type MergeService interface {
	MergeCandidatesNear(ctx context.Context, lat, lon, radiusKm float64) (usecases.JunctionReport, error)
	CanMerge(ctx context.Context, node, lhs, rhs uint32) (usecases.MergeDecision, error)
}
