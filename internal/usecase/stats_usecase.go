package usecase

import "context"

// StatsUsecase exposes the read-only platform aggregates.
type StatsUsecase interface {
	// GetStats never fails on empty data; every aggregate defaults to zero.
	GetStats(ctx context.Context) (*StatsView, error)
}
