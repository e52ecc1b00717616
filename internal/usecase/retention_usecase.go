package usecase

import "context"

// SweepResult counts what one retention sweep removed.
type SweepResult struct {
	ExpiredRefreshTokens int64
	PrunedProviderTokens int64
}

// RetentionUsecase removes expired sessions and superseded provider token records.
type RetentionUsecase interface {
	Sweep(ctx context.Context) (*SweepResult, error)
}
