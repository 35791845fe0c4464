package domain

import "context"

// Recommendation pairs an initiative with its relevance score and a
// human-readable explanation of why it was recommended.
type Recommendation struct {
	Initiative  Initiative `json:"initiative"`
	Score       float64    `json:"score"`
	Explanation string     `json:"explanation"`
}

// RecommendationUsecase ranks open initiatives for a profile. Both
// the self-serve path and the leader/admin impersonation path go
// through the same ForUser call.
type RecommendationUsecase interface {
	ForUser(ctx context.Context, userID int64, limit int) ([]Recommendation, error)
}
