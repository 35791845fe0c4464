package usecase

import (
	"context"
	"errors"

	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/internal/matching"
	"initiative-discovery-backend/pkg/apperror"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

type recommendationUsecase struct {
	userRepo       domain.UserRepository
	initiativeRepo domain.InitiativeRepository
}

func NewRecommendationUsecase(
	userRepo domain.UserRepository,
	initiativeRepo domain.InitiativeRepository,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		userRepo:       userRepo,
		initiativeRepo: initiativeRepo,
	}
}

// ForUser ranks open initiatives for the given profile. It serves the
// self-serve endpoint and the leader/admin impersonation endpoint
// alike; who may call it with which userID is the handler's problem.
func (u *recommendationUsecase) ForUser(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error) {
	if limit < 1 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	// Only open initiatives are ever recommended.
	candidates, err := u.initiativeRepo.FetchByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return matching.Rank(user, candidates, limit), nil
}
