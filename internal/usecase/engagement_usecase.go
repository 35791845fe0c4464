package usecase

import (
	"context"
	"errors"

	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/pkg/apperror"
)

type engagementUsecase struct {
	engagementRepo domain.EngagementRepository
	initiativeRepo domain.InitiativeRepository
}

func NewEngagementUsecase(
	engagementRepo domain.EngagementRepository,
	initiativeRepo domain.InitiativeRepository,
) domain.EngagementUsecase {
	return &engagementUsecase{
		engagementRepo: engagementRepo,
		initiativeRepo: initiativeRepo,
	}
}

func (u *engagementUsecase) Save(ctx context.Context, userID, initiativeID int64) error {
	if _, err := u.initiativeRepo.GetByID(ctx, initiativeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Initiative not found")
		}
		return apperror.Internal(err)
	}

	save := &domain.SavedInitiative{UserID: userID, InitiativeID: initiativeID}
	if err := u.engagementRepo.CreateSave(ctx, save); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return apperror.Conflict("Initiative already saved")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *engagementUsecase) Unsave(ctx context.Context, userID, initiativeID int64) error {
	if err := u.engagementRepo.DeleteSave(ctx, userID, initiativeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Saved initiative not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *engagementUsecase) ListSaved(ctx context.Context, userID int64) ([]domain.Initiative, error) {
	initiatives, err := u.engagementRepo.FetchSavedInitiatives(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return initiatives, nil
}

func (u *engagementUsecase) Apply(ctx context.Context, userID, initiativeID int64, message string) (*domain.InitiativeApplication, error) {
	if _, err := u.initiativeRepo.GetByID(ctx, initiativeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Initiative not found")
		}
		return nil, apperror.Internal(err)
	}

	app := &domain.InitiativeApplication{
		UserID:       userID,
		InitiativeID: initiativeID,
		Status:       domain.ApplicationStatusPending,
	}
	if message != "" {
		app.Message = &message
	}

	if err := u.engagementRepo.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Already applied to this initiative")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *engagementUsecase) MyApplications(ctx context.Context, userID int64) ([]domain.InitiativeApplication, error) {
	apps, err := u.engagementRepo.FetchApplicationsByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// InitiativeApplications lists the applications on an initiative for
// its owner (or an admin).
func (u *engagementUsecase) InitiativeApplications(ctx context.Context, actorID int64, actorRole string, initiativeID int64) ([]domain.InitiativeApplication, error) {
	ini, err := u.initiativeRepo.GetByID(ctx, initiativeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Initiative not found")
		}
		return nil, apperror.Internal(err)
	}

	if ini.OwnerID != actorID && actorRole != domain.RoleAdmin {
		return nil, apperror.Forbidden("Not authorized to view applications for this initiative")
	}

	apps, err := u.engagementRepo.FetchApplicationsByInitiative(ctx, initiativeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// SetApplicationStatus lets the initiative owner (or an admin) accept
// or reject a pending application.
func (u *engagementUsecase) SetApplicationStatus(ctx context.Context, actorID int64, actorRole string, applicationID int64, status string) error {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Invalid status. Must be: accepted or rejected")
	}

	app, err := u.engagementRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	ini, err := u.initiativeRepo.GetByID(ctx, app.InitiativeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Initiative not found")
		}
		return apperror.Internal(err)
	}
	if ini.OwnerID != actorID && actorRole != domain.RoleAdmin {
		return apperror.Forbidden("Not authorized to manage applications for this initiative")
	}

	if err := u.engagementRepo.UpdateApplicationStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
