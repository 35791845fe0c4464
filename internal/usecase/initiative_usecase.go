package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/internal/matching"
	"initiative-discovery-backend/pkg/apperror"
	"initiative-discovery-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type initiativeUsecase struct {
	initiativeRepo domain.InitiativeRepository
	engagementRepo domain.EngagementRepository
	validate       *validator.Validate
}

func NewInitiativeUsecase(
	initiativeRepo domain.InitiativeRepository,
	engagementRepo domain.EngagementRepository,
	validate *validator.Validate,
) domain.InitiativeUsecase {
	return &initiativeUsecase{
		initiativeRepo: initiativeRepo,
		engagementRepo: engagementRepo,
		validate:       validate,
	}
}

func (u *initiativeUsecase) Create(ctx context.Context, ownerID int64, ini *domain.Initiative) error {
	if err := u.validate.Struct(ini); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return apperror.BadRequest(strings.Join(msgs, "; "))
	}

	if ini.Status == "" {
		ini.Status = domain.StatusOpen
	}
	if !domain.ValidStatus(ini.Status) {
		return apperror.BadRequest("Invalid status. Must be: open, active, full, or closed")
	}
	if ini.Duration == "" {
		ini.Duration = domain.DurationOngoing
	}
	if !domain.ValidDuration(ini.Duration) {
		return apperror.BadRequest("Invalid duration. Must be: short_term, ongoing, or fixed_duration")
	}

	ini.OwnerID = ownerID
	ini.CreatedAt = time.Now()
	ini.UpdatedAt = time.Now()

	if err := u.initiativeRepo.Create(ctx, ini); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetDetails fetches one initiative. A non-zero viewerID records a
// view; the counter bump rides the same transaction as the record.
func (u *initiativeUsecase) GetDetails(ctx context.Context, id int64, viewerID int64) (*domain.Initiative, error) {
	ini, err := u.initiativeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Initiative not found")
		}
		return nil, apperror.Internal(err)
	}

	if viewerID != 0 {
		view := &domain.InitiativeView{UserID: viewerID, InitiativeID: id}
		if err := u.engagementRepo.CreateView(ctx, view); err != nil {
			return nil, apperror.Internal(err)
		}
		ini.ViewCount++
	}

	return ini, nil
}

// List is the listing-endpoint variant of Search: same engine, with
// the status criterion available.
func (u *initiativeUsecase) List(ctx context.Context, criteria domain.SearchCriteria) (*domain.InitiativeList, error) {
	return u.Search(ctx, criteria)
}

func (u *initiativeUsecase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.InitiativeList, error) {
	if criteria.Status != "" && !domain.ValidStatus(criteria.Status) {
		return nil, apperror.BadRequest("Invalid status filter")
	}

	all, err := u.initiativeRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	items, total := matching.Filter(all, criteria)

	limit := criteria.Limit
	if limit <= 0 {
		limit = matching.DefaultPageSize
	}
	if limit > matching.MaxPageSize {
		limit = matching.MaxPageSize
	}
	skip := criteria.Skip
	if skip < 0 {
		skip = 0
	}

	return &domain.InitiativeList{
		Total:    total,
		Items:    items,
		Page:     skip/limit + 1,
		PageSize: limit,
	}, nil
}

func (u *initiativeUsecase) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Initiative, error) {
	initiatives, err := u.initiativeRepo.FetchByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return initiatives, nil
}

func (u *initiativeUsecase) Update(ctx context.Context, actorID int64, actorRole string, ini *domain.Initiative) (*domain.Initiative, error) {
	current, err := u.initiativeRepo.GetByID(ctx, ini.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Initiative not found")
		}
		return nil, apperror.Internal(err)
	}

	if current.OwnerID != actorID && actorRole != domain.RoleAdmin {
		return nil, apperror.Forbidden("Not authorized to update this initiative")
	}

	if err := u.validate.Struct(ini); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return nil, apperror.BadRequest(strings.Join(msgs, "; "))
	}
	if ini.Status != "" && !domain.ValidStatus(ini.Status) {
		return nil, apperror.BadRequest("Invalid status. Must be: open, active, full, or closed")
	}
	if ini.Duration != "" && !domain.ValidDuration(ini.Duration) {
		return nil, apperror.BadRequest("Invalid duration. Must be: short_term, ongoing, or fixed_duration")
	}

	current.Title = ini.Title
	current.Description = ini.Description
	current.PracticeArea = ini.PracticeArea
	current.SkillsNeeded = ini.SkillsNeeded
	current.Industries = ini.Industries
	current.Tags = ini.Tags
	current.TimeCommitment = ini.TimeCommitment
	if ini.Duration != "" {
		current.Duration = ini.Duration
	}
	current.DurationDetails = ini.DurationDetails
	current.RoleType = ini.RoleType
	current.ContactPerson = ini.ContactPerson
	current.ContactEmail = ini.ContactEmail
	if ini.Status != "" {
		current.Status = ini.Status
	}
	current.UpdatedAt = time.Now()

	if err := u.initiativeRepo.Update(ctx, current); err != nil {
		return nil, apperror.Internal(err)
	}
	return current, nil
}

func (u *initiativeUsecase) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	current, err := u.initiativeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Initiative not found")
		}
		return apperror.Internal(err)
	}

	if current.OwnerID != actorID && actorRole != domain.RoleAdmin {
		return apperror.Forbidden("Not authorized to delete this initiative")
	}

	if err := u.initiativeRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
