package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/pkg/apperror"
	"initiative-discovery-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, validate: validate}
}

func (u *userUsecase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateProfile writes the profile fields of the given user. The ID
// must come from the authenticated context, never from the payload.
func (u *userUsecase) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := u.validate.Struct(user); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return nil, apperror.BadRequest(strings.Join(msgs, "; "))
	}

	current, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	current.FullName = user.FullName
	current.Bio = user.Bio
	current.Practice = user.Practice
	current.Skills = user.Skills
	current.Interests = user.Interests
	current.Industries = user.Industries
	current.Certifications = user.Certifications
	current.ExperienceYears = user.ExperienceYears
	current.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, current); err != nil {
		return nil, apperror.Internal(err)
	}
	return current, nil
}

func (u *userUsecase) List(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	users, total, err := u.userRepo.Fetch(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return users, total, nil
}

func (u *userUsecase) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	if actorID != id && actorRole != domain.RoleAdmin {
		return apperror.Forbidden("Not authorized to delete this account")
	}

	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
