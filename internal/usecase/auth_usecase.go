package usecase

import (
	"context"
	"errors"
	"time"

	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/pkg/apperror"
	"initiative-discovery-backend/pkg/hash"
	"initiative-discovery-backend/pkg/token"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, email, password, fullName, role string) (*domain.User, error) {
	if role == "" {
		role = domain.RoleAnalyst
	}
	if role != domain.RoleAnalyst && role != domain.RoleLeader && role != domain.RoleAdmin {
		return nil, apperror.BadRequest("Invalid role. Allowed roles: analyst, leader, admin")
	}
	if len(password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	digest, err := hash.Password(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Email:        email,
		PasswordHash: digest,
		FullName:     fullName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("User with this email already exists")
		}
		return nil, apperror.Internal(err)
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	// A missing account and a wrong password must be
	// indistinguishable to the caller.
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.Unauthorized("Incorrect email or password")
		}
		return "", nil, apperror.Internal(err)
	}

	if !hash.Verify(password, user.PasswordHash) {
		return "", nil, apperror.Unauthorized("Incorrect email or password")
	}

	now := time.Now()
	if err := u.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, apperror.Internal(err)
	}
	user.LastLogin = &now

	signed, err := u.tokens.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return signed, user, nil
}
