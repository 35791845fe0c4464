package usecase_test

import (
	"context"
	"testing"
	"time"

	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/internal/usecase"
	"initiative-discovery-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInitiativeRepo struct {
	mock.Mock
}

func (m *MockInitiativeRepo) Create(ctx context.Context, ini *domain.Initiative) error {
	return m.Called(ctx, ini).Error(0)
}
func (m *MockInitiativeRepo) GetByID(ctx context.Context, id int64) (*domain.Initiative, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Initiative), args.Error(1)
}
func (m *MockInitiativeRepo) FetchAll(ctx context.Context) ([]domain.Initiative, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Initiative), args.Error(1)
}
func (m *MockInitiativeRepo) FetchByStatus(ctx context.Context, status string) ([]domain.Initiative, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Initiative), args.Error(1)
}
func (m *MockInitiativeRepo) FetchByOwner(ctx context.Context, ownerID int64) ([]domain.Initiative, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Initiative), args.Error(1)
}
func (m *MockInitiativeRepo) Update(ctx context.Context, ini *domain.Initiative) error {
	return m.Called(ctx, ini).Error(0)
}
func (m *MockInitiativeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEngagementRepo struct {
	mock.Mock
}

func (m *MockEngagementRepo) CreateSave(ctx context.Context, save *domain.SavedInitiative) error {
	return m.Called(ctx, save).Error(0)
}
func (m *MockEngagementRepo) DeleteSave(ctx context.Context, userID, initiativeID int64) error {
	return m.Called(ctx, userID, initiativeID).Error(0)
}
func (m *MockEngagementRepo) FetchSavedInitiatives(ctx context.Context, userID int64) ([]domain.Initiative, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Initiative), args.Error(1)
}
func (m *MockEngagementRepo) CreateApplication(ctx context.Context, app *domain.InitiativeApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockEngagementRepo) GetApplicationByID(ctx context.Context, id int64) (*domain.InitiativeApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InitiativeApplication), args.Error(1)
}
func (m *MockEngagementRepo) FetchApplicationsByUser(ctx context.Context, userID int64) ([]domain.InitiativeApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InitiativeApplication), args.Error(1)
}
func (m *MockEngagementRepo) FetchApplicationsByInitiative(ctx context.Context, initiativeID int64) ([]domain.InitiativeApplication, error) {
	args := m.Called(ctx, initiativeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InitiativeApplication), args.Error(1)
}
func (m *MockEngagementRepo) UpdateApplicationStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockEngagementRepo) CreateView(ctx context.Context, view *domain.InitiativeView) error {
	return m.Called(ctx, view).Error(0)
}

func testTokens() *token.Manager {
	return token.NewManager("test-secret", time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testTokens())

	t.Run("Should reject unknown role", func(t *testing.T) {
		_, err := uc.Register(context.Background(), "a@b.com", "password123", "A B", "superuser")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid role")
	})

	t.Run("Should reject short password", func(t *testing.T) {
		_, err := uc.Register(context.Background(), "a@b.com", "short", "A B", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("Should default empty role to analyst", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleAnalyst
		})).Return(nil).Once()

		user, err := uc.Register(context.Background(), "a@b.com", "password123", "A B", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAnalyst, user.Role)
		mockRepo.AssertExpectations(t)
	})
}

func TestLoginFailures(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testTokens())

	t.Run("Unknown email and wrong password produce the same message", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "ghost@b.com").Return(nil, domain.ErrNotFound).Once()

		_, _, err := uc.Login(context.Background(), "ghost@b.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect email or password")

		// Real account, wrong password.
		mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
			ID:           1,
			Email:        "a@b.com",
			PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0a9Cn0JFzH7Jc0wYB7p0QnYxGMK", // not "wrong"
		}, nil).Once()

		_, _, err = uc.Login(context.Background(), "a@b.com", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect email or password")
	})
}

func TestSaveInitiative(t *testing.T) {
	t.Run("Duplicate save maps to conflict", func(t *testing.T) {
		mockEng := new(MockEngagementRepo)
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewEngagementUsecase(mockEng, mockIni)

		mockIni.On("GetByID", mock.Anything, int64(7)).Return(&domain.Initiative{ID: 7}, nil)
		mockEng.On("CreateSave", mock.Anything, mock.Anything).Return(domain.ErrConflict)

		err := uc.Save(context.Background(), 1, 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already saved")
	})

	t.Run("Saving a missing initiative is not found", func(t *testing.T) {
		mockEng := new(MockEngagementRepo)
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewEngagementUsecase(mockEng, mockIni)

		mockIni.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.Save(context.Background(), 1, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Initiative not found")
		mockEng.AssertNotCalled(t, "CreateSave", mock.Anything, mock.Anything)
	})
}

func TestInitiativeOwnership(t *testing.T) {
	validate := validator.New()

	t.Run("Non-owner cannot update", func(t *testing.T) {
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewInitiativeUsecase(mockIni, new(MockEngagementRepo), validate)

		mockIni.On("GetByID", mock.Anything, int64(3)).Return(&domain.Initiative{ID: 3, OwnerID: 10}, nil)

		_, err := uc.Update(context.Background(), 11, domain.RoleLeader, &domain.Initiative{ID: 3, Title: "t", Description: "d"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Not authorized to update")
		mockIni.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Admin can delete someone else's initiative", func(t *testing.T) {
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewInitiativeUsecase(mockIni, new(MockEngagementRepo), validate)

		mockIni.On("GetByID", mock.Anything, int64(3)).Return(&domain.Initiative{ID: 3, OwnerID: 10}, nil)
		mockIni.On("Delete", mock.Anything, int64(3)).Return(nil)

		err := uc.Delete(context.Background(), 99, domain.RoleAdmin, 3)
		assert.NoError(t, err)
		mockIni.AssertExpectations(t)
	})

	t.Run("Analyst cannot delete another user's account", func(t *testing.T) {
		mockUser := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockUser, validate)

		err := uc.Delete(context.Background(), 11, domain.RoleAnalyst, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Not authorized")
		mockUser.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Non-owner cannot list applications", func(t *testing.T) {
		mockEng := new(MockEngagementRepo)
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewEngagementUsecase(mockEng, mockIni)

		mockIni.On("GetByID", mock.Anything, int64(3)).Return(&domain.Initiative{ID: 3, OwnerID: 10}, nil)

		_, err := uc.InitiativeApplications(context.Background(), 11, domain.RoleLeader, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Not authorized")
	})
}

func TestSetApplicationStatus(t *testing.T) {
	t.Run("Rejects statuses other than accepted or rejected", func(t *testing.T) {
		uc := usecase.NewEngagementUsecase(new(MockEngagementRepo), new(MockInitiativeRepo))

		err := uc.SetApplicationStatus(context.Background(), 1, domain.RoleAdmin, 5, "pending")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "accepted or rejected")
	})

	t.Run("Owner can accept an application", func(t *testing.T) {
		mockEng := new(MockEngagementRepo)
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewEngagementUsecase(mockEng, mockIni)

		mockEng.On("GetApplicationByID", mock.Anything, int64(5)).Return(&domain.InitiativeApplication{ID: 5, InitiativeID: 3}, nil)
		mockIni.On("GetByID", mock.Anything, int64(3)).Return(&domain.Initiative{ID: 3, OwnerID: 10}, nil)
		mockEng.On("UpdateApplicationStatus", mock.Anything, int64(5), domain.ApplicationStatusAccepted).Return(nil)

		err := uc.SetApplicationStatus(context.Background(), 10, domain.RoleLeader, 5, domain.ApplicationStatusAccepted)
		assert.NoError(t, err)
		mockEng.AssertExpectations(t)
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("Only open initiatives are considered and zero scores drop out", func(t *testing.T) {
		mockUser := new(MockUserRepo)
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewRecommendationUsecase(mockUser, mockIni)

		mockUser.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
			ID:     1,
			Skills: []string{"Python"},
		}, nil)
		mockIni.On("FetchByStatus", mock.Anything, domain.StatusOpen).Return([]domain.Initiative{
			{ID: 1, Status: domain.StatusOpen, SkillsNeeded: []string{"Python"}},
			{ID: 2, Status: domain.StatusOpen, SkillsNeeded: []string{"Excel"}},
		}, nil)

		recs, err := uc.ForUser(context.Background(), 1, 0)
		assert.NoError(t, err)
		assert.Len(t, recs, 1)
		assert.Equal(t, int64(1), recs[0].Initiative.ID)
		assert.Contains(t, recs[0].Explanation, "Matched skills: Python")
	})

	t.Run("Unknown user is not found", func(t *testing.T) {
		mockUser := new(MockUserRepo)
		mockIni := new(MockInitiativeRepo)
		uc := usecase.NewRecommendationUsecase(mockUser, mockIni)

		mockUser.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.ForUser(context.Background(), 404, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})
}

func TestSearchStatusFilter(t *testing.T) {
	validate := validator.New()
	mockIni := new(MockInitiativeRepo)
	uc := usecase.NewInitiativeUsecase(mockIni, new(MockEngagementRepo), validate)

	t.Run("Invalid status filter is a bad request", func(t *testing.T) {
		_, err := uc.Search(context.Background(), domain.SearchCriteria{Status: "archived"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status filter")
		mockIni.AssertNotCalled(t, "FetchAll", mock.Anything)
	})

	t.Run("Total counts all matches, not just the returned page", func(t *testing.T) {
		all := make([]domain.Initiative, 0, 30)
		for i := 1; i <= 30; i++ {
			all = append(all, domain.Initiative{ID: int64(i), Status: domain.StatusOpen})
		}
		mockIni.On("FetchAll", mock.Anything).Return(all, nil)

		list, err := uc.Search(context.Background(), domain.SearchCriteria{Skip: 0, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, 30, list.Total)
		assert.Len(t, list.Items, 10)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 10, list.PageSize)
	})
}
