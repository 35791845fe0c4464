package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "initiative-discovery-backend/internal/delivery/http/v1"
	"initiative-discovery-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubInitiativeUC struct {
	lastCriteria domain.SearchCriteria
}

func (s *stubInitiativeUC) Create(ctx context.Context, ownerID int64, ini *domain.Initiative) error {
	return nil
}

func (s *stubInitiativeUC) GetDetails(ctx context.Context, id int64, viewerID int64) (*domain.Initiative, error) {
	return nil, domain.ErrNotFound
}

func (s *stubInitiativeUC) List(ctx context.Context, criteria domain.SearchCriteria) (*domain.InitiativeList, error) {
	s.lastCriteria = criteria
	return &domain.InitiativeList{}, nil
}

func (s *stubInitiativeUC) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.InitiativeList, error) {
	s.lastCriteria = criteria
	return &domain.InitiativeList{}, nil
}

func (s *stubInitiativeUC) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Initiative, error) {
	return nil, nil
}

func (s *stubInitiativeUC) Update(ctx context.Context, actorID int64, actorRole string, ini *domain.Initiative) (*domain.Initiative, error) {
	return nil, domain.ErrNotFound
}

func (s *stubInitiativeUC) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	return nil
}

// The status criterion belongs to the listing endpoint only; the
// search endpoint must not pick it up from the query string.
func TestStatusFilterScopedToListing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := &stubInitiativeUC{}
	r := gin.New()
	group := r.Group("/v1")
	v1.NewSearchHandler(group, uc)
	v1.NewInitiativeHandler(group, uc)

	t.Run("Search ignores status", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/search?q=cloud&status=closed", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cloud", uc.lastCriteria.Query)
		assert.Empty(t, uc.lastCriteria.Status)
	})

	t.Run("Listing honors status", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/initiatives?status=closed", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "closed", uc.lastCriteria.Status)
	})
}
