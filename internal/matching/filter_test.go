package matching

import (
	"testing"

	"initiative-discovery-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fixtureInitiatives() []domain.Initiative {
	return []domain.Initiative{
		{
			ID:             1,
			Title:          "AI in Healthcare",
			Description:    "Apply machine learning to patient triage",
			PracticeArea:   "Technology",
			SkillsNeeded:   []string{"Python"},
			Industries:     []string{"Healthcare"},
			TimeCommitment: "5 hours/week",
			Status:         domain.StatusOpen,
		},
		{
			ID:             2,
			Title:          "Supply Chain Review",
			Description:    "Process mapping for retail logistics",
			PracticeArea:   "Strategy",
			SkillsNeeded:   []string{"Java"},
			Industries:     []string{"Retail"},
			TimeCommitment: "10 hours/week",
			Status:         domain.StatusClosed,
		},
		{
			ID:             3,
			Title:          "Cloud Migration",
			Description:    "Lift and shift a healthcare data platform",
			PracticeArea:   "Technology",
			SkillsNeeded:   []string{"Go", "Terraform"},
			Industries:     []string{"Healthcare", "Finance"},
			TimeCommitment: "5 hours/week",
			Status:         domain.StatusOpen,
		},
	}
}

func TestFilterNoCriteriaReturnsEverything(t *testing.T) {
	all := fixtureInitiatives()

	items, total := Filter(all, domain.SearchCriteria{})
	assert.Equal(t, len(all), total)
	assert.Len(t, items, len(all))
}

func TestFilterQueryIsCaseInsensitiveSubstring(t *testing.T) {
	all := fixtureInitiatives()

	// Matches title of #1 and description of #3.
	items, total := Filter(all, domain.SearchCriteria{Query: "healthcare"})
	assert.Equal(t, 2, total)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
}

func TestFilterSkillsMatchAny(t *testing.T) {
	all := fixtureInitiatives()

	items, total := Filter(all, domain.SearchCriteria{Skills: []string{"Python", "Rust"}})
	assert.Equal(t, 1, total)
	assert.Equal(t, int64(1), items[0].ID)

	_, total = Filter(all, domain.SearchCriteria{Skills: []string{"Rust"}})
	assert.Equal(t, 0, total)
}

func TestFilterEmptyListMeansNoFilter(t *testing.T) {
	all := fixtureInitiatives()

	_, total := Filter(all, domain.SearchCriteria{Skills: []string{}, Industries: []string{}})
	assert.Equal(t, len(all), total)
}

func TestFilterCriteriaCombineWithAnd(t *testing.T) {
	all := fixtureInitiatives()

	items, total := Filter(all, domain.SearchCriteria{
		PracticeArea:   "Technology",
		Industries:     []string{"Finance"},
		TimeCommitment: "5 hours/week",
	})
	assert.Equal(t, 1, total)
	assert.Equal(t, int64(3), items[0].ID)
}

func TestFilterStatus(t *testing.T) {
	all := fixtureInitiatives()

	items, total := Filter(all, domain.SearchCriteria{Status: domain.StatusClosed})
	assert.Equal(t, 1, total)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestFilterPagination(t *testing.T) {
	all := fixtureInitiatives()

	items, total := Filter(all, domain.SearchCriteria{Skip: 1, Limit: 1})
	assert.Equal(t, 3, total)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestFilterSkipBeyondTotal(t *testing.T) {
	all := fixtureInitiatives()

	items, total := Filter(all, domain.SearchCriteria{Skip: 50, Limit: 20})
	assert.Equal(t, 3, total)
	assert.Empty(t, items)
}

func TestFilterDefaultAndMaxLimit(t *testing.T) {
	var all []domain.Initiative
	for i := int64(1); i <= 150; i++ {
		all = append(all, domain.Initiative{ID: i, Title: "x", Description: "y"})
	}

	items, total := Filter(all, domain.SearchCriteria{})
	assert.Equal(t, 150, total)
	assert.Len(t, items, DefaultPageSize)

	items, _ = Filter(all, domain.SearchCriteria{Limit: 500})
	assert.Len(t, items, MaxPageSize)
}
