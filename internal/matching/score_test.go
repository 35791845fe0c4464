package matching

import (
	"testing"

	"initiative-discovery-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestScoreNoOverlap(t *testing.T) {
	user := &domain.User{Practice: "Strategy"}
	ini := &domain.Initiative{PracticeArea: "Technology"}

	score, explanation := Score(user, ini)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, fallbackExplanation, explanation)
}

func TestScoreWorkedExample(t *testing.T) {
	// Skill overlap {Python} and practice match should land on
	// exactly 0.3 + 0.3 = 0.6.
	user := &domain.User{
		Skills:   []string{"Python", "SQL"},
		Practice: "Strategy",
	}
	ini := &domain.Initiative{
		SkillsNeeded: []string{"Python"},
		PracticeArea: "Strategy",
	}

	score, explanation := Score(user, ini)
	assert.InDelta(t, 0.6, score, 1e-9)
	assert.Contains(t, explanation, "Python")
	assert.Contains(t, explanation, "Strategy")
}

func TestScoreTagOrderIndependent(t *testing.T) {
	ini := &domain.Initiative{
		SkillsNeeded: []string{"Go", "Python", "SQL"},
		Tags:         []string{"AI", "Cloud"},
		Industries:   []string{"Healthcare"},
		PracticeArea: "Technology",
	}
	a := &domain.User{
		Skills:     []string{"Python", "Go"},
		Interests:  []string{"Cloud", "AI"},
		Industries: []string{"Healthcare"},
		Practice:   "Technology",
	}
	b := &domain.User{
		Skills:     []string{"Go", "Python"},
		Interests:  []string{"AI", "Cloud"},
		Industries: []string{"Healthcare"},
		Practice:   "Technology",
	}

	scoreA, explA := Score(a, ini)
	scoreB, explB := Score(b, ini)
	assert.Equal(t, scoreA, scoreB)
	assert.Equal(t, explA, explB)
}

func TestScoreClampsAtOne(t *testing.T) {
	// 4 skills + 2 interests + 2 industries + practice =
	// 1.2 + 0.4 + 0.4 + 0.3 before clamping.
	user := &domain.User{
		Skills:     []string{"Go", "Python", "SQL", "Rust"},
		Interests:  []string{"AI", "Cloud"},
		Industries: []string{"Healthcare", "Finance"},
		Practice:   "Technology",
	}
	ini := &domain.Initiative{
		SkillsNeeded: []string{"Go", "Python", "SQL", "Rust"},
		Tags:         []string{"AI", "Cloud"},
		Industries:   []string{"Healthcare", "Finance"},
		PracticeArea: "Technology",
	}

	score, _ := Score(user, ini)
	assert.Equal(t, 1.0, score)
}

func TestScoreEmptyPracticeNeverMatches(t *testing.T) {
	user := &domain.User{}
	ini := &domain.Initiative{}

	score, _ := Score(user, ini)
	assert.Equal(t, 0.0, score)
}

func TestScoreExplanationClauseOrder(t *testing.T) {
	user := &domain.User{
		Skills:     []string{"Go"},
		Interests:  []string{"AI"},
		Industries: []string{"Finance"},
		Practice:   "Risk",
	}
	ini := &domain.Initiative{
		SkillsNeeded: []string{"Go"},
		Tags:         []string{"AI"},
		Industries:   []string{"Finance"},
		PracticeArea: "Risk",
	}

	_, explanation := Score(user, ini)
	assert.Equal(t,
		"Matched skills: Go; Aligned with interests: AI; Industry match: Finance; Same practice area: Risk",
		explanation)
}

func TestRankExcludesZeroScores(t *testing.T) {
	user := &domain.User{Skills: []string{"Go"}}
	initiatives := []domain.Initiative{
		{ID: 1, SkillsNeeded: []string{"Go"}},
		{ID: 2, SkillsNeeded: []string{"Cobol"}},
	}

	recs := Rank(user, initiatives, 10)
	assert.Len(t, recs, 1)
	assert.Equal(t, int64(1), recs[0].Initiative.ID)
}

func TestRankSortsDescendingWithStableTieBreak(t *testing.T) {
	user := &domain.User{
		Skills:   []string{"Go", "Python"},
		Practice: "Technology",
	}
	initiatives := []domain.Initiative{
		{ID: 3, SkillsNeeded: []string{"Go"}},                                 // 0.3
		{ID: 1, SkillsNeeded: []string{"Go", "Python"}},                       // 0.6
		{ID: 2, SkillsNeeded: []string{"Python"}},                             // 0.3
		{ID: 4, SkillsNeeded: []string{"Go"}, PracticeArea: "Technology"},     // 0.6
	}

	recs := Rank(user, initiatives, 10)
	ids := make([]int64, 0, len(recs))
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
		ids = append(ids, r.Initiative.ID)
	}
	// 0.6 scores first (IDs 1 then 4), then the 0.3 pair (2 then 3).
	assert.Equal(t, []int64{1, 4, 2, 3}, ids)
}

func TestRankHonorsLimit(t *testing.T) {
	user := &domain.User{Skills: []string{"Go"}}
	var initiatives []domain.Initiative
	for i := int64(1); i <= 5; i++ {
		initiatives = append(initiatives, domain.Initiative{ID: i, SkillsNeeded: []string{"Go"}})
	}

	recs := Rank(user, initiatives, 3)
	assert.Len(t, recs, 3)
}
