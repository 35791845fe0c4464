// Package matching holds the two pure engines behind recommendations
// and search: a weighted set-intersection scorer and a predicate
// filter. Both are side-effect-free functions over snapshot data; the
// usecase layer materializes the inputs and owns persistence.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"initiative-discovery-backend/internal/domain"
)

// Scoring weights. Additive and deliberately not normalized by set
// size; the final score is capped at 1.0.
const (
	weightSkill    = 0.3
	weightInterest = 0.2
	weightIndustry = 0.2
	weightPractice = 0.3
)

// fallbackExplanation is unreachable through Rank (zero-score results
// are dropped) but keeps Score total on its own.
const fallbackExplanation = "General match based on profile"

// Score computes the relevance of an initiative for a user profile.
// The result is in [0, 1] together with an explanation built from the
// clauses that fired, joined by "; " in a fixed order. Overlap lists
// inside a clause are sorted so identical inputs always produce an
// identical explanation regardless of stored tag order.
func Score(user *domain.User, ini *domain.Initiative) (float64, string) {
	var score float64
	var clauses []string

	if overlap := intersect(user.Skills, ini.SkillsNeeded); len(overlap) > 0 {
		score += weightSkill * float64(len(overlap))
		clauses = append(clauses, "Matched skills: "+strings.Join(overlap, ", "))
	}

	if overlap := intersect(user.Interests, ini.Tags); len(overlap) > 0 {
		score += weightInterest * float64(len(overlap))
		clauses = append(clauses, "Aligned with interests: "+strings.Join(overlap, ", "))
	}

	if overlap := intersect(user.Industries, ini.Industries); len(overlap) > 0 {
		score += weightIndustry * float64(len(overlap))
		clauses = append(clauses, "Industry match: "+strings.Join(overlap, ", "))
	}

	if user.Practice != "" && user.Practice == ini.PracticeArea {
		score += weightPractice
		clauses = append(clauses, fmt.Sprintf("Same practice area: %s", user.Practice))
	}

	if score > 1.0 {
		score = 1.0
	}

	if len(clauses) == 0 {
		return score, fallbackExplanation
	}
	return score, strings.Join(clauses, "; ")
}

// Rank scores every candidate initiative against the user and returns
// at most limit recommendations, best first. Zero-score candidates are
// excluded rather than ranked last. Ordering is descending by score
// with ascending initiative ID as the tie break, so the output is
// deterministic for a given input set.
//
// Callers are expected to pass an already status-filtered candidate
// set (open initiatives only for recommendation requests).
func Rank(user *domain.User, initiatives []domain.Initiative, limit int) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(initiatives))
	for i := range initiatives {
		score, explanation := Score(user, &initiatives[i])
		if score <= 0 {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Initiative:  initiatives[i],
			Score:       score,
			Explanation: explanation,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Initiative.ID < recs[j].Initiative.ID
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// intersect returns the sorted common elements of two tag sets.
// Comparison is case-sensitive and duplicates collapse to one entry.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	in := make(map[string]bool, len(a))
	for _, s := range a {
		in[s] = true
	}
	var out []string
	seen := make(map[string]bool)
	for _, s := range b {
		if in[s] && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
