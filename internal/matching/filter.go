package matching

import (
	"strings"

	"initiative-discovery-backend/internal/domain"
)

// Pagination bounds for Filter. A non-positive limit falls back to
// DefaultPageSize; anything above MaxPageSize is clamped down.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Filter narrows initiatives by the given criteria and paginates the
// result. It returns the requested page slice and the total number of
// matches before pagination, which callers use for page math
// (page = skip/limit + 1).
//
// Criteria combine with AND; an absent criterion (zero value or empty
// list) imposes no constraint. The skills and industries lists match
// when the initiative carries at least one of the requested values.
func Filter(initiatives []domain.Initiative, c domain.SearchCriteria) ([]domain.Initiative, int) {
	matched := make([]domain.Initiative, 0, len(initiatives))
	for i := range initiatives {
		if matches(&initiatives[i], c) {
			matched = append(matched, initiatives[i])
		}
	}
	total := len(matched)

	skip := c.Skip
	if skip < 0 {
		skip = 0
	}
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if skip >= total {
		return []domain.Initiative{}, total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return matched[skip:end], total
}

func matches(ini *domain.Initiative, c domain.SearchCriteria) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		title := strings.ToLower(ini.Title)
		desc := strings.ToLower(ini.Description)
		if !strings.Contains(title, q) && !strings.Contains(desc, q) {
			return false
		}
	}

	if len(c.Skills) > 0 && !containsAny(ini.SkillsNeeded, c.Skills) {
		return false
	}

	if c.PracticeArea != "" && ini.PracticeArea != c.PracticeArea {
		return false
	}

	if len(c.Industries) > 0 && !containsAny(ini.Industries, c.Industries) {
		return false
	}

	if c.TimeCommitment != "" && ini.TimeCommitment != c.TimeCommitment {
		return false
	}

	if c.Status != "" && ini.Status != c.Status {
		return false
	}

	return true
}

// containsAny reports whether have holds at least one of wanted.
func containsAny(have, wanted []string) bool {
	if len(have) == 0 {
		return false
	}
	set := make(map[string]bool, len(have))
	for _, s := range have {
		set[s] = true
	}
	for _, w := range wanted {
		if set[w] {
			return true
		}
	}
	return false
}
