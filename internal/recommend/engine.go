// Package recommend scores restaurants against an occasion, group type, and
// budget. The scores are additive heuristics over feature tags and capacity;
// they are unbounded and only meaningful for ordering within one call.
package recommend

import (
	"strings"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
)

// Occasion keyword groups and the feature tags they select for.
var (
	romanticKeywords = []string{"romantic", "date", "anniversary"}
	businessKeywords = []string{"business", "meeting"}
	familyKeywords   = []string{"family", "kids"}

	romanticFilterFeatures = []string{"Romantic", "Candlelit", "Fine Dining"}
	businessFilterFeatures = []string{"Business Lunch", "Private Dining", "Power Outlets"}
	familyFilterFeatures   = []string{"Family Friendly", "Kids Menu", "Play Area"}

	// Scoring matches a narrower tag set than filtering.
	romanticScoreFeatures = []string{"Romantic", "Candlelit"}
	businessScoreFeatures = []string{"Business Lunch", "Private Dining"}
	familyScoreFeatures   = []string{"Family Friendly", "Kids Menu"}
)

// Scoring bonuses. Base is the restaurant's rating.
const (
	romanticBonus   = 1.0
	businessBonus   = 0.8
	familyBonus     = 0.8
	largeGroupBonus = 0.5
	smallGroupBonus = 0.3

	largeGroupCapacity = 50
	smallGroupCapacity = 40
)

// MatchesOccasion reports whether r suits the named occasion. Unknown
// occasions match everything.
func MatchesOccasion(r *catalog.Restaurant, occasion string) bool {
	switch {
	case containsAny(occasion, romanticKeywords):
		return r.HasAnyFeature(romanticFilterFeatures)
	case containsAny(occasion, businessKeywords):
		return r.HasAnyFeature(businessFilterFeatures)
	case containsAny(occasion, familyKeywords):
		return r.HasAnyFeature(familyFilterFeatures)
	default:
		return true
	}
}

// MatchesGroupType reports whether r's capacity suits the group description:
// at least 50 seats for large groups, at most 40 for small ones.
func MatchesGroupType(r *catalog.Restaurant, groupType string) bool {
	switch {
	case containsAny(groupType, []string{"large", "group"}):
		return r.Capacity >= largeGroupCapacity
	case containsAny(groupType, []string{"small", "couple"}):
		return r.Capacity <= smallGroupCapacity
	default:
		return true
	}
}

// Score computes the relevance score for r: the base rating plus fixed
// bonuses per matched occasion-feature pair and per capacity fit.
func Score(r *catalog.Restaurant, occasion, groupType string) float64 {
	score := r.Rating

	o := strings.ToLower(occasion)
	if strings.Contains(o, "romantic") && r.HasAnyFeature(romanticScoreFeatures) {
		score += romanticBonus
	}
	if strings.Contains(o, "business") && r.HasAnyFeature(businessScoreFeatures) {
		score += businessBonus
	}
	if strings.Contains(o, "family") && r.HasAnyFeature(familyScoreFeatures) {
		score += familyBonus
	}

	g := strings.ToLower(groupType)
	if strings.Contains(g, "large") && r.Capacity >= largeGroupCapacity {
		score += largeGroupBonus
	}
	if strings.Contains(g, "small") && r.Capacity <= smallGroupCapacity {
		score += smallGroupBonus
	}

	return score
}

// Reason builds the human-readable justification attached to each
// recommendation.
func Reason(r *catalog.Restaurant, occasion, groupType string) string {
	var reasons []string

	switch {
	case r.Rating >= 4.5:
		reasons = append(reasons, "excellent ratings")
	case r.Rating >= 4.0:
		reasons = append(reasons, "highly rated")
	}

	o := strings.ToLower(occasion)
	if strings.Contains(o, "romantic") && r.HasAnyFeature(romanticScoreFeatures) {
		reasons = append(reasons, "perfect for romantic occasions")
	}
	if strings.Contains(o, "business") && r.HasAnyFeature(businessScoreFeatures) {
		reasons = append(reasons, "ideal for business meetings")
	}
	if strings.Contains(o, "family") && r.HasAnyFeature(familyScoreFeatures) {
		reasons = append(reasons, "great for families")
	}

	if len(reasons) == 0 {
		return "A wonderful dining option based on your preferences"
	}
	return "Recommended because: " + strings.Join(reasons, ", ")
}

func containsAny(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
