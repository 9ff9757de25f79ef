package tools

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
	"github.com/Vinay-014/GoodFoods/internal/recommend"
)

const recommendationLimit = 8

// RecommendationsTool suggests restaurants for an occasion, group type, and
// budget, ranked by the recommend package's heuristic score.
type RecommendationsTool struct {
	store *catalog.Store
}

func NewRecommendationsTool(store *catalog.Store) *RecommendationsTool {
	return &RecommendationsTool{store: store}
}

func (t *RecommendationsTool) Name() string { return "get_restaurant_recommendations" }

func (t *RecommendationsTool) Description() string {
	return "Get personalized restaurant recommendations based on occasion, group type, preferences, and budget."
}

func (t *RecommendationsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"occasion": {
				"type": "string",
				"description": "Type of occasion (romantic, business, family, celebration, etc.)"
			},
			"group_type": {
				"type": "string",
				"description": "Size and type of group (couple, large group, family, etc.)"
			},
			"preferences": {
				"type": "string",
				"description": "Any specific preferences or requirements"
			},
			"budget": {
				"type": "string",
				"description": "Price range preference ($, $$, $$$, $$$$)",
				"enum": ["$", "$$", "$$$", "$$$$"]
			}
		},
		"required": []
	}`)
}

func (t *RecommendationsTool) Execute(_ context.Context, args map[string]any) (any, error) {
	occasion := stringArg(args, "occasion")
	groupType := stringArg(args, "group_type")
	budget := stringArg(args, "budget")

	type scored struct {
		restaurant *catalog.Restaurant
		score      float64
	}

	var candidates []scored
	for _, r := range t.store.Restaurants() {
		if occasion != "" && !recommend.MatchesOccasion(r, occasion) {
			continue
		}
		if groupType != "" && !recommend.MatchesGroupType(r, groupType) {
			continue
		}
		if budget != "" && string(r.PriceRange) != budget {
			continue
		}
		candidates = append(candidates, scored{r, recommend.Score(r, occasion, groupType)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > recommendationLimit {
		candidates = candidates[:recommendationLimit]
	}

	results := make([]map[string]any, 0, len(candidates))
	for _, c := range candidates {
		entry := map[string]any{
			"id":                    c.restaurant.ID,
			"name":                  c.restaurant.Name,
			"location":              c.restaurant.Location,
			"cuisine":               string(c.restaurant.Cuisine),
			"price_range":           string(c.restaurant.PriceRange),
			"rating":                c.restaurant.Rating,
			"available_tables":      c.restaurant.AvailableTables(),
			"special_features":      c.restaurant.SpecialFeatures,
			"match_score":           math.Round(c.score*100) / 100,
			"recommendation_reason": recommend.Reason(c.restaurant, occasion, groupType),
		}
		results = append(results, entry)
	}
	return results, nil
}
