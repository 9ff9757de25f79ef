package tools

import (
	"context"
	"encoding/json"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
)

const searchResultLimit = 10

// SearchTool finds restaurants matching any combination of cuisine, location,
// party size, price tier, and feature tags.
type SearchTool struct {
	store *catalog.Store
}

func NewSearchTool(store *catalog.Store) *SearchTool {
	return &SearchTool{store: store}
}

func (t *SearchTool) Name() string { return "search_restaurants" }

func (t *SearchTool) Description() string {
	return "Search for restaurants based on multiple criteria including cuisine, location, " +
		"party size, price range, date, time, and special features."
}

func (t *SearchTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"cuisine": {
				"type": "string",
				"description": "Type of cuisine (Italian, Mexican, Chinese, etc.)"
			},
			"location": {
				"type": "string",
				"description": "Area or neighborhood to search in"
			},
			"party_size": {
				"type": "integer",
				"description": "Number of people in the party (1-20)"
			},
			"price_range": {
				"type": "string",
				"description": "Budget range ($, $$, $$$, $$$$)",
				"enum": ["$", "$$", "$$$", "$$$$"]
			},
			"date": {
				"type": "string",
				"description": "Reservation date in YYYY-MM-DD format"
			},
			"time": {
				"type": "string",
				"description": "Reservation time in HH:MM format"
			},
			"features": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Special features like outdoor seating, romantic, etc."
			}
		},
		"required": []
	}`)
}

func (t *SearchTool) Execute(_ context.Context, args map[string]any) (any, error) {
	filter := catalog.SearchFilter{
		Cuisine:    stringArg(args, "cuisine"),
		Location:   stringArg(args, "location"),
		PriceRange: stringArg(args, "price_range"),
		Features:   stringListArg(args, "features"),
	}
	// A non-numeric or out-of-range party size drops the filter rather than
	// failing the whole search.
	if n, ok := intArg(args, "party_size"); ok {
		filter.PartySize = n
	}

	matches := t.store.Search(filter)
	if len(matches) > searchResultLimit {
		matches = matches[:searchResultLimit]
	}

	results := make([]map[string]any, 0, len(matches))
	for _, r := range matches {
		results = append(results, formatRestaurant(r))
	}
	return results, nil
}

// formatRestaurant renders one catalog entry as the search/recommendation
// wire payload.
func formatRestaurant(r *catalog.Restaurant) map[string]any {
	return map[string]any{
		"id":               r.ID,
		"name":             r.Name,
		"location":         r.Location,
		"cuisine":          string(r.Cuisine),
		"price_range":      string(r.PriceRange),
		"rating":           r.Rating,
		"available_tables": r.AvailableTables(),
		"capacity":         r.Capacity,
		"special_features": r.SpecialFeatures,
		"contact_phone":    r.ContactPhone,
		"address":          r.Address,
		"opening_time":     r.OpeningTime,
		"closing_time":     r.ClosingTime,
	}
}
