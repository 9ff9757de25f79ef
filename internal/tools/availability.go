package tools

import (
	"context"
	"encoding/json"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
)

// AvailabilityTool checks whether a restaurant can seat a party at a given
// date and time. Read-only.
type AvailabilityTool struct {
	store *catalog.Store
}

func NewAvailabilityTool(store *catalog.Store) *AvailabilityTool {
	return &AvailabilityTool{store: store}
}

func (t *AvailabilityTool) Name() string { return "check_availability" }

func (t *AvailabilityTool) Description() string {
	return "Check real-time availability for a specific restaurant, date, and time."
}

func (t *AvailabilityTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"restaurant_id": {
				"type": "string",
				"description": "Unique identifier for the restaurant"
			},
			"date": {
				"type": "string",
				"description": "Reservation date in YYYY-MM-DD format"
			},
			"time": {
				"type": "string",
				"description": "Reservation time in HH:MM format"
			},
			"party_size": {
				"type": "integer",
				"description": "Number of people in the party"
			}
		},
		"required": ["restaurant_id", "date", "time", "party_size"]
	}`)
}

func (t *AvailabilityTool) Execute(_ context.Context, args map[string]any) (any, error) {
	restaurantID := stringArg(args, "restaurant_id")
	if restaurantID == "" {
		return unavailable("restaurant_id is required"), nil
	}
	partySize, ok := intArg(args, "party_size")
	if !ok {
		return unavailable("party_size must be a whole number"), nil
	}

	info, fail := t.store.CheckAvailability(restaurantID, stringArg(args, "date"), stringArg(args, "time"), partySize)
	if fail != nil {
		return unavailable(fail.Message), nil
	}

	return map[string]any{
		"available":        true,
		"restaurant_name":  info.Restaurant.Name,
		"restaurant_id":    info.Restaurant.ID,
		"party_size":       info.PartySize,
		"date":             info.Date,
		"time":             info.Time,
		"available_tables": info.AvailableTables,
		"message":          "Table available! Ready to book your reservation.",
	}, nil
}

func unavailable(message string) map[string]any {
	return map[string]any{"available": false, "message": message}
}
