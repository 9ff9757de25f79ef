package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
)

// CreateReservationTool books a table. It is the only growth path for the
// reservation collection.
type CreateReservationTool struct {
	store *catalog.Store
}

func NewCreateReservationTool(store *catalog.Store) *CreateReservationTool {
	return &CreateReservationTool{store: store}
}

func (t *CreateReservationTool) Name() string { return "create_reservation" }

func (t *CreateReservationTool) Description() string {
	return "Create a new restaurant reservation with customer details and special requests."
}

func (t *CreateReservationTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"restaurant_id": {
				"type": "string",
				"description": "ID of the restaurant to book (from search results, e.g. rest_001)"
			},
			"customer_name": {
				"type": "string",
				"description": "Full name of the customer"
			},
			"customer_phone": {
				"type": "string",
				"description": "Contact phone number"
			},
			"customer_email": {
				"type": "string",
				"description": "Contact email address"
			},
			"party_size": {
				"type": "integer",
				"description": "Number of people in the party"
			},
			"date": {
				"type": "string",
				"description": "Reservation date in YYYY-MM-DD format"
			},
			"time": {
				"type": "string",
				"description": "Reservation time in HH:MM format"
			},
			"special_requests": {
				"type": "string",
				"description": "Any special requirements or dietary needs"
			}
		},
		"required": ["restaurant_id", "customer_name", "customer_phone", "customer_email", "party_size", "date", "time"]
	}`)
}

func (t *CreateReservationTool) Execute(_ context.Context, args map[string]any) (any, error) {
	partySize, ok := intArg(args, "party_size")
	if !ok {
		return bookingFailure("party_size must be a whole number"), nil
	}

	req := catalog.ReservationRequest{
		RestaurantID:    stringArg(args, "restaurant_id"),
		CustomerName:    stringArg(args, "customer_name"),
		CustomerPhone:   stringArg(args, "customer_phone"),
		CustomerEmail:   stringArg(args, "customer_email"),
		PartySize:       partySize,
		Date:            stringArg(args, "date"),
		Time:            stringArg(args, "time"),
		SpecialRequests: stringArg(args, "special_requests"),
	}

	reservation, restaurant, fail := t.store.CreateReservation(req)
	if fail != nil {
		return bookingFailure(fail.Message), nil
	}

	return map[string]any{
		"success":             true,
		"reservation_id":      reservation.ID,
		"confirmation_number": reservation.ID,
		"restaurant_name":     restaurant.Name,
		"customer_name":       reservation.CustomerName,
		"party_size":          reservation.PartySize,
		"date":                reservation.Date,
		"time":                reservation.Time,
		"special_requests":    reservation.SpecialRequests,
		"message":             fmt.Sprintf("🎉 Reservation confirmed! Your confirmation number is %s", reservation.ID),
	}, nil
}

func bookingFailure(message string) map[string]any {
	return map[string]any{"success": false, "message": message}
}

// CancelReservationTool removes a reservation and releases its table slot.
type CancelReservationTool struct {
	store *catalog.Store
}

func NewCancelReservationTool(store *catalog.Store) *CancelReservationTool {
	return &CancelReservationTool{store: store}
}

func (t *CancelReservationTool) Name() string { return "cancel_reservation" }

func (t *CancelReservationTool) Description() string {
	return "Cancel an existing reservation by reservation ID."
}

func (t *CancelReservationTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"reservation_id": {
				"type": "string",
				"description": "The unique reservation ID to cancel"
			}
		},
		"required": ["reservation_id"]
	}`)
}

func (t *CancelReservationTool) Execute(_ context.Context, args map[string]any) (any, error) {
	cancelled, fail := t.store.CancelReservation(stringArg(args, "reservation_id"))
	if fail != nil {
		return bookingFailure(fail.Message), nil
	}

	return map[string]any{
		"success":                  true,
		"cancelled_reservation_id": cancelled.ID,
		"message":                  fmt.Sprintf("Reservation %s has been successfully cancelled.", cancelled.ID),
	}, nil
}

// ReservationDetailsTool looks up a reservation joined with its restaurant's
// display fields.
type ReservationDetailsTool struct {
	store *catalog.Store
}

func NewReservationDetailsTool(store *catalog.Store) *ReservationDetailsTool {
	return &ReservationDetailsTool{store: store}
}

func (t *ReservationDetailsTool) Name() string { return "get_reservation_details" }

func (t *ReservationDetailsTool) Description() string {
	return "Retrieve detailed information about a specific reservation."
}

func (t *ReservationDetailsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"reservation_id": {
				"type": "string",
				"description": "The unique reservation ID to look up"
			}
		},
		"required": ["reservation_id"]
	}`)
}

func (t *ReservationDetailsTool) Execute(_ context.Context, args map[string]any) (any, error) {
	reservation, restaurant, found := t.store.ReservationDetails(stringArg(args, "reservation_id"))
	if !found {
		return map[string]any{"found": false, "message": "Reservation not found"}, nil
	}

	// "Unknown" stands in for every display field when the restaurant id no
	// longer resolves.
	display := map[string]any{
		"name":     "Unknown",
		"location": "Unknown",
		"address":  "Unknown",
		"cuisine":  "Unknown",
		"phone":    "Unknown",
	}
	if restaurant != nil {
		display["name"] = restaurant.Name
		display["location"] = restaurant.Location
		display["address"] = restaurant.Address
		display["cuisine"] = string(restaurant.Cuisine)
		display["phone"] = restaurant.ContactPhone
	}

	return map[string]any{
		"found":       true,
		"reservation": reservation.ToMap(),
		"restaurant":  display,
	}, nil
}
