// Package catalog holds the restaurant and reservation domain model and the
// in-memory store that owns both collections for the lifetime of the process.
package catalog

import (
	"strings"
	"time"
)

// Cuisine is one of the fixed cuisine categories.
type Cuisine string

const (
	CuisineItalian       Cuisine = "Italian"
	CuisineMexican       Cuisine = "Mexican"
	CuisineChinese       Cuisine = "Chinese"
	CuisineIndian        Cuisine = "Indian"
	CuisineAmerican      Cuisine = "American"
	CuisineJapanese      Cuisine = "Japanese"
	CuisineFrench        Cuisine = "French"
	CuisineThai          Cuisine = "Thai"
	CuisineMediterranean Cuisine = "Mediterranean"
	CuisineVegan         Cuisine = "Vegan"
)

// AllCuisines lists every cuisine category, in display order.
func AllCuisines() []Cuisine {
	return []Cuisine{
		CuisineItalian, CuisineMexican, CuisineChinese, CuisineIndian,
		CuisineAmerican, CuisineJapanese, CuisineFrench, CuisineThai,
		CuisineMediterranean, CuisineVegan,
	}
}

// PriceRange is a price tier expressed in dollar signs.
type PriceRange string

const (
	PriceBudget     PriceRange = "$"
	PriceModerate   PriceRange = "$$"
	PriceFineDining PriceRange = "$$$"
	PriceLuxury     PriceRange = "$$$$"
)

// AllPriceRanges lists every price tier, cheapest first.
func AllPriceRanges() []PriceRange {
	return []PriceRange{PriceBudget, PriceModerate, PriceFineDining, PriceLuxury}
}

// Restaurant is one catalog entry. The catalog is static in membership:
// restaurants are created once at startup and never added or removed.
// CurrentReservations is the only field mutated afterwards.
type Restaurant struct {
	ID                  string     `json:"id" yaml:"id"`
	Name                string     `json:"name" yaml:"name"`
	Location            string     `json:"location" yaml:"location"`
	Cuisine             Cuisine    `json:"cuisine" yaml:"cuisine"`
	PriceRange          PriceRange `json:"price_range" yaml:"price_range"`
	Capacity            int        `json:"capacity" yaml:"capacity"`
	CurrentReservations int        `json:"current_reservations" yaml:"current_reservations"`
	OpeningTime         string     `json:"opening_time" yaml:"opening_time"` // HH:MM
	ClosingTime         string     `json:"closing_time" yaml:"closing_time"` // HH:MM
	Rating              float64    `json:"rating" yaml:"rating"`
	SpecialFeatures     []string   `json:"special_features" yaml:"special_features"`
	ContactPhone        string     `json:"contact_phone" yaml:"contact_phone"`
	Address             string     `json:"address" yaml:"address"`
}

// AvailableTables returns capacity minus current reservations, floored at zero.
func (r *Restaurant) AvailableTables() int {
	if n := r.Capacity - r.CurrentReservations; n > 0 {
		return n
	}
	return 0
}

// IsOpenAt reports whether the clock time t (minutes since midnight) falls
// within the restaurant's opening hours, bounds inclusive.
func (r *Restaurant) IsOpenAt(t int) bool {
	open, err := parseClock(r.OpeningTime)
	if err != nil {
		return false
	}
	close, err := parseClock(r.ClosingTime)
	if err != nil {
		return false
	}
	return open <= t && t <= close
}

// HasFeature reports whether the restaurant carries the feature tag,
// matched case-insensitively against the full tag.
func (r *Restaurant) HasFeature(feature string) bool {
	for _, f := range r.SpecialFeatures {
		if strings.EqualFold(f, feature) {
			return true
		}
	}
	return false
}

// HasAnyFeature reports whether the restaurant carries at least one of the tags.
func (r *Restaurant) HasAnyFeature(features []string) bool {
	for _, f := range features {
		if r.HasFeature(f) {
			return true
		}
	}
	return false
}

// Reservation is one confirmed booking. Cancellation removes the record
// rather than transitioning status, so Status is always "confirmed" while
// the record lives.
type Reservation struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   string    `json:"customer_email"`
	PartySize       int       `json:"party_size"`
	Date            string    `json:"reservation_date"` // YYYY-MM-DD
	Time            string    `json:"reservation_time"` // HH:MM
	SpecialRequests string    `json:"special_requests"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToMap renders the reservation as the wire payload used in tool results.
func (rv *Reservation) ToMap() map[string]any {
	return map[string]any{
		"id":               rv.ID,
		"restaurant_id":    rv.RestaurantID,
		"customer_name":    rv.CustomerName,
		"customer_phone":   rv.CustomerPhone,
		"customer_email":   rv.CustomerEmail,
		"party_size":       rv.PartySize,
		"reservation_date": rv.Date,
		"reservation_time": rv.Time,
		"special_requests": rv.SpecialRequests,
		"status":           rv.Status,
		"created_at":       rv.CreatedAt.Format(time.RFC3339),
	}
}
