package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Limits bounds bookings accepted by the store.
type Limits struct {
	MaxPartySize   int // people per reservation
	MaxAdvanceDays int // how far ahead a date may be booked
}

// DefaultLimits returns the standard booking limits.
func DefaultLimits() Limits {
	return Limits{MaxPartySize: 20, MaxAdvanceDays: 30}
}

// Store owns the restaurant catalog and the reservation collection. No other
// component mutates either collection directly. A single mutex serialises all
// access; availability is an aggregate counter check, not a per-slot calendar,
// so two reservations on different dates compete for the same capacity.
type Store struct {
	mu           sync.Mutex
	restaurants  []*Restaurant
	reservations []*Reservation
	limits       Limits
	now          func() time.Time
}

// NewStore creates a Store over the given catalog.
func NewStore(restaurants []*Restaurant, limits Limits) *Store {
	return NewStoreWithClock(restaurants, limits, time.Now)
}

// NewStoreWithClock creates a Store with an injected clock, used by tests to
// pin the booking window.
func NewStoreWithClock(restaurants []*Restaurant, limits Limits, now func() time.Time) *Store {
	if limits.MaxPartySize <= 0 {
		limits.MaxPartySize = DefaultLimits().MaxPartySize
	}
	if limits.MaxAdvanceDays <= 0 {
		limits.MaxAdvanceDays = DefaultLimits().MaxAdvanceDays
	}
	return &Store{restaurants: restaurants, limits: limits, now: now}
}

// Limits returns the store's booking limits.
func (s *Store) Limits() Limits { return s.limits }

// Restaurants returns a snapshot of the catalog slice. The pointed-to records
// are shared; callers must not mutate them.
func (s *Store) Restaurants() []*Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out
}

// Restaurant resolves a restaurant by identifier.
func (s *Store) Restaurant(id string) (*Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(id)
	return r, r != nil
}

// FindByName resolves a restaurant by exact case-insensitive name match
// against the full catalog.
func (s *Store) FindByName(name string) (*Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return nil, false
}

// ReservationCount returns the number of live reservations.
func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

// SearchFilter holds the optional search criteria. Zero values mean "no
// filter". PartySize outside [1, MaxPartySize] is ignored.
type SearchFilter struct {
	Cuisine    string
	Location   string
	PartySize  int
	PriceRange string
	Features   []string
}

// Search applies each supplied filter and returns matches sorted descending
// by (rating, available tables). Cuisine and location match as
// case-insensitive substrings, price tier exactly, and every listed feature
// tag must be present. Read-only.
func (s *Store) Search(f SearchFilter) []*Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Restaurant
	for _, r := range s.restaurants {
		if f.Cuisine != "" && !strings.Contains(strings.ToLower(string(r.Cuisine)), strings.ToLower(f.Cuisine)) {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(r.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.PartySize >= 1 && f.PartySize <= s.limits.MaxPartySize && r.AvailableTables() < f.PartySize {
			continue
		}
		if f.PriceRange != "" && string(r.PriceRange) != f.PriceRange {
			continue
		}
		if !hasAllFeatures(r, f.Features) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].AvailableTables() > out[j].AvailableTables()
	})

	return out
}

func hasAllFeatures(r *Restaurant, features []string) bool {
	for _, f := range features {
		if f == "" {
			continue
		}
		if !r.HasFeature(f) {
			return false
		}
	}
	return true
}

// AvailabilityInfo is the successful result of an availability check.
type AvailabilityInfo struct {
	Restaurant      *Restaurant
	PartySize       int
	Date            string
	Time            string
	AvailableTables int
}

// CheckAvailability verifies that the restaurant exists, the date and time
// are well formed, enough tables remain for the party, the requested time
// falls within opening hours, and the date is within the booking window.
// Read-only; no mutation on any path.
func (s *Store) CheckAvailability(restaurantID, date, timeOfDay string, partySize int) (*AvailabilityInfo, *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkAvailabilityLocked(restaurantID, date, timeOfDay, partySize)
}

func (s *Store) checkAvailabilityLocked(restaurantID, date, timeOfDay string, partySize int) (*AvailabilityInfo, *Failure) {
	r := s.findRestaurant(restaurantID)
	if r == nil {
		return nil, failf(CodeNotFound, "Restaurant not found")
	}

	if !validDate(date) {
		return nil, failf(CodeInvalidFormat, "Invalid date format. Use YYYY-MM-DD")
	}
	if !validTime(timeOfDay) {
		return nil, failf(CodeInvalidFormat, "Invalid time format. Use HH:MM")
	}

	if r.AvailableTables() < partySize {
		return nil, failf(CodeCapacityExceeded,
			"Not enough tables available for %d people. Only %d tables left.",
			partySize, r.AvailableTables())
	}

	minutes, _ := parseClock(timeOfDay)
	if !r.IsOpenAt(minutes) {
		return nil, failf(CodeClosed,
			"Restaurant is closed at %s. Open from %s to %s",
			timeOfDay, r.OpeningTime, r.ClosingTime)
	}

	day, _ := time.Parse(dateLayout, date)
	if day.After(s.now().AddDate(0, 0, s.limits.MaxAdvanceDays)) {
		return nil, failf(CodeDateOutOfWindow,
			"Reservations can only be made up to %d days in advance", s.limits.MaxAdvanceDays)
	}

	return &AvailabilityInfo{
		Restaurant:      r,
		PartySize:       partySize,
		Date:            date,
		Time:            timeOfDay,
		AvailableTables: r.AvailableTables(),
	}, nil
}

// ReservationRequest carries the inputs to CreateReservation.
type ReservationRequest struct {
	RestaurantID    string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	PartySize       int
	Date            string
	Time            string
	SpecialRequests string
}

// CreateReservation validates the request, re-runs the availability check,
// and on success appends a new reservation and consumes the restaurant's
// capacity by the party size. Any failure short-circuits with no mutation.
func (s *Store) CreateReservation(req ReservationRequest) (*Reservation, *Restaurant, *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fail := s.validateRequest(req); fail != nil {
		return nil, nil, fail
	}

	info, fail := s.checkAvailabilityLocked(req.RestaurantID, req.Date, req.Time, req.PartySize)
	if fail != nil {
		return nil, nil, fail
	}

	reservation := &Reservation{
		ID:              newReservationID(),
		RestaurantID:    info.Restaurant.ID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		PartySize:       req.PartySize,
		Date:            req.Date,
		Time:            req.Time,
		SpecialRequests: req.SpecialRequests,
		Status:          "confirmed",
		CreatedAt:       s.now(),
	}

	info.Restaurant.CurrentReservations += req.PartySize
	s.reservations = append(s.reservations, reservation)

	return reservation, info.Restaurant, nil
}

func (s *Store) validateRequest(req ReservationRequest) *Failure {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.CustomerPhone) == "" ||
		strings.TrimSpace(req.CustomerEmail) == "" {
		return failf(CodeInvalidFormat, "Please provide complete customer information")
	}
	if req.PartySize <= 0 || req.PartySize > s.limits.MaxPartySize {
		return failf(CodeInvalidFormat, "Party size must be between 1 and %d people", s.limits.MaxPartySize)
	}
	if !validEmail(req.CustomerEmail) {
		return failf(CodeInvalidFormat, "Please provide a valid email address")
	}
	if !validPhone(req.CustomerPhone) {
		return failf(CodeInvalidFormat, "Please provide a valid phone number")
	}
	if !validDate(req.Date) {
		return failf(CodeInvalidFormat, "Invalid date format. Please use YYYY-MM-DD")
	}
	if !validTime(req.Time) {
		return failf(CodeInvalidFormat, "Invalid time format. Please use HH:MM")
	}
	return nil
}

// CancelReservation removes the reservation and releases the party's slots
// back to the owning restaurant, floored at zero to tolerate counter drift.
func (s *Store) CancelReservation(reservationID string) (*Reservation, *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, rv := range s.reservations {
		if rv.ID == reservationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, failf(CodeNotFound, "Reservation not found. Please check your reservation ID.")
	}

	cancelled := s.reservations[idx]
	if r := s.findRestaurant(cancelled.RestaurantID); r != nil {
		r.CurrentReservations -= cancelled.PartySize
		if r.CurrentReservations < 0 {
			r.CurrentReservations = 0
		}
	}
	s.reservations = append(s.reservations[:idx], s.reservations[idx+1:]...)

	return cancelled, nil
}

// ReservationDetails resolves a reservation and a snapshot of its restaurant.
// The restaurant pointer is nil when the id no longer resolves.
func (s *Store) ReservationDetails(reservationID string) (*Reservation, *Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rv := range s.reservations {
		if rv.ID == reservationID {
			return rv, s.findRestaurant(rv.RestaurantID), true
		}
	}
	return nil, nil, false
}

// findRestaurant must be called with s.mu held.
func (s *Store) findRestaurant(id string) *Restaurant {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// newReservationID mints a random token prefixed "RES_", reused as the
// user-facing confirmation number.
func newReservationID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RES_" + strings.ToUpper(hex[:8])
}
