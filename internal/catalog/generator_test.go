package catalog

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestGenerateCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := len(Generate(10, rng)); got != 10 {
		t.Errorf("Generate(10) returned %d restaurants", got)
	}
	if got := len(Generate(0, rand.New(rand.NewSource(1)))); got != DefaultCount {
		t.Errorf("Generate(0) returned %d restaurants, want default %d", got, DefaultCount)
	}
}

func TestGenerateInvariants(t *testing.T) {
	restaurants := Generate(200, rand.New(rand.NewSource(42)))

	for i, r := range restaurants {
		if want := fmt.Sprintf("rest_%03d", i+1); r.ID != want {
			t.Fatalf("restaurant %d id = %s, want %s", i, r.ID, want)
		}
		if r.Capacity <= 0 {
			t.Errorf("%s has capacity %d", r.ID, r.Capacity)
		}
		if r.CurrentReservations < 0 || r.CurrentReservations > r.Capacity {
			t.Errorf("%s has %d reservations for capacity %d", r.ID, r.CurrentReservations, r.Capacity)
		}
		if r.Rating < 4.0 || r.Rating > 4.8 {
			t.Errorf("%s rating %.2f out of range", r.ID, r.Rating)
		}
		if r.OpeningTime != "11:00" || r.ClosingTime != "23:00" {
			t.Errorf("%s hours %s-%s", r.ID, r.OpeningTime, r.ClosingTime)
		}
		if len(r.SpecialFeatures) < 1 || len(r.SpecialFeatures) > 3 {
			t.Errorf("%s has %d features", r.ID, len(r.SpecialFeatures))
		}

		switch r.Cuisine {
		case CuisineFrench, CuisineJapanese:
			if r.Capacity < 15 || r.Capacity > 50 {
				t.Errorf("%s (%s) capacity %d outside 15-50", r.ID, r.Cuisine, r.Capacity)
			}
			if r.PriceRange != PriceFineDining && r.PriceRange != PriceLuxury {
				t.Errorf("%s (%s) price %s", r.ID, r.Cuisine, r.PriceRange)
			}
		case CuisineAmerican:
			if r.Capacity < 50 || r.Capacity > 150 {
				t.Errorf("%s (%s) capacity %d outside 50-150", r.ID, r.Cuisine, r.Capacity)
			}
			if r.PriceRange != PriceBudget && r.PriceRange != PriceModerate {
				t.Errorf("%s (%s) price %s", r.ID, r.Cuisine, r.PriceRange)
			}
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(20, rand.New(rand.NewSource(7)))
	b := Generate(20, rand.New(rand.NewSource(7)))

	for i := range a {
		if a[i].Name != b[i].Name || a[i].Capacity != b[i].Capacity || a[i].Rating != b[i].Rating {
			t.Fatalf("restaurant %d differs between identically seeded runs", i)
		}
	}
}
