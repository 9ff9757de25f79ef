package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
)

// fakeTool lets tests script a tool's behaviour.
type fakeTool struct {
	name    string
	execute func(ctx context.Context, args map[string]any) (any, error)
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return "test tool" }
func (t *fakeTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}}`)
}
func (t *fakeTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	return t.execute(ctx, args)
}

func testStore() *catalog.Store {
	restaurants := []*catalog.Restaurant{
		{
			ID:                  "rest_001",
			Name:                "Bella Italian",
			Location:            "Downtown",
			Cuisine:             catalog.CuisineItalian,
			PriceRange:          catalog.PriceModerate,
			Capacity:            5,
			CurrentReservations: 3,
			OpeningTime:         "11:00",
			ClosingTime:         "23:00",
			Rating:              4.2,
			SpecialFeatures:     []string{"Outdoor Seating", "Wine Bar"},
			ContactPhone:        "+1-555-100-1000",
			Address:             "100 Main St, Downtown",
		},
		{
			ID:              "rest_002",
			Name:            "Sakura Kitchen",
			Location:        "Harbor View",
			Cuisine:         catalog.CuisineJapanese,
			PriceRange:      catalog.PriceFineDining,
			Capacity:        30,
			OpeningTime:     "17:00",
			ClosingTime:     "22:00",
			Rating:          4.7,
			SpecialFeatures: []string{"Romantic", "Candlelit"},
		},
		{
			ID:              "rest_003",
			Name:            "Harvest Grill",
			Location:        "Downtown",
			Cuisine:         catalog.CuisineAmerican,
			PriceRange:      catalog.PriceBudget,
			Capacity:        100,
			OpeningTime:     "11:00",
			ClosingTime:     "23:00",
			Rating:          4.2,
			SpecialFeatures: []string{"Family Friendly", "Kids Menu"},
		},
	}
	clock := func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return catalog.NewStoreWithClock(restaurants, catalog.DefaultLimits(), clock)
}

func fullRegistry(store *catalog.Store) *Registry {
	return NewRegistry(
		NewSearchTool(store),
		NewAvailabilityTool(store),
		NewCreateReservationTool(store),
		NewCancelReservationTool(store),
		NewReservationDetailsTool(store),
		NewRecommendationsTool(store),
	)
}

func TestRegistryNames(t *testing.T) {
	r := fullRegistry(testStore())

	want := []string{
		"cancel_reservation",
		"check_availability",
		"create_reservation",
		"get_reservation_details",
		"get_restaurant_recommendations",
		"search_restaurants",
	}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRegistryDefinitions(t *testing.T) {
	r := fullRegistry(testStore())

	defs := r.Definitions()
	if len(defs) != 6 {
		t.Fatalf("got %d definitions, want 6", len(defs))
	}
	for _, def := range defs {
		if def["type"] != "function" {
			t.Errorf("definition type = %v", def["type"])
		}
		fn, ok := def["function"].(map[string]any)
		if !ok {
			t.Fatalf("function block missing: %v", def)
		}
		for _, key := range []string{"name", "description", "parameters"} {
			if _, ok := fn[key]; !ok {
				t.Errorf("definition for %v missing %s", fn["name"], key)
			}
		}
		params, ok := fn["parameters"].(map[string]any)
		if !ok || params["type"] != "object" {
			t.Errorf("parameters for %v not an object schema", fn["name"])
		}
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	r := NewRegistry()

	result := r.Dispatch(context.Background(), "bogus_tool", nil)
	payload, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result = %T", result)
	}
	if payload["success"] != false || payload["error"] != "Tool bogus_tool not found" {
		t.Errorf("payload = %v", payload)
	}
}

func TestDispatchConvertsError(t *testing.T) {
	r := NewRegistry(&fakeTool{
		name: "broken",
		execute: func(context.Context, map[string]any) (any, error) {
			return nil, errors.New("backend unavailable")
		},
	})

	result := r.Dispatch(context.Background(), "broken", nil)
	payload := result.(map[string]any)
	if payload["success"] != false || payload["error"] != "backend unavailable" {
		t.Errorf("payload = %v", payload)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	r := NewRegistry(&fakeTool{
		name: "explosive",
		execute: func(context.Context, map[string]any) (any, error) {
			panic("boom")
		},
	})

	result := r.Dispatch(context.Background(), "explosive", nil)
	payload, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result = %T", result)
	}
	if payload["success"] != false || payload["error"] != "boom" {
		t.Errorf("payload = %v", payload)
	}
}
