package catalog

import (
	"fmt"
	"math/rand"
)

// DefaultCount is the catalog size used when none is configured.
const DefaultCount = 75

var nameBases = []string{
	"Bella", "Sapore", "Gusto", "Trattoria", "Ristorante", "Cafe", "Bistro",
	"Grill", "Kitchen", "Table", "Feast", "Harvest", "Vine", "Spice", "Flame",
	"Ocean", "Garden", "Market", "Street", "Urban", "Classic", "Modern",
}

var nameSuffixes = []string{" Italian", " Grill", " Kitchen", " Bistro", " Cafe", ""}

var locationAreas = []string{
	"Downtown", "Midtown", "Uptown", "East Side", "West End", "North District",
	"South Quarter", "Central Plaza", "Riverside", "Harbor View", "City Center",
	"Metro", "Historic District", "Financial District", "Arts Quarter",
}

var featureBundles = [][]string{
	{"Outdoor Seating", "Live Music", "Wine Bar"},
	{"Private Dining", "Chef's Table", "Tasting Menu"},
	{"Family Friendly", "Kids Menu", "Play Area"},
	{"Romantic", "Candlelit", "Fine Dining"},
	{"Business Lunch", "Free WiFi", "Power Outlets"},
	{"Wheelchair Access", "Vegetarian Options", "Gluten Free"},
	{"Late Night", "Happy Hour", "Cocktail Bar"},
	{"Waterfront", "Skyline View", "Rooftop"},
}

var streetNames = []string{"Main", "Oak", "Maple", "Park", "Broadway"}

// Generate produces count synthetic restaurants with randomized attributes.
// Identifiers are zero-padded sequence numbers prefixed "rest_". Capacity and
// price tier are keyed on cuisine, rating on price tier, so the catalog has a
// plausible spread. Pass a seeded rng for a reproducible catalog.
func Generate(count int, rng *rand.Rand) []*Restaurant {
	if count <= 0 {
		count = DefaultCount
	}

	cuisines := AllCuisines()
	restaurants := make([]*Restaurant, 0, count)

	for i := 0; i < count; i++ {
		name := nameBases[rng.Intn(len(nameBases))] + nameSuffixes[rng.Intn(len(nameSuffixes))]
		location := locationAreas[rng.Intn(len(locationAreas))]
		cuisine := cuisines[rng.Intn(len(cuisines))]

		var capacity int
		var price PriceRange
		switch cuisine {
		case CuisineFrench, CuisineJapanese:
			capacity = 15 + rng.Intn(36) // 15-50
			price = pick(rng, PriceFineDining, PriceLuxury)
		case CuisineAmerican:
			capacity = 50 + rng.Intn(101) // 50-150
			price = pick(rng, PriceBudget, PriceModerate)
		default:
			capacity = 30 + rng.Intn(71) // 30-100
			price = AllPriceRanges()[rng.Intn(4)]
		}

		rating := 4.0
		if price == PriceFineDining || price == PriceLuxury {
			rating += 0.3 + rng.Float64()*0.5
		} else {
			rating += rng.Float64() * 0.5
		}

		bundle := featureBundles[rng.Intn(len(featureBundles))]
		features := sample(rng, bundle, 1+rng.Intn(3))

		restaurants = append(restaurants, &Restaurant{
			ID:                  fmt.Sprintf("rest_%03d", i+1),
			Name:                name,
			Location:            location,
			Cuisine:             cuisine,
			PriceRange:          price,
			Capacity:            capacity,
			CurrentReservations: rng.Intn(capacity/2 + 1),
			OpeningTime:         "11:00",
			ClosingTime:         "23:00",
			Rating:              round1(rating),
			SpecialFeatures:     features,
			ContactPhone:        fmt.Sprintf("+1-555-%03d-%04d", 100+rng.Intn(900), 1000+rng.Intn(9000)),
			Address: fmt.Sprintf("%d %s St, %s",
				100+rng.Intn(900), streetNames[rng.Intn(len(streetNames))], location),
		})
	}

	return restaurants
}

func pick(rng *rand.Rand, choices ...PriceRange) PriceRange {
	return choices[rng.Intn(len(choices))]
}

// sample returns n distinct elements of items in random order.
func sample(rng *rand.Rand, items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	idx := rng.Perm(len(items))
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, items[i])
	}
	return out
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
