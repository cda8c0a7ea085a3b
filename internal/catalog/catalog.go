// Package catalog holds the static lookup tables: cities, trains, food
// items and offers. A Catalog is built once per process start and never
// persisted; seat availability is randomized at construction time, so it
// is not stable across restarts and is display data only.
package catalog

import (
	"math/rand"
	"strings"

	"github.com/railswift/railswift/internal/model"
)

// maxCitySuggestions caps the autocomplete result list.
const maxCitySuggestions = 6

// Catalog is the in-memory lookup table set.
type Catalog struct {
	Cities []string
	Trains []model.Train
	Food   []model.FoodItem
	Offers []model.Offer
}

// TrainResults carries a route search result. Fallback is true when no
// train matched both origin and destination and the set was degraded to
// all trains leaving the requested origin.
type TrainResults struct {
	Trains   []model.Train `json:"trains"`
	Fallback bool          `json:"fallback"`
}

// New builds the catalog from the static tables in data.go, generating a
// fresh random availability count for every class.
func New() *Catalog {
	trains := make([]model.Train, len(trainTable))
	for i, t := range trainTable {
		tr := t.train
		tr.Classes = buildClasses(t.classTypes)
		trains[i] = tr
	}
	return &Catalog{
		Cities: cityList,
		Trains: trains,
		Food:   foodItems,
		Offers: offers,
	}
}

func buildClasses(types []string) []model.TrainClass {
	out := make([]model.TrainClass, len(types))
	for i, t := range types {
		name, ok := classNames[t]
		if !ok {
			name = t
		}
		price, ok := classPrices[t]
		if !ok {
			price = 500
		}
		out[i] = model.TrainClass{
			Type:      t,
			Name:      name,
			Price:     price,
			Available: rand.Intn(100) + 5,
		}
	}
	return out
}

// SearchCities suggests up to six cities containing the query,
// case-insensitively. An empty query yields no suggestions.
func (c *Catalog) SearchCities(q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	out := make([]string, 0, maxCitySuggestions)
	for _, city := range c.Cities {
		if strings.Contains(strings.ToLower(city), q) {
			out = append(out, city)
			if len(out) == maxCitySuggestions {
				break
			}
		}
	}
	return out
}

// SearchTrains matches origin and destination by case-insensitive
// substring containment. When nothing matches both, it degrades to
// origin-only matching and flags the result set as a fallback.
func (c *Catalog) SearchTrains(from, to string) TrainResults {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))

	var direct []model.Train
	for _, t := range c.Trains {
		if strings.Contains(strings.ToLower(t.From), from) &&
			strings.Contains(strings.ToLower(t.To), to) {
			direct = append(direct, t)
		}
	}
	if len(direct) > 0 {
		return TrainResults{Trains: direct}
	}

	var sameOrigin []model.Train
	for _, t := range c.Trains {
		if strings.Contains(strings.ToLower(t.From), from) {
			sameOrigin = append(sameOrigin, t)
		}
	}
	return TrainResults{Trains: sameOrigin, Fallback: true}
}

// FilterFood matches the item name by case-insensitive substring and the
// category exactly. An empty category or "All" disables the category
// filter.
func (c *Catalog) FilterFood(q, category string) []model.FoodItem {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]model.FoodItem, 0, len(c.Food))
	for _, item := range c.Food {
		if q != "" && !strings.Contains(strings.ToLower(item.Name), q) {
			continue
		}
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}
