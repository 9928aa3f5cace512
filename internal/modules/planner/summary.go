// README: Catalog projection with fixed defaults for missing fields.
package planner

import "fmt"

// Defaults filled in for catalog fields the upstream left blank. The prompt
// template requires every field to be present.
const (
	defaultSpotDescription  = "Tourist attraction"
	defaultHotelAmenities   = "Standard amenities"
	defaultCuisine          = "Local"
	defaultRestaurantCost   = 500.0
	defaultRestaurantRating = 4.0
)

// Summarize projects a catalog down to the fields the prompt needs. It is a
// pure function: it never invents entries, and empty categories come back as
// empty (non-nil) lists so the rendered prompt stays well-formed.
func Summarize(catalog *Catalog) CatalogSummary {
	summary := CatalogSummary{
		Spots:       []SpotSummary{},
		Hotels:      []HotelSummary{},
		Restaurants: []RestaurantSummary{},
	}
	if catalog == nil {
		return summary
	}

	for _, spot := range catalog.Spots {
		desc := spot.Description
		if desc == "" {
			desc = defaultSpotDescription
		}
		summary.Spots = append(summary.Spots, SpotSummary{
			Name:        spot.SpotName,
			Description: desc,
			EntryFee:    spot.EntryFee,
		})
	}

	for _, hotel := range catalog.Hotels {
		amenities := hotel.Amenities
		if amenities == "" {
			amenities = defaultHotelAmenities
		}
		summary.Hotels = append(summary.Hotels, HotelSummary{
			Name:       hotel.HotelName,
			PriceRange: fmt.Sprintf("%g-%g", hotel.PriceMin, hotel.PriceMax),
			Rating:     hotel.Rating,
			Amenities:  amenities,
		})
	}

	for _, restaurant := range catalog.Restaurants {
		cuisine := restaurant.CuisineType
		if cuisine == "" {
			cuisine = defaultCuisine
		}
		avgCost := defaultRestaurantCost
		if restaurant.AvgCost != nil {
			avgCost = *restaurant.AvgCost
		}
		rating := defaultRestaurantRating
		if restaurant.Rating != nil {
			rating = *restaurant.Rating
		}
		summary.Restaurants = append(summary.Restaurants, RestaurantSummary{
			Name:    restaurant.RestaurantName,
			Cuisine: cuisine,
			AvgCost: avgCost,
			Rating:  rating,
		})
	}

	return summary
}
