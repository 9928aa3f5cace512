// README: Trip request, destination catalog, and itinerary plan models.
package planner

// Spot is a point of interest supplied by the destination catalog.
type Spot struct {
	SpotName    string  `json:"spot_name"`
	Description string  `json:"description,omitempty"`
	EntryFee    float64 `json:"entry_fee"`
}

// Hotel is a lodging option supplied by the destination catalog.
type Hotel struct {
	HotelName string  `json:"hotel_name"`
	PriceMin  float64 `json:"price_min"`
	PriceMax  float64 `json:"price_max"`
	Rating    float64 `json:"rating"`
	Amenities string  `json:"amenities,omitempty"`
}

// Restaurant is a dining option supplied by the destination catalog.
// AvgCost and Rating are pointers so that "absent" and "zero" stay distinct
// until the summarizer applies defaults.
type Restaurant struct {
	RestaurantName string   `json:"restaurant_name"`
	CuisineType    string   `json:"cuisine_type,omitempty"`
	AvgCost        *float64 `json:"avg_cost,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
}

// Catalog is the externally supplied destination data. It is read-only
// input; the planner never adds entries to it.
type Catalog struct {
	Success     bool         `json:"success"`
	DataSource  string       `json:"data_source,omitempty"`
	Spots       []Spot       `json:"spots"`
	Hotels      []Hotel      `json:"hotels"`
	Restaurants []Restaurant `json:"restaurants"`
}

// HasData reports whether the catalog can support plan generation.
func (c *Catalog) HasData() bool {
	if c == nil || !c.Success {
		return false
	}
	return len(c.Spots) > 0 || len(c.Hotels) > 0 || len(c.Restaurants) > 0
}

// CatalogSummary is the projection of a Catalog down to the fields the
// prompt needs, with defaults already applied.
type CatalogSummary struct {
	Spots       []SpotSummary       `json:"spots"`
	Hotels      []HotelSummary      `json:"hotels"`
	Restaurants []RestaurantSummary `json:"restaurants"`
}

type SpotSummary struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EntryFee    float64 `json:"entry_fee"`
}

type HotelSummary struct {
	Name       string  `json:"name"`
	PriceRange string  `json:"price_range"`
	Rating     float64 `json:"rating"`
	Amenities  string  `json:"amenities"`
}

type RestaurantSummary struct {
	Name    string  `json:"name"`
	Cuisine string  `json:"cuisine"`
	AvgCost float64 `json:"avg_cost"`
	Rating  float64 `json:"rating"`
}

// TripSummary echoes the request parameters inside a plan.
type TripSummary struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	Duration    int     `json:"duration"`
	TotalBudget float64 `json:"total_budget"`
}

// Activity is a visit to a spot within a day.
type Activity struct {
	SpotName    string  `json:"spot_name"`
	Time        string  `json:"time,omitempty"`
	Description string  `json:"description,omitempty"`
	EntryFee    float64 `json:"entry_fee"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// MealOption is a restaurant suggestion for lunch or dinner.
type MealOption struct {
	RestaurantName string  `json:"restaurant_name"`
	Cuisine        string  `json:"cuisine,omitempty"`
	CostPerPerson  float64 `json:"cost_per_person"`
	Rating         float64 `json:"rating"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// AccommodationOption is a hotel suggestion for the night.
type AccommodationOption struct {
	HotelName    string  `json:"hotel_name"`
	Rating       float64 `json:"rating"`
	CostPerNight float64 `json:"cost_per_night"`
	Amenities    string  `json:"amenities,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
}

// DayBudget breaks down one day's estimated spend. All values are advisory;
// nothing here is validated or corrected.
type DayBudget struct {
	Accommodation float64 `json:"accommodation"`
	Meals         float64 `json:"meals"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
	Misc          float64 `json:"misc,omitempty"`
	Total         float64 `json:"total"`
}

// ItineraryDay is one day of the generated plan.
type ItineraryDay struct {
	Day                  int                   `json:"day"`
	Date                 string                `json:"date"`
	WeatherSummary       string                `json:"weather_summary,omitempty"`
	MorningActivity      *Activity             `json:"morning_activity,omitempty"`
	LunchOptions         []MealOption          `json:"lunch_options,omitempty"`
	AfternoonActivities  []Activity            `json:"afternoon_activities,omitempty"`
	DinnerOptions        []MealOption          `json:"dinner_options,omitempty"`
	AccommodationOptions []AccommodationOption `json:"accommodation_options,omitempty"`
	DayBudget            *DayBudget            `json:"day_budget,omitempty"`
}

// BudgetSummary aggregates the plan's totals. Remaining may be negative;
// the budget is advisory only.
type BudgetSummary struct {
	GrandTotal float64 `json:"grand_total"`
	Remaining  float64 `json:"remaining"`
}

// TripPlan is the canonical itinerary document. It lives for one
// request/response cycle and may round-trip back in as the original plan
// of a customization request.
type TripPlan struct {
	TripSummary    TripSummary    `json:"trip_summary"`
	DailyItinerary []ItineraryDay `json:"daily_itinerary"`
	BudgetSummary  BudgetSummary  `json:"budget_summary"`
}

// DataSummary describes which upstream data fed a plan.
type DataSummary struct {
	WeatherAvailable bool   `json:"weather_available"`
	DataSource       string `json:"data_source"`
	SpotsCount       int    `json:"spots_count"`
	HotelsCount      int    `json:"hotels_count"`
	RestaurantsCount int    `json:"restaurants_count"`
	ProcessedBy      string `json:"processed_by"`
}

// Customization records the edit applied by a customize request.
type Customization struct {
	EditInstruction string `json:"edit_instruction"`
	Customized      bool   `json:"customized"`
}

// PlanResult is the response envelope shared by generate and customize.
type PlanResult struct {
	Success       bool           `json:"success"`
	Destination   string         `json:"destination"`
	Origin        string         `json:"origin"`
	DurationDays  int            `json:"duration_days"`
	StartDate     string         `json:"start_date"`
	Budget        float64        `json:"budget"`
	TripPlan      *TripPlan      `json:"trip_plan"`
	DataSummary   DataSummary    `json:"data_summary"`
	Customization *Customization `json:"customization,omitempty"`
}
