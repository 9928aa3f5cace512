// README: Daily forecast model reduced to morning/afternoon/night slots.
package weather

// SlotForecast is the weather at one of the three daily time slots.
type SlotForecast struct {
	Temperature         float64 `json:"temperature"`
	Conditions          string  `json:"conditions"`
	PrecipitationChance int     `json:"precipitation_chance"`
	Humidity            int     `json:"humidity"`
	WindSpeed           float64 `json:"wind_speed"`
}

// DailyForecast holds one day of forecast data. Slots are nil when the
// upstream hourly series has no sample at that hour; that is legal, not an
// error.
type DailyForecast struct {
	Date      string        `json:"date"`
	Sunrise   string        `json:"sunrise,omitempty"`
	Sunset    string        `json:"sunset,omitempty"`
	Morning   *SlotForecast `json:"morning,omitempty"`
	Afternoon *SlotForecast `json:"afternoon,omitempty"`
	Night     *SlotForecast `json:"night,omitempty"`
}
