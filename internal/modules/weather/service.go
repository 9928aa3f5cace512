// README: Geocoding + hourly forecast fetch, reduced to three slots per day.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultGeocodeBaseURL  = "https://nominatim.openstreetmap.org"
	defaultForecastBaseURL = "https://api.open-meteo.com"

	userAgent  = "WanderWise/1.0 (contact@wanderwise.example)"
	dateLayout = "2006-01-02"
)

var (
	ErrGeocode     = errors.New("location not found")
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
)

// slotHours are the hourly samples that represent each part of the day.
var slotHours = map[string]string{
	"morning":   "09:00",
	"afternoon": "15:00",
	"night":     "21:00",
}

// Service fetches forecasts for a destination by name. All upstream calls
// share one bounded-timeout HTTP client.
type Service struct {
	client          *http.Client
	geocodeBaseURL  string
	forecastBaseURL string
}

// NewService creates a weather Service. Empty base URLs fall back to the
// public Nominatim and Open-Meteo endpoints.
func NewService(geocodeBaseURL, forecastBaseURL string) *Service {
	if geocodeBaseURL == "" {
		geocodeBaseURL = defaultGeocodeBaseURL
	}
	if forecastBaseURL == "" {
		forecastBaseURL = defaultForecastBaseURL
	}
	return &Service{
		client:          &http.Client{Timeout: 10 * time.Second},
		geocodeBaseURL:  strings.TrimRight(geocodeBaseURL, "/"),
		forecastBaseURL: strings.TrimRight(forecastBaseURL, "/"),
	}
}

// GetForecast resolves the destination to coordinates and returns one
// DailyForecast per requested day, each reduced to morning/afternoon/night
// slots. Days missing an hourly sample simply omit that slot.
func (s *Service) GetForecast(ctx context.Context, destination, startDate string, days int) ([]DailyForecast, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	lat, lon, err := s.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	endDate := start.AddDate(0, 0, days-1).Format(dateLayout)
	resp, err := s.fetchForecast(ctx, lat, lon, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return reduceForecast(resp), nil
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (s *Service) geocode(ctx context.Context, location string) (string, string, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.geocodeBaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return "", "", fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", "", fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return "", "", fmt.Errorf("%w: %q", ErrGeocode, location)
	}
	return results[0].Lat, results[0].Lon, nil
}

type forecastResponse struct {
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		WeatherCode              []int     `json:"weathercode"`
		PrecipitationProbability []int     `json:"precipitation_probability"`
		RelativeHumidity2m       []int     `json:"relative_humidity_2m"`
		WindSpeed10m             []float64 `json:"wind_speed_10m"`
	} `json:"hourly"`
	Daily struct {
		Time    []string `json:"time"`
		Sunrise []string `json:"sunrise"`
		Sunset  []string `json:"sunset"`
	} `json:"daily"`
}

func (s *Service) fetchForecast(ctx context.Context, lat, lon, startDate, endDate string) (*forecastResponse, error) {
	q := url.Values{}
	q.Set("latitude", lat)
	q.Set("longitude", lon)
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	q.Set("hourly", "temperature_2m,weathercode,precipitation_probability,relative_humidity_2m,wind_speed_10m")
	q.Set("daily", "sunrise,sunset")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.forecastBaseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request: unexpected status %d", resp.StatusCode)
	}

	var data forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	return &data, nil
}

// reduceForecast picks the 09:00, 15:00 and 21:00 hourly samples for each day.
func reduceForecast(data *forecastResponse) []DailyForecast {
	hourly := data.Hourly

	type daySlots struct {
		morning, afternoon, night *SlotForecast
	}
	byDate := make(map[string]*daySlots)

	for slot, hour := range slotHours {
		for i, t := range hourly.Time {
			if !strings.HasSuffix(t, hour) {
				continue
			}
			date, _, found := strings.Cut(t, "T")
			if !found {
				continue
			}
			sf := &SlotForecast{Conditions: "Unknown"}
			if i < len(hourly.Temperature2m) {
				sf.Temperature = hourly.Temperature2m[i]
			}
			if i < len(hourly.WeatherCode) {
				sf.Conditions = DescribeCode(hourly.WeatherCode[i])
			}
			if i < len(hourly.PrecipitationProbability) {
				sf.PrecipitationChance = hourly.PrecipitationProbability[i]
			}
			if i < len(hourly.RelativeHumidity2m) {
				sf.Humidity = hourly.RelativeHumidity2m[i]
			}
			if i < len(hourly.WindSpeed10m) {
				sf.WindSpeed = hourly.WindSpeed10m[i]
			}

			slots, ok := byDate[date]
			if !ok {
				slots = &daySlots{}
				byDate[date] = slots
			}
			switch slot {
			case "morning":
				slots.morning = sf
			case "afternoon":
				slots.afternoon = sf
			case "night":
				slots.night = sf
			}
		}
	}

	result := make([]DailyForecast, 0, len(data.Daily.Time))
	for i, date := range data.Daily.Time {
		df := DailyForecast{Date: date}
		if i < len(data.Daily.Sunrise) {
			df.Sunrise = clockPart(data.Daily.Sunrise[i])
		}
		if i < len(data.Daily.Sunset) {
			df.Sunset = clockPart(data.Daily.Sunset[i])
		}
		if slots, ok := byDate[date]; ok {
			df.Morning = slots.morning
			df.Afternoon = slots.afternoon
			df.Night = slots.night
		}
		result = append(result, df)
	}
	return result
}

// clockPart extracts HH:MM from an ISO timestamp like "2025-06-25T05:12".
func clockPart(ts string) string {
	if len(ts) < 5 {
		return ts
	}
	return ts[len(ts)-5:]
}
