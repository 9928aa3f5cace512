package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeGeocode serves a Nominatim-shaped response for any query.
func fakeGeocode(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected geocode path %q", r.URL.Path)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("geocode request missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fakeForecast(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected forecast path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") != "24.8949" || q.Get("longitude") != "91.8687" {
			t.Errorf("unexpected coordinates %s,%s", q.Get("latitude"), q.Get("longitude"))
		}
		if q.Get("start_date") != "2025-06-25" || q.Get("end_date") != "2025-06-26" {
			t.Errorf("unexpected date span %s..%s", q.Get("start_date"), q.Get("end_date"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

const geocodeHit = `[{"lat": "24.8949", "lon": "91.8687"}]`

// Two days of hourly data. Day one has all three slots; day two is missing
// the 15:00 sample entirely.
const forecastBody = `{
  "hourly": {
    "time": [
      "2025-06-25T09:00", "2025-06-25T15:00", "2025-06-25T21:00",
      "2025-06-26T09:00", "2025-06-26T21:00"
    ],
    "temperature_2m": [28.5, 33.0, 26.0, 27.0, 25.5],
    "weathercode": [0, 2, 1, 61, 404],
    "precipitation_probability": [10, 20, 5, 80, 15],
    "relative_humidity_2m": [70, 55, 65, 90, 75],
    "wind_speed_10m": [5.5, 8.0, 3.2, 12.0, 4.1]
  },
  "daily": {
    "time": ["2025-06-25", "2025-06-26"],
    "sunrise": ["2025-06-25T05:12", "2025-06-26T05:12"],
    "sunset": ["2025-06-25T18:45", "2025-06-26T18:46"]
  }
}`

func testService(t *testing.T, geocodeBody, forecastBody string) *Service {
	t.Helper()
	geo := fakeGeocode(t, geocodeBody)
	fc := fakeForecast(t, forecastBody)
	return NewService(geo.URL, fc.URL)
}

func TestGetForecastReducesSlots(t *testing.T) {
	svc := testService(t, geocodeHit, forecastBody)

	forecast, err := svc.GetForecast(context.Background(), "Sylhet", "2025-06-25", 2)
	if err != nil {
		t.Fatalf("GetForecast: %v", err)
	}
	if len(forecast) != 2 {
		t.Fatalf("days = %d, want 2", len(forecast))
	}

	day1 := forecast[0]
	if day1.Date != "2025-06-25" {
		t.Errorf("day1 date = %q", day1.Date)
	}
	if day1.Morning == nil || day1.Afternoon == nil || day1.Night == nil {
		t.Fatal("day1 should have all three slots")
	}
	if day1.Morning.Temperature != 28.5 || day1.Morning.Conditions != "Clear sky" {
		t.Errorf("day1 morning = %+v", day1.Morning)
	}
	if day1.Afternoon.Conditions != "Partly cloudy" || day1.Afternoon.PrecipitationChance != 20 {
		t.Errorf("day1 afternoon = %+v", day1.Afternoon)
	}
	if day1.Sunrise != "05:12" || day1.Sunset != "18:45" {
		t.Errorf("day1 sunrise/sunset = %s/%s", day1.Sunrise, day1.Sunset)
	}

	day2 := forecast[1]
	if day2.Afternoon != nil {
		t.Error("day2 afternoon slot must be omitted when upstream lacks the 15:00 hour")
	}
	if day2.Morning == nil || day2.Morning.Conditions != "Slight rain" {
		t.Errorf("day2 morning = %+v", day2.Morning)
	}
	if day2.Night == nil || day2.Night.Conditions != "Unknown" {
		t.Errorf("unknown weather code should map to Unknown, got %+v", day2.Night)
	}
}

func TestGetForecastInvalidDate(t *testing.T) {
	svc := NewService("http://unused.invalid", "http://unused.invalid")

	_, err := svc.GetForecast(context.Background(), "Sylhet", "25-06-2025", 2)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestGetForecastGeocodeMiss(t *testing.T) {
	svc := testService(t, `[]`, forecastBody)

	_, err := svc.GetForecast(context.Background(), "Atlantis", "2025-06-25", 2)
	if !errors.Is(err, ErrGeocode) {
		t.Fatalf("expected ErrGeocode, got %v", err)
	}
}

func TestGetForecastUpstreamFailure(t *testing.T) {
	geo := fakeGeocode(t, geocodeHit)
	fc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(fc.Close)

	svc := NewService(geo.URL, fc.URL)
	_, err := svc.GetForecast(context.Background(), "Sylhet", "2025-06-25", 2)
	if err == nil {
		t.Fatal("expected error on upstream failure")
	}
}

func TestGetForecastMalformedBody(t *testing.T) {
	svc := testService(t, geocodeHit, `{"hourly": "oops"`)

	_, err := svc.GetForecast(context.Background(), "Sylhet", "2025-06-25", 2)
	if err == nil {
		t.Fatal("expected error on malformed forecast body")
	}
}
