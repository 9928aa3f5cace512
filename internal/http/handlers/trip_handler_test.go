// README: Integration tests for trip handler request mapping and error codes.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/http/handlers"
	"wanderwise/internal/modules/planner"
)

// stubLLM is a test double for ai.LLMProvider.
type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) GenerateText(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const planJSON = `{
	"trip_summary": {"origin": "Dhaka", "destination": "Sylhet", "start_date": "2025-06-25", "duration": 2, "total_budget": 50000},
	"daily_itinerary": [
		{"day": 1, "date": "2025-06-25",
		 "morning_activity": {"spot_name": "Jaflong Tea Garden", "time": "09:00", "entry_fee": 50},
		 "day_budget": {"accommodation": 3000, "meals": 1500, "activities": 500, "transport": 800, "total": 5800}}
	],
	"budget_summary": {"grand_total": 48000, "remaining": 2000}
}`

func testCatalog() *planner.Catalog {
	return &planner.Catalog{
		Success:    true,
		DataSource: "backend",
		Spots: []planner.Spot{
			{SpotName: "Jaflong Tea Garden", EntryFee: 50},
			{SpotName: "Ratargul Swamp Forest", EntryFee: 100},
		},
		Hotels: []planner.Hotel{
			{HotelName: "Hotel Noorjahan Grand", PriceMin: 3000, PriceMax: 6000, Rating: 4.5},
		},
		Restaurants: []planner.Restaurant{
			{RestaurantName: "Woondal Restaurant", CuisineType: "Bangladeshi"},
		},
	}
}

// buildTestRouter wires a minimal Gin engine with the trip handler on top of
// a planner service backed by the stub model. No forecast provider is set,
// so plans report weather as unavailable.
func buildTestRouter(llm *stubLLM) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := planner.NewService(llm, nil)
	r := gin.New()
	h := handlers.NewTripHandler(svc)
	r.POST("/api/trips/plan", h.PlanTrip)
	r.POST("/api/trips/customize", h.CustomizeTrip)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func planRequestBody() map[string]any {
	return map[string]any{
		"origin":        "Dhaka",
		"destination":   "Sylhet",
		"start_date":    "2025-06-25",
		"duration_days": 2,
		"budget":        50000,
		"catalog":       testCatalog(),
	}
}

// TestPlanTrip_Success verifies the happy path: a 200 response carrying the
// full result envelope.
func TestPlanTrip_Success(t *testing.T) {
	llm := &stubLLM{response: planJSON}
	r := buildTestRouter(llm)

	w := doRequest(r, http.MethodPost, "/api/trips/plan", planRequestBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result planner.PlanResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !result.Success {
		t.Error("expected success = true")
	}
	if result.Destination != "Sylhet" || result.Origin != "Dhaka" {
		t.Errorf("echoed trip = %s -> %s", result.Origin, result.Destination)
	}
	if result.TripPlan == nil || len(result.TripPlan.DailyItinerary) != 1 {
		t.Fatal("expected a parsed plan with one day")
	}
	morning := result.TripPlan.DailyItinerary[0].MorningActivity
	if morning == nil || morning.ImageURL != "/trip-images/jaflong_tea_garden.jpg" {
		t.Errorf("morning activity image not resolved: %+v", morning)
	}
	if result.DataSummary.SpotsCount != 2 || result.DataSummary.HotelsCount != 1 {
		t.Errorf("data_summary counts = %+v", result.DataSummary)
	}
	if llm.calls != 1 {
		t.Errorf("expected exactly one model call, got %d", llm.calls)
	}
}

// TestPlanTrip_NoData verifies that an unsuccessful catalog becomes a 404
// with the not-found body shape and without calling the model.
func TestPlanTrip_NoData(t *testing.T) {
	llm := &stubLLM{response: planJSON}
	r := buildTestRouter(llm)

	body := planRequestBody()
	body["catalog"] = &planner.Catalog{Success: false}
	w := doRequest(r, http.MethodPost, "/api/trips/plan", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no-data-found") {
		t.Errorf("expected no-data-found marker, got %s", w.Body.String())
	}
	if llm.calls != 0 {
		t.Errorf("model must not be called without data, got %d calls", llm.calls)
	}
}

// TestPlanTrip_MissingDestination verifies validation failures map to 400.
func TestPlanTrip_MissingDestination(t *testing.T) {
	llm := &stubLLM{response: planJSON}
	r := buildTestRouter(llm)

	body := planRequestBody()
	body["destination"] = "   "
	w := doRequest(r, http.MethodPost, "/api/trips/plan", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if llm.calls != 0 {
		t.Errorf("model must not be called on invalid input, got %d calls", llm.calls)
	}
}

// TestPlanTrip_MalformedJSON verifies broken request bodies map to 400.
func TestPlanTrip_MalformedJSON(t *testing.T) {
	r := buildTestRouter(&stubLLM{response: planJSON})

	req := httptest.NewRequest(http.MethodPost, "/api/trips/plan", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// TestPlanTrip_UnparsableModelOutput verifies that model output which is not
// valid JSON maps to 502 and carries the raw excerpt for debugging.
func TestPlanTrip_UnparsableModelOutput(t *testing.T) {
	llm := &stubLLM{response: "Sure! Here is your itinerary: day one you should..."}
	r := buildTestRouter(llm)

	w := doRequest(r, http.MethodPost, "/api/trips/plan", planRequestBody())
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	raw, _ := body["raw_response"].(string)
	if !strings.Contains(raw, "Sure! Here is your itinerary") {
		t.Errorf("expected raw_response excerpt, got %v", body)
	}
}

// TestCustomizeTrip_Success verifies the customize flow returns the edited
// plan with the customization block set.
func TestCustomizeTrip_Success(t *testing.T) {
	llm := &stubLLM{response: planJSON}
	r := buildTestRouter(llm)

	var original planner.TripPlan
	if err := json.Unmarshal([]byte(planJSON), &original); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	w := doRequest(r, http.MethodPost, "/api/trips/customize", map[string]any{
		"original_plan":    original,
		"edit_instruction": "add more street food options",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result planner.PlanResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.Customization == nil || !result.Customization.Customized {
		t.Fatalf("expected customization block, got %+v", result.Customization)
	}
	if result.Customization.EditInstruction != "add more street food options" {
		t.Errorf("edit_instruction = %q", result.Customization.EditInstruction)
	}
	if result.DataSummary.DataSource != "original_plan" {
		t.Errorf("data_source = %q", result.DataSummary.DataSource)
	}
}

// TestCustomizeTrip_MissingInstruction verifies an empty instruction is a 400
// and never reaches the model.
func TestCustomizeTrip_MissingInstruction(t *testing.T) {
	llm := &stubLLM{response: planJSON}
	r := buildTestRouter(llm)

	var original planner.TripPlan
	if err := json.Unmarshal([]byte(planJSON), &original); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	w := doRequest(r, http.MethodPost, "/api/trips/customize", map[string]any{
		"original_plan":    original,
		"edit_instruction": "",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if llm.calls != 0 {
		t.Errorf("model must not be called on invalid input, got %d calls", llm.calls)
	}
}
