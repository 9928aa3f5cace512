// README: Orchestrates weather fetch, prompt build, LLM call, and normalization.
package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wanderwise/internal/ai"
	"wanderwise/internal/modules/weather"
)

const processedBy = "wanderwise-travel-service"

// Fallbacks applied when a request omits or corrupts a numeric parameter.
const (
	defaultDurationDays = 3
)

// ForecastProvider supplies a per-day forecast for a destination. A failure
// here degrades the request to "no weather available"; it never aborts it.
type ForecastProvider interface {
	GetForecast(ctx context.Context, destination, startDate string, days int) ([]weather.DailyForecast, error)
}

// Service runs the planning pipeline. Each request owns its data
// exclusively; the service itself holds no mutable state.
type Service struct {
	llm      ai.LLMProvider
	forecast ForecastProvider
}

// NewService creates a planner Service. forecast may be nil, in which case
// every plan is generated without weather data.
func NewService(llm ai.LLMProvider, forecast ForecastProvider) *Service {
	return &Service{llm: llm, forecast: forecast}
}

// GenerateCommand is a request for a fresh plan.
type GenerateCommand struct {
	Trip    TripRequest
	Catalog *Catalog
}

// CustomizeCommand is a request to edit a previously generated plan.
type CustomizeCommand struct {
	OriginalPlan    *TripPlan
	EditInstruction string
}

// GeneratePlan validates the request, fetches weather, builds the prompt,
// invokes the LLM exactly once, and normalizes the result into the response
// envelope.
func (s *Service) GeneratePlan(ctx context.Context, cmd GenerateCommand) (*PlanResult, error) {
	trip := cmd.Trip
	trip.Destination = strings.TrimSpace(trip.Destination)
	if trip.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrValidation)
	}
	if trip.DurationDays < 1 {
		trip.DurationDays = defaultDurationDays
	}
	if trip.Budget < 0 {
		trip.Budget = 0
	}

	if !cmd.Catalog.HasData() {
		return nil, fmt.Errorf("%w for %s", ErrNoData, trip.Destination)
	}

	forecast := s.fetchForecast(ctx, trip)

	summary := Summarize(cmd.Catalog)
	prompt := BuildGeneratePrompt(trip, summary, forecast)

	raw, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLM, err)
	}

	plan, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	return &PlanResult{
		Success:      true,
		Destination:  trip.Destination,
		Origin:       trip.Origin,
		DurationDays: trip.DurationDays,
		StartDate:    trip.StartDate,
		Budget:       trip.Budget,
		TripPlan:     plan,
		DataSummary: DataSummary{
			WeatherAvailable: len(forecast) > 0,
			DataSource:       dataSource(cmd.Catalog),
			SpotsCount:       len(cmd.Catalog.Spots),
			HotelsCount:      len(cmd.Catalog.Hotels),
			RestaurantsCount: len(cmd.Catalog.Restaurants),
			ProcessedBy:      processedBy,
		},
	}, nil
}

// CustomizePlan re-invokes the LLM with the prior plan and the edit request
// as context. No catalog or weather is re-fetched.
func (s *Service) CustomizePlan(ctx context.Context, cmd CustomizeCommand) (*PlanResult, error) {
	if cmd.OriginalPlan == nil {
		return nil, fmt.Errorf("%w: original_plan is required", ErrValidation)
	}
	instruction := strings.TrimSpace(cmd.EditInstruction)
	if instruction == "" {
		return nil, fmt.Errorf("%w: edit_instruction is required", ErrValidation)
	}

	prompt := BuildCustomizePrompt(cmd.OriginalPlan, instruction)

	raw, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLM, err)
	}

	plan, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	origin := cmd.OriginalPlan.TripSummary
	return &PlanResult{
		Success:      true,
		Destination:  origin.Destination,
		Origin:       origin.Origin,
		DurationDays: origin.Duration,
		StartDate:    origin.StartDate,
		Budget:       origin.TotalBudget,
		TripPlan:     plan,
		DataSummary: DataSummary{
			DataSource:  "original_plan",
			ProcessedBy: processedBy,
		},
		Customization: &Customization{
			EditInstruction: instruction,
			Customized:      true,
		},
	}, nil
}

func (s *Service) fetchForecast(ctx context.Context, trip TripRequest) []weather.DailyForecast {
	if s.forecast == nil {
		return nil
	}
	forecast, err := s.forecast.GetForecast(ctx, trip.Destination, trip.StartDate, trip.DurationDays)
	if err != nil {
		log.Printf("weather unavailable for %s: %v", trip.Destination, err)
		return nil
	}
	return forecast
}

func dataSource(catalog *Catalog) string {
	if catalog.DataSource != "" {
		return catalog.DataSource
	}
	return "destination-catalog"
}
