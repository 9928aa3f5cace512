// README: Deterministic prompt templates for generate and customize calls.
package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"wanderwise/internal/modules/weather"
)

// TripRequest carries the validated trip parameters into the prompt.
type TripRequest struct {
	Origin       string
	Destination  string
	StartDate    string
	DurationDays int
	Budget       float64
}

const generatePromptTemplate = `You are creating a %d-day travel itinerary for %s.

## AVAILABLE DATA - USE EXACT NAMES:
%s

## CRITICAL INSTRUCTIONS:
1. Use the EXACT "name" values from the data above:
   - For spots: copy them into "spot_name" exactly as shown
   - For hotels: copy them into "hotel_name" exactly as shown
   - For restaurants: copy them into "restaurant_name" exactly as shown
2. DO NOT invent, rename, or merge entries - only the names listed above may appear
3. Generate exactly %d daily entries in "daily_itinerary"
4. When transportation legs are included, keep times contiguous: each activity's end time must equal the start time of the next transition
5. Budget figures are advisory only - report estimates, do not enforce any arithmetic

## Trip Details:
- From: %s → To: %s
- Start: %s | Duration: %d days
- Budget: %g
- Weather:
%s
## Generate this JSON structure using exact names from data above:
{
  "trip_summary": {
    "origin": "%s",
    "destination": "%s",
    "start_date": "%s",
    "duration": %d,
    "total_budget": %g
  },
  "daily_itinerary": [
    {
      "day": 1,
      "date": "%s",
      "morning_activity": {
        "spot_name": "[USE EXACT spot name FROM DATA]",
        "time": "9:00 AM - 11:00 AM",
        "description": "Activity description",
        "entry_fee": 0,
        "image_url": "/trip-images/spot.jpg"
      },
      "lunch_options": [{
        "restaurant_name": "[USE EXACT restaurant name FROM DATA]",
        "cuisine": "Local",
        "cost_per_person": 300,
        "rating": 4.0,
        "image_url": "/trip-images/restaurant.jpg"
      }],
      "afternoon_activities": [{
        "spot_name": "[USE EXACT spot name FROM DATA]",
        "time": "1:00 PM - 5:00 PM",
        "description": "Activity description",
        "entry_fee": 0,
        "image_url": "/trip-images/spot.jpg"
      }],
      "dinner_options": [{
        "restaurant_name": "[USE EXACT restaurant name FROM DATA]",
        "cuisine": "Local",
        "cost_per_person": 400,
        "rating": 4.0,
        "image_url": "/trip-images/restaurant.jpg"
      }],
      "accommodation_options": [{
        "hotel_name": "[USE EXACT hotel name FROM DATA]",
        "rating": 4.0,
        "cost_per_night": 3000,
        "amenities": "Standard amenities",
        "image_url": "/trip-images/hotel.jpg"
      }],
      "day_budget": {
        "accommodation": 3000,
        "meals": 700,
        "activities": 0,
        "transport": 500,
        "total": 4200
      }
    }
  ],
  "budget_summary": {
    "grand_total": %g,
    "remaining": 0
  }
}

IMPORTANT: Generate exactly %d days using the exact names from the data above.`

// BuildGeneratePrompt renders the trip parameters, catalog summary, and
// forecast into the generation instruction. It is a pure function: identical
// inputs always produce an identical prompt.
func BuildGeneratePrompt(req TripRequest, summary CatalogSummary, forecast []weather.DailyForecast) string {
	catalogJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		// CatalogSummary contains only marshal-safe types.
		catalogJSON = []byte("{}")
	}

	return fmt.Sprintf(generatePromptTemplate,
		req.DurationDays, req.Destination,
		string(catalogJSON),
		req.DurationDays,
		req.Origin, req.Destination,
		req.StartDate, req.DurationDays,
		req.Budget,
		formatWeatherInfo(forecast, req.DurationDays),
		req.Origin, req.Destination, req.StartDate, req.DurationDays, req.Budget,
		req.StartDate,
		req.Budget,
		req.DurationDays,
	)
}

const customizePromptTemplate = `You are an expert travel planner specializing in trip customization. A user has an existing complete trip plan and wants to make specific modifications to it.

## Original Complete Trip Plan:
%s

## User's Modification Request:
"%s"

## Your Task:
Intelligently modify the original trip plan according to the user's request. The original plan contains all the necessary data about available spots, hotels, restaurants, weather, and budget information.

## Customization Guidelines:
1. Preserve Structure: keep the exact same JSON structure as the original plan
2. Smart Changes: only modify what the user specifically requested
3. Use Original Data: use spots, hotels, and restaurants from the original plan's data; never invent new names
4. Budget Awareness: stay within the original budget constraints; the budget remains advisory
5. Logical Consistency: keep activity times contiguous when transport legs are included

## Image URLs:
Use format: "/trip-images/[descriptive_name].jpg" for all activities

Return ONLY the modified trip plan as valid JSON without any explanations or markdown formatting.`

// BuildCustomizePrompt renders the prior plan and the free-form edit
// instruction into the customization instruction. No catalog or weather is
// re-fetched; the serialized plan is the only data source.
func BuildCustomizePrompt(plan *TripPlan, editInstruction string) string {
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		planJSON = []byte("{}")
	}
	return fmt.Sprintf(customizePromptTemplate, string(planJSON), editInstruction)
}

// formatWeatherInfo renders up to dayCount forecast days as indented prompt
// lines, matching the slot granularity the forecast actually has.
func formatWeatherInfo(forecast []weather.DailyForecast, dayCount int) string {
	if len(forecast) == 0 {
		return "Weather data unavailable\n"
	}

	var b strings.Builder
	for i, day := range forecast {
		if i >= dayCount {
			break
		}
		date := day.Date
		if date == "" {
			date = fmt.Sprintf("Day %d", i+1)
		}
		fmt.Fprintf(&b, "Day %d (%s):\n", i+1, date)
		if day.Morning != nil {
			fmt.Fprintf(&b, "  Morning: %s, %g°C, Rain: %d%%, Humidity: %d%%\n",
				day.Morning.Conditions, day.Morning.Temperature,
				day.Morning.PrecipitationChance, day.Morning.Humidity)
		}
		if day.Afternoon != nil {
			fmt.Fprintf(&b, "  Afternoon: %s, %g°C, Rain: %d%%\n",
				day.Afternoon.Conditions, day.Afternoon.Temperature,
				day.Afternoon.PrecipitationChance)
		}
		if day.Night != nil {
			fmt.Fprintf(&b, "  Night: %s, %g°C\n",
				day.Night.Conditions, day.Night.Temperature)
		}
	}
	return b.String()
}
