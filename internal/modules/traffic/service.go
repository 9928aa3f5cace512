// README: Travel-time estimation via Google Maps Directions.
package traffic

import (
	"context"
	"errors"
	"fmt"
	"math"

	"googlemaps.github.io/maps"
)

var (
	ErrInvalidMode = errors.New("invalid mode, use 'car', 'bus', or 'bike'")
	ErrNoRoute     = errors.New("no route found")
)

// modeProfiles translates user-facing transport modes to Directions API
// travel modes. There is no bus profile; it is approximated by driving.
var modeProfiles = map[string]maps.Mode{
	"car":  maps.TravelModeDriving,
	"bus":  maps.TravelModeDriving,
	"bike": maps.TravelModeBicycling,
}

// Service estimates travel routes. It is auxiliary and independently
// invocable; plan generation does not depend on it.
type Service struct {
	client *maps.Client
}

// NewService creates a traffic Service with the given API key.
func NewService(apiKey string) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// Estimate fetches a route for the requested leg and reduces it to distance,
// duration, and turn-by-turn steps.
func (s *Service) Estimate(ctx context.Context, req EstimateRequest) (*Estimate, error) {
	mode, ok := modeProfiles[req.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	r := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", req.OriginLat, req.OriginLng),
		Destination: fmt.Sprintf("%f,%f", req.DestLat, req.DestLng),
		Mode:        mode,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}

	return buildEstimate(req.Mode, routes)
}

// buildEstimate reduces Directions routes to the estimate shape.
func buildEstimate(mode string, routes []maps.Route) (*Estimate, error) {
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	var (
		meters  int
		seconds float64
		steps   []RouteStep
	)
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		seconds += leg.Duration.Seconds()
		for _, step := range leg.Steps {
			steps = append(steps, RouteStep{
				Instruction: step.HTMLInstructions,
				DistanceM:   float64(step.Distance.Meters),
				DurationS:   step.Duration.Seconds(),
			})
		}
	}

	return &Estimate{
		Mode:             mode,
		DistanceKm:       math.Round(float64(meters)/1000*100) / 100,
		EstimatedTimeMin: math.Round(seconds/60*10) / 10,
		RouteSteps:       steps,
	}, nil
}
