// README: Route estimate model for the traffic endpoint.
package traffic

// EstimateRequest locates a trip leg by coordinates. Mode is one of
// car, bus, or bike.
type EstimateRequest struct {
	OriginLat float64
	OriginLng float64
	DestLat   float64
	DestLng   float64
	Mode      string
}

// RouteStep is one turn-by-turn instruction of the estimated route.
type RouteStep struct {
	Instruction string  `json:"instruction"`
	DistanceM   float64 `json:"distance_m"`
	DurationS   float64 `json:"duration_s"`
}

// Estimate summarizes a route: total distance, total travel time, and the
// ordered step list.
type Estimate struct {
	Mode             string      `json:"mode"`
	DistanceKm       float64     `json:"distance_km"`
	EstimatedTimeMin float64     `json:"estimated_time_min"`
	RouteSteps       []RouteStep `json:"route_steps"`
}
