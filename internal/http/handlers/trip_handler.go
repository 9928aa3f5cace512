// README: Trip handlers for plan generation and customization.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/modules/planner"
)

// llmCallTimeout bounds a single generation call; the model is the slowest
// upstream by far.
const llmCallTimeout = 60 * time.Second

type TripHandler struct {
	planner *planner.Service
}

func NewTripHandler(svc *planner.Service) *TripHandler {
	return &TripHandler{planner: svc}
}

type planTripReq struct {
	Origin       string           `json:"origin"`
	Destination  string           `json:"destination"`
	StartDate    string           `json:"start_date"`
	DurationDays int              `json:"duration_days"`
	Budget       float64          `json:"budget"`
	Catalog      *planner.Catalog `json:"catalog"`
}

// PlanTrip handles POST /api/trips/plan.
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req planTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), llmCallTimeout)
	defer cancel()

	result, err := h.planner.GeneratePlan(ctx, planner.GenerateCommand{
		Trip: planner.TripRequest{
			Origin:       req.Origin,
			Destination:  req.Destination,
			StartDate:    req.StartDate,
			DurationDays: req.DurationDays,
			Budget:       req.Budget,
		},
		Catalog: req.Catalog,
	})
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}

type customizeTripReq struct {
	OriginalPlan    *planner.TripPlan `json:"original_plan"`
	EditInstruction string            `json:"edit_instruction"`
}

// CustomizeTrip handles POST /api/trips/customize.
func (h *TripHandler) CustomizeTrip(c *gin.Context) {
	var req customizeTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), llmCallTimeout)
	defer cancel()

	result, err := h.planner.CustomizePlan(ctx, planner.CustomizeCommand{
		OriginalPlan:    req.OriginalPlan,
		EditInstruction: req.EditInstruction,
	})
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}
