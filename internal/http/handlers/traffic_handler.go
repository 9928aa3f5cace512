// README: Traffic estimate handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/modules/traffic"
)

const routingCallTimeout = 10 * time.Second

type TrafficHandler struct {
	traffic *traffic.Service
}

func NewTrafficHandler(svc *traffic.Service) *TrafficHandler {
	return &TrafficHandler{traffic: svc}
}

type trafficEstimateReq struct {
	OriginLat float64 `json:"origin_lat"`
	OriginLng float64 `json:"origin_lon"`
	DestLat   float64 `json:"dest_lat"`
	DestLng   float64 `json:"dest_lon"`
	Mode      string  `json:"mode"`
}

// Estimate handles POST /api/traffic/estimate.
func (h *TrafficHandler) Estimate(c *gin.Context) {
	var req trafficEstimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json", "")
		return
	}
	if req.Mode == "" {
		req.Mode = "car"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), routingCallTimeout)
	defer cancel()

	estimate, err := h.traffic.Estimate(ctx, traffic.EstimateRequest{
		OriginLat: req.OriginLat,
		OriginLng: req.OriginLng,
		DestLat:   req.DestLat,
		DestLng:   req.DestLng,
		Mode:      req.Mode,
	})
	if err != nil {
		writeTrafficError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, estimate)
}
