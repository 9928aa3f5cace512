// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/modules/planner"
	"wanderwise/internal/modules/traffic"
)

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeFailure(c *gin.Context, status int, errMsg, message string) {
	writeJSON(c, status, failureResponse{Success: false, Error: errMsg, Message: message})
}

// writePlannerError maps the planner error taxonomy to HTTP statuses.
// Every failure path ends in a structured body; nothing escapes as an
// opaque transport error.
func writePlannerError(c *gin.Context, err error) {
	var parseErr *planner.ParseError
	switch {
	case errors.Is(err, planner.ErrValidation):
		writeFailure(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, planner.ErrNoData):
		writeJSON(c, http.StatusNotFound, gin.H{
			"success":     false,
			"error":       err.Error(),
			"message":     "The destination was not found in our database. Please check the spelling or try a different destination.",
			"data_source": "no-data-found",
		})
	case errors.As(err, &parseErr):
		writeJSON(c, http.StatusBadGateway, gin.H{
			"success":      false,
			"error":        parseErr.Error(),
			"raw_response": parseErr.RawExcerpt,
		})
	case errors.Is(err, planner.ErrLLM):
		writeFailure(c, http.StatusBadGateway, err.Error(), "Failed to plan trip")
	default:
		writeFailure(c, http.StatusInternalServerError, "internal error", "")
	}
}

func writeTrafficError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, traffic.ErrInvalidMode):
		writeFailure(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, traffic.ErrNoRoute):
		writeFailure(c, http.StatusNotFound, err.Error(), "")
	default:
		writeFailure(c, http.StatusBadGateway, "routing service error", "")
	}
}
