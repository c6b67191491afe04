package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/metrics"
	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/prediction"
	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/types"
)

// PredictResponse carries one pollutant reading per requested location,
// in request order.
type PredictResponse struct {
	Predictions []types.Concentrations `json:"predictions"`
}

// ErrorResponse is the wire shape for every error payload
type ErrorResponse struct {
	Kind    string `json:"kind" example:"invalid_coordinate"`
	Message string `json:"message" example:"invalid coordinate: locations[0].Latitude value 999 is outside [-90, 90]"`
}

// handlePredict godoc
// @Summary Predict pollutant concentrations
// @Description Accepts a list of Latitude/Longitude pairs and returns the predicted concentrations for PM2.5, PM10, O3, NO2, CO and SO2 for each location, in request order.
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body prediction.Request true "Locations to predict for"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predict [post]
func (app *App) handlePredict(c *gin.Context) {
	var req prediction.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ObservePrediction(string(prediction.KindMalformedRequest), 0)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Kind:    string(prediction.KindMalformedRequest),
			Message: "request body could not be decoded: " + err.Error(),
		})
		return
	}

	// Validate before any inference work happens
	coords, err := prediction.ValidateRequest(req, app.cfg.App.MaxLocations)
	if err != nil {
		kind, ok := prediction.KindOf(err)
		if !ok {
			kind = prediction.KindMalformedRequest
		}
		metrics.ObservePrediction(string(kind), len(req.Locations))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Kind:    string(kind),
			Message: err.Error(),
		})
		return
	}

	readings, err := app.predictionService.Predict(c.Request.Context(), coords)
	if err != nil {
		app.logger.Error("prediction failed",
			"locations", len(coords),
			"error", err,
		)
		metrics.ObservePrediction(string(prediction.KindPredictionFailed), len(coords))

		// Name the offending location without leaking model internals
		message := "failed to produce predictions"
		var failed *prediction.PredictionFailedError
		if errors.As(err, &failed) {
			message = fmt.Sprintf("prediction failed for location %d", failed.Index)
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Kind:    string(prediction.KindPredictionFailed),
			Message: message,
		})
		return
	}

	metrics.ObservePrediction("success", len(coords))
	c.JSON(http.StatusOK, PredictResponse{Predictions: readings})
}
