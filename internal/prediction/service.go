// Package prediction validates incoming prediction requests and dispatches
// them to the loaded model.
package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/model"
	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/types"
)

// Predictor runs model inference for one feature vector. *model.Artifact
// satisfies this; tests substitute mocks.
type Predictor interface {
	Features() []string
	Targets() []string
	Predict(features []float64) ([]float64, error)
}

// Service produces pollutant predictions for validated coordinates
type Service interface {
	// Predict returns one reading per coordinate, in input order. A failure
	// for any coordinate aborts the whole batch.
	Predict(ctx context.Context, locations []types.Coords) ([]types.Concentrations, error)
}

type predictionService struct {
	predictor Predictor
	logger    *slog.Logger
}

// NewService creates a prediction service backed by the given predictor
func NewService(predictor Predictor, logger *slog.Logger) Service {
	return &predictionService{
		predictor: predictor,
		logger:    logger.With("component", "prediction-service"),
	}
}

func (s *predictionService) Predict(ctx context.Context, locations []types.Coords) ([]types.Concentrations, error) {
	featureNames := s.predictor.Features()
	targets := s.predictor.Targets()

	readings := make([]types.Concentrations, 0, len(locations))
	for i, loc := range locations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		features, err := featureVector(featureNames, loc)
		if err != nil {
			return nil, &PredictionFailedError{Index: i, Err: err}
		}

		values, err := s.predictor.Predict(features)
		if err != nil {
			s.logger.Error("model inference failed",
				"index", i,
				"latitude", loc.Latitude,
				"longitude", loc.Longitude,
				"error", err,
			)
			return nil, &PredictionFailedError{Index: i, Err: err}
		}
		if len(values) != len(targets) {
			return nil, &PredictionFailedError{
				Index: i,
				Err:   fmt.Errorf("model returned %d values for %d targets", len(values), len(targets)),
			}
		}

		reading := make(types.Concentrations, len(targets))
		for ti, name := range targets {
			v := values[ti]
			// Regression output may undershoot zero; concentrations cannot.
			if v < 0 {
				v = 0
			}
			reading[types.Pollutant(name)] = v
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// featureVector materializes the features the artifact declares, in order.
func featureVector(names []string, loc types.Coords) ([]float64, error) {
	features := make([]float64, len(names))
	for i, name := range names {
		switch name {
		case model.FeatureLatitude:
			features[i] = loc.Latitude
		case model.FeatureLongitude:
			features[i] = loc.Longitude
		case model.FeatureSinLatitude:
			features[i] = math.Sin(loc.Latitude * math.Pi / 180)
		case model.FeatureCosLatitude:
			features[i] = math.Cos(loc.Latitude * math.Pi / 180)
		case model.FeatureSinLongitude:
			features[i] = math.Sin(loc.Longitude * math.Pi / 180)
		case model.FeatureCosLongitude:
			features[i] = math.Cos(loc.Longitude * math.Pi / 180)
		default:
			return nil, fmt.Errorf("model expects unknown feature %q", name)
		}
	}
	return features, nil
}
