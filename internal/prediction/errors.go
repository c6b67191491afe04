package prediction

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable classification carried by every error payload.
type Kind string

const (
	KindMalformedRequest  Kind = "malformed_request"
	KindEmptyRequest      Kind = "empty_request"
	KindInvalidCoordinate Kind = "invalid_coordinate"
	KindPredictionFailed  Kind = "prediction_failed"
	KindModelUnavailable  Kind = "model_unavailable"
)

// ErrEmptyRequest is returned when the request contains an empty location list.
var ErrEmptyRequest = errors.New("request contains no locations")

// MalformedRequestError reports a structurally invalid request body.
type MalformedRequestError struct {
	Field  string
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("malformed request: field %s %s", e.Field, e.Reason)
}

// InvalidCoordinateError reports a coordinate outside its valid range.
type InvalidCoordinateError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: %s value %g is outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// PredictionFailedError reports a model inference failure for one location.
// The whole batch is aborted; no partial predictions are returned.
type PredictionFailedError struct {
	Index int
	Err   error
}

func (e *PredictionFailedError) Error() string {
	return fmt.Sprintf("prediction failed for location %d: %v", e.Index, e.Err)
}

func (e *PredictionFailedError) Unwrap() error {
	return e.Err
}

// KindOf classifies err into the wire error taxonomy. The second return is
// false for errors outside the taxonomy.
func KindOf(err error) (Kind, bool) {
	var malformed *MalformedRequestError
	var invalid *InvalidCoordinateError
	var failed *PredictionFailedError

	switch {
	case errors.Is(err, ErrEmptyRequest):
		return KindEmptyRequest, true
	case errors.As(err, &malformed):
		return KindMalformedRequest, true
	case errors.As(err, &invalid):
		return KindInvalidCoordinate, true
	case errors.As(err, &failed):
		return KindPredictionFailed, true
	}
	return "", false
}
