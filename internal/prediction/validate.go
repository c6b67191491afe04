package prediction

import (
	"fmt"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/types"
)

// LocationInput is one location in the request body. Pointer fields
// distinguish an absent coordinate from a legitimate zero.
type LocationInput struct {
	Latitude  *float64 `json:"Latitude"`
	Longitude *float64 `json:"Longitude"`
}

// Request is the decoded /predict request body.
type Request struct {
	Locations []LocationInput `json:"locations"`
}

// Coordinate bounds in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ValidateRequest checks a decoded request body and returns the ordered
// coordinate list, or the first validation error found. It is a pure
// function: no inference work happens until the whole request is valid.
func ValidateRequest(req Request, maxLocations int) ([]types.Coords, error) {
	if req.Locations == nil {
		return nil, &MalformedRequestError{Field: "locations", Reason: "is missing"}
	}
	if len(req.Locations) == 0 {
		return nil, ErrEmptyRequest
	}
	if len(req.Locations) > maxLocations {
		return nil, &MalformedRequestError{
			Field:  "locations",
			Reason: fmt.Sprintf("has %d entries, maximum is %d", len(req.Locations), maxLocations),
		}
	}

	coords := make([]types.Coords, 0, len(req.Locations))
	for i, loc := range req.Locations {
		if loc.Latitude == nil {
			return nil, &MalformedRequestError{
				Field:  fmt.Sprintf("locations[%d].Latitude", i),
				Reason: "is missing",
			}
		}
		if loc.Longitude == nil {
			return nil, &MalformedRequestError{
				Field:  fmt.Sprintf("locations[%d].Longitude", i),
				Reason: "is missing",
			}
		}

		lat, lon := *loc.Latitude, *loc.Longitude
		if lat < MinLatitude || lat > MaxLatitude {
			return nil, &InvalidCoordinateError{
				Field: fmt.Sprintf("locations[%d].Latitude", i),
				Value: lat,
				Min:   MinLatitude,
				Max:   MaxLatitude,
			}
		}
		if lon < MinLongitude || lon > MaxLongitude {
			return nil, &InvalidCoordinateError{
				Field: fmt.Sprintf("locations[%d].Longitude", i),
				Value: lon,
				Min:   MinLongitude,
				Max:   MaxLongitude,
			}
		}

		coords = append(coords, types.NewCoords(lat, lon))
	}

	return coords, nil
}
