package prediction

import (
	"errors"
	"strings"
	"testing"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/types"
)

func ptr(v float64) *float64 {
	return &v
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name         string
		req          Request
		maxLocations int
		want         []types.Coords
		wantKind     Kind
		errContains  string
	}{
		{
			name: "single valid location",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(33.6844), Longitude: ptr(73.0479)},
			}},
			maxLocations: 100,
			want:         []types.Coords{{Latitude: 33.6844, Longitude: 73.0479}},
		},
		{
			name: "multiple locations preserve order",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(10), Longitude: ptr(20)},
				{Latitude: ptr(-30), Longitude: ptr(40)},
				{Latitude: ptr(50), Longitude: ptr(-60)},
			}},
			maxLocations: 100,
			want: []types.Coords{
				{Latitude: 10, Longitude: 20},
				{Latitude: -30, Longitude: 40},
				{Latitude: 50, Longitude: -60},
			},
		},
		{
			name: "boundary coordinates are valid",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(90.0), Longitude: ptr(-180.0)},
				{Latitude: ptr(-90.0), Longitude: ptr(180.0)},
				{Latitude: ptr(0.0), Longitude: ptr(0.0)},
			}},
			maxLocations: 100,
			want: []types.Coords{
				{Latitude: 90, Longitude: -180},
				{Latitude: -90, Longitude: 180},
				{Latitude: 0, Longitude: 0},
			},
		},
		{
			name:         "missing locations key",
			req:          Request{},
			maxLocations: 100,
			wantKind:     KindMalformedRequest,
			errContains:  "locations",
		},
		{
			name:         "empty locations list",
			req:          Request{Locations: []LocationInput{}},
			maxLocations: 100,
			wantKind:     KindEmptyRequest,
		},
		{
			name: "too many locations",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(1), Longitude: ptr(1)},
				{Latitude: ptr(2), Longitude: ptr(2)},
				{Latitude: ptr(3), Longitude: ptr(3)},
			}},
			maxLocations: 2,
			wantKind:     KindMalformedRequest,
			errContains:  "maximum is 2",
		},
		{
			name: "missing latitude names field and index",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(1), Longitude: ptr(1)},
				{Longitude: ptr(2)},
			}},
			maxLocations: 100,
			wantKind:     KindMalformedRequest,
			errContains:  "locations[1].Latitude",
		},
		{
			name: "missing longitude names field and index",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(1)},
			}},
			maxLocations: 100,
			wantKind:     KindMalformedRequest,
			errContains:  "locations[0].Longitude",
		},
		{
			name: "latitude out of range",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(999.0), Longitude: ptr(0.0)},
			}},
			maxLocations: 100,
			wantKind:     KindInvalidCoordinate,
			errContains:  "999",
		},
		{
			name: "latitude below range",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(-90.5), Longitude: ptr(0.0)},
			}},
			maxLocations: 100,
			wantKind:     KindInvalidCoordinate,
			errContains:  "locations[0].Latitude",
		},
		{
			name: "longitude out of range",
			req: Request{Locations: []LocationInput{
				{Latitude: ptr(0.0), Longitude: ptr(180.1)},
			}},
			maxLocations: 100,
			wantKind:     KindInvalidCoordinate,
			errContains:  "locations[0].Longitude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRequest(tt.req, tt.maxLocations)

			if tt.wantKind != "" {
				if err == nil {
					t.Fatal("ValidateRequest() expected error but got none")
				}
				kind, ok := KindOf(err)
				if !ok {
					t.Fatalf("ValidateRequest() error %v is outside the taxonomy", err)
				}
				if kind != tt.wantKind {
					t.Errorf("KindOf() = %v, want %v", kind, tt.wantKind)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ValidateRequest() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("ValidateRequest() unexpected error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ValidateRequest() returned %d coords, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("coords[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateRequestInvalidCoordinateDetail(t *testing.T) {
	_, err := ValidateRequest(Request{Locations: []LocationInput{
		{Latitude: ptr(999.0), Longitude: ptr(0.0)},
	}}, 100)

	var invalid *InvalidCoordinateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidCoordinateError, got %v", err)
	}
	if invalid.Value != 999 {
		t.Errorf("Value = %v, want 999", invalid.Value)
	}
	if invalid.Min != MinLatitude || invalid.Max != MaxLatitude {
		t.Errorf("bounds = [%v, %v], want [%v, %v]", invalid.Min, invalid.Max, MinLatitude, MaxLatitude)
	}
}
