package sphere

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
)

func TestFromAngles(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     r3.Vector
	}{
		{"origin", 0, 0, r3.Vector{X: 1, Y: 0, Z: 0}},
		{"east", 0, math.Pi / 2, r3.Vector{X: 0, Y: 1, Z: 0}},
		{"north pole", math.Pi / 2, 0, r3.Vector{X: 0, Y: 0, Z: 1}},
		{"south pole", -math.Pi / 2, 0, r3.Vector{X: 0, Y: 0, Z: -1}},
		{"antimeridian", 0, math.Pi, r3.Vector{X: -1, Y: 0, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromAngles(tt.lat, tt.lon)
			if math.Abs(got.X-tt.want.X) > 1e-15 ||
				math.Abs(got.Y-tt.want.Y) > 1e-15 ||
				math.Abs(got.Z-tt.want.Z) > 1e-15 {
				t.Errorf("FromAngles(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestAnglesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		lat := (rng.Float64() - 0.5) * math.Pi * 0.98 // stay off the poles
		lon := (rng.Float64() - 0.5) * 2 * math.Pi

		gotLat, gotLon := ToAngles(FromAngles(lat, lon))
		if math.Abs(gotLat-lat) > 1e-12 {
			t.Fatalf("latitude round trip: got %v, want %v", gotLat, lat)
		}
		if math.Abs(gotLon-lon) > 1e-12 {
			t.Fatalf("longitude round trip: got %v, want %v", gotLon, lon)
		}
	}
}

func TestToAnglesUnnormalized(t *testing.T) {
	// ToAngles divides by the norm, so scaled vectors give the same angles.
	lat, lon := ToAngles(r3.Vector{X: 0, Y: 0, Z: 3.5})
	if math.Abs(lat-math.Pi/2) > 1e-15 {
		t.Errorf("expected lat pi/2 for scaled pole vector, got %v", lat)
	}
	_ = lon // longitude undefined at the pole
}

func TestWrapLonDegrees(t *testing.T) {
	tests := []struct {
		lon, delta, want float64
	}{
		{10, 20, 30},
		{350, 20, 10},
		{0, -1, 359},
		{-725, 0, 355},
		{360, 0, 0},
		{720, 5, 5},
	}

	for _, tt := range tests {
		got := WrapLonDegrees(tt.lon, tt.delta)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapLonDegrees(%v, %v) = %v, want %v", tt.lon, tt.delta, got, tt.want)
		}
	}
}

func TestWrapLonRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		lon := (rng.Float64() - 0.5) * 5000
		delta := (rng.Float64() - 0.5) * 5000

		deg := WrapLonDegrees(lon, delta)
		if deg < 0 || deg >= 360 {
			t.Fatalf("WrapLonDegrees(%v, %v) = %v, outside [0, 360)", lon, delta, deg)
		}

		rad := WrapLonRadians(lon, delta)
		if rad < 0 || rad >= 2*math.Pi {
			t.Fatalf("WrapLonRadians(%v, %v) = %v, outside [0, 2pi)", lon, delta, rad)
		}
	}
}

func TestShiftLatLon(t *testing.T) {
	tests := []struct {
		name             string
		lon, lat         float64
		dlon, dlat       float64
		clip             bool
		wantLon, wantLat float64
	}{
		{"plain shift", 100, 20, 5, -3, false, 105, 17},
		{"no wrap without clip", 359, 0, 5, 0, false, 364, 0},
		{"clip high lon", 359, 0, 5, 0, true, 360, 0},
		{"clip low lon", 1, 0, -5, 0, true, 0, 0},
		{"clip north", 0, 89, 0, 5, true, 0, 90},
		{"clip south", 0, -89, 0, -5, true, 0, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLon, gotLat := ShiftLatLon(tt.lon, tt.lat, tt.dlon, tt.dlat, tt.clip)
			if gotLon != tt.wantLon || gotLat != tt.wantLat {
				t.Errorf("ShiftLatLon() = (%v, %v), want (%v, %v)",
					gotLon, gotLat, tt.wantLon, tt.wantLat)
			}
		})
	}
}
