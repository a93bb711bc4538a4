package validate

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/kass/go-school-locator/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		name  string
		input any
		want  float64
		ok    bool
	}{
		{"float64", 12.5, 12.5, true},
		{"float32", float32(0.5), 0.5, true},
		{"int", 10, 10, true},
		{"int64", int64(-45), -45, true},
		{"json number", json.Number("47.6062"), 47.6062, true},
		{"string", "-122.3321", -122.3321, true},
		{"padded string", "  10 ", 10, true},
		{"nil", nil, 0, false},
		{"empty string", "", 0, false},
		{"blank string", "   ", 0, false},
		{"word", "north", 0, false},
		{"bool", true, 0, false},
		{"NaN string", "NaN", 0, false},
		{"Inf string", "+Inf", 0, false},
		{"NaN float", math.NaN(), 0, false},
		{"bad json number", json.Number("1e"), 0, false},
		{"overflowing json number", json.Number("1e400"), 0, false},
		{"hex float string", "0x1p-2", 0, false},
		{"signed hex string", "-0X10", 0, false},
		{"leading zero decimal", "0.25", 0.25, true},
		{"slice", []any{1.0}, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseNumber(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSchoolValid(t *testing.T) {
	s, problems := School("  Test School ", "1 Test St", 10, "10")
	require.Empty(t, problems)
	assert.Equal(t, models.NewSchool{
		Name:      "Test School",
		Address:   "1 Test St",
		Latitude:  10,
		Longitude: 10,
	}, s)
}

func TestSchoolBoundaries(t *testing.T) {
	for _, c := range [][2]float64{{90, 180}, {-90, -180}, {0, 0}} {
		_, problems := School("a", "b", c[0], c[1])
		assert.Empty(t, problems, "coordinates %v", c)
	}
}

func TestSchoolCollectsEveryProblem(t *testing.T) {
	s, problems := School(nil, "   ", "abc", 200.0)
	assert.Equal(t, models.NewSchool{}, s)
	assert.Equal(t, []string{
		"name is required and must be a non-empty string",
		"address is required and must be a non-empty string",
		"latitude is required and must be a valid number",
		"longitude must be between -180 and 180",
	}, problems)
}

func TestSchoolRejectsNonStringText(t *testing.T) {
	_, problems := School(42, []string{"x"}, 1, 1)
	assert.Len(t, problems, 2)
}

func TestSchoolLatitudeOutOfRange(t *testing.T) {
	_, problems := School("Test School", "1 Test St", 91, 10)
	require.Len(t, problems, 1)
	assert.Equal(t, "latitude must be between -90 and 90", problems[0])
}

func TestPoint(t *testing.T) {
	testCases := []struct {
		name     string
		lat, lon any
		want     models.Location
		problems []string
	}{
		{"valid strings", "47.6062", "-122.3321", models.Location{Lat: 47.6062, Lon: -122.3321}, nil},
		{"missing both", nil, nil, models.Location{}, []string{
			"latitude is required and must be a valid number",
			"longitude is required and must be a valid number",
		}},
		{"latitude too low", -90.01, 0, models.Location{}, []string{"latitude must be between -90 and 90"}},
		{"longitude too high", 0, "180.5", models.Location{}, []string{"longitude must be between -180 and 180"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, problems := Point(tc.lat, tc.lon)
			assert.Equal(t, tc.want, loc)
			assert.Equal(t, tc.problems, problems)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Problems: []string{"a", "b"}}
	assert.EqualError(t, err, "validation failed: a; b")
}
