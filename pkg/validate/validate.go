// Package validate turns untyped request values into checked school data.
// Every check runs independently and all problems are collected.
package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kass/go-school-locator/pkg/models"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ValidationError reports caller-supplied data that violates the school constraints
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

// School checks a registration. It returns either the normalized record or
// the list of problems, never both.
func School(name, address, latitude, longitude any) (models.NewSchool, []string) {
	var problems []string

	n, ok := text(name)
	if !ok {
		problems = append(problems, "name is required and must be a non-empty string")
	}
	a, ok := text(address)
	if !ok {
		problems = append(problems, "address is required and must be a non-empty string")
	}

	loc, coordProblems := Point(latitude, longitude)
	problems = append(problems, coordProblems...)

	if len(problems) > 0 {
		return models.NewSchool{}, problems
	}
	return models.NewSchool{
		Name:      n,
		Address:   a,
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
	}, nil
}

// Point checks a query coordinate pair.
func Point(latitude, longitude any) (models.Location, []string) {
	var problems []string

	lat, p := coordinate("latitude", latitude, minLatitude, maxLatitude)
	if p != "" {
		problems = append(problems, p)
	}
	lon, p := coordinate("longitude", longitude, minLongitude, maxLongitude)
	if p != "" {
		problems = append(problems, p)
	}

	if len(problems) > 0 {
		return models.Location{}, problems
	}
	return models.Location{Lat: lat, Lon: lon}, nil
}

// ParseNumber converts v into a finite float64. The bool is false when v is
// missing, of an unsupported type, or does not hold a finite number.
func ParseNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" || hexPrefixed(s) {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func coordinate(field string, v any, lo, hi float64) (float64, string) {
	f, ok := ParseNumber(v)
	if !ok {
		return 0, field + " is required and must be a valid number"
	}
	if f < lo || f > hi {
		return 0, fmt.Sprintf("%s must be between %g and %g", field, lo, hi)
	}
	return f, ""
}

func text(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// hexPrefixed reports a 0x/0X mantissa, which strconv.ParseFloat would accept
func hexPrefixed(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
