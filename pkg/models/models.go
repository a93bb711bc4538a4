package models

import "time"

// Location represents a geographic location with latitude and longitude
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// School is a registered school. Records are never updated once stored.
type School struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// Location returns the school's coordinates
func (s School) Location() Location {
	return Location{Lat: s.Latitude, Lon: s.Longitude}
}

// NewSchool is a validated registration waiting for the store to assign an ID
type NewSchool struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RankedSchool is a school together with its distance from a query point.
// DistanceKm is rounded to 2 decimals.
type RankedSchool struct {
	School
	DistanceKm float64 `json:"distance_km"`
}
