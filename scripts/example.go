package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kass/go-school-locator/pkg/directory"
	"github.com/kass/go-school-locator/pkg/geo"
	"github.com/kass/go-school-locator/pkg/logging"
	"github.com/kass/go-school-locator/pkg/store"
	"github.com/kass/go-school-locator/pkg/validate"
)

func main() {
	ctx := context.Background()

	// In-memory directory, no database needed
	st := store.NewMemoryStore()
	svc := directory.NewService(st, logging.Discard())

	// One school per major US city
	schools := []directory.RegisterRequest{
		{Name: "NYC Prep", Address: "New York, NY", Latitude: 40.7128, Longitude: -74.0060},
		{Name: "LA Academy", Address: "Los Angeles, CA", Latitude: 34.0522, Longitude: -118.2437},
		{Name: "Chicago Central", Address: "Chicago, IL", Latitude: 41.8781, Longitude: -87.6298},
		{Name: "Houston High", Address: "Houston, TX", Latitude: 29.7604, Longitude: -95.3698},
		{Name: "Phoenix Prep", Address: "Phoenix, AZ", Latitude: 33.4484, Longitude: -112.0740},
		{Name: "Philadelphia Latin", Address: "Philadelphia, PA", Latitude: 39.9526, Longitude: -75.1652},
		{Name: "San Antonio High", Address: "San Antonio, TX", Latitude: 29.4241, Longitude: -98.4936},
		{Name: "San Diego Bay School", Address: "San Diego, CA", Latitude: 32.7157, Longitude: -117.1611},
		{Name: "Dallas Magnet", Address: "Dallas, TX", Latitude: 32.7767, Longitude: -96.7970},
		{Name: "San Jose Tech", Address: "San Jose, CA", Latitude: 37.3382, Longitude: -121.8863},
		{Name: "Austin Science", Address: "Austin, TX", Latitude: 30.2672, Longitude: -97.7431},
		{Name: "Jacksonville Arts", Address: "Jacksonville, FL", Latitude: 30.3322, Longitude: -81.6557},
		{Name: "Golden Gate High", Address: "San Francisco, CA", Latitude: 37.7749, Longitude: -122.4194},
		{Name: "Columbus North", Address: "Columbus, OH", Latitude: 39.9612, Longitude: -82.9988},
		{Name: "Charlotte Early College", Address: "Charlotte, NC", Latitude: 35.2271, Longitude: -80.8431},
	}

	for _, s := range schools {
		if _, err := svc.Register(ctx, s); err != nil {
			log.Fatal(err)
		}
	}
	count, _ := st.Count(ctx)
	fmt.Printf("Registered %d schools\n\n", count)

	// Example 1: raw distance
	fmt.Println("=== Distance from Seattle to San Diego ===")
	fmt.Printf("  %.2f km\n", geo.RoundKm(geo.Distance(47.6062, -122.3321, 32.7157, -117.1611)))

	// Example 2: 5 nearest schools to Denver
	fmt.Println("\n=== 5 Nearest Schools to Denver ===")
	listing, err := svc.List(ctx, 39.7392, -104.9903)
	if err != nil {
		log.Fatal(err)
	}
	for i, s := range listing.Schools[:5] {
		fmt.Printf("  %d. %s (%s): %.2f km away\n", i+1, s.Name, s.Address, s.DistanceKm)
	}

	// Example 3: query parameters as they arrive over HTTP
	fmt.Println("\n=== Nearest School to Dallas (string input) ===")
	listing, err = svc.List(ctx, "32.7767", "-96.7970")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("  %s: %.2f km away\n", listing.Schools[0].Name, listing.Schools[0].DistanceKm)

	// Example 4: rejected registration
	fmt.Println("\n=== Invalid Registration ===")
	_, err = svc.Register(ctx, directory.RegisterRequest{Name: "  ", Address: "Nowhere", Latitude: 91, Longitude: "east"})
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		for _, p := range verr.Problems {
			fmt.Printf("  - %s\n", p)
		}
	}
}
