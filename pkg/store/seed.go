package store

import (
	"context"
	"fmt"

	"github.com/kass/go-school-locator/pkg/models"
)

// SampleSchools returns the built-in demo data set
func SampleSchools() []models.NewSchool {
	return []models.NewSchool{
		{Name: "Lincoln High School", Address: "2600 N 44th St, Seattle, WA", Latitude: 47.6470, Longitude: -122.3350},
		{Name: "Garfield High School", Address: "400 23rd Ave, Seattle, WA", Latitude: 47.6055, Longitude: -122.3010},
		{Name: "Lowell High School", Address: "1101 Eucalyptus Dr, San Francisco, CA", Latitude: 37.7303, Longitude: -122.4836},
		{Name: "La Jolla High School", Address: "750 Nautilus St, La Jolla, CA", Latitude: 32.8430, Longitude: -117.2731},
		{Name: "Stuyvesant High School", Address: "345 Chambers St, New York, NY", Latitude: 40.7178, Longitude: -74.0138},
		{Name: "Lane Tech College Prep", Address: "2501 W Addison St, Chicago, IL", Latitude: 41.9465, Longitude: -87.6896},
		{Name: "Boston Latin School", Address: "78 Avenue Louis Pasteur, Boston, MA", Latitude: 42.3378, Longitude: -71.1014},
		{Name: "Thomas Jefferson High School", Address: "6560 Braddock Rd, Alexandria, VA", Latitude: 38.8185, Longitude: -77.1686},
	}
}

// Seed inserts schools only when the store is empty, so running it twice is
// harmless. It returns the number of inserted records.
func Seed(ctx context.Context, st Store, schools []models.NewSchool) (int, error) {
	count, err := st.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i, s := range schools {
		if _, err := st.Insert(ctx, s); err != nil {
			return i, fmt.Errorf("failed to seed school %q: %w", s.Name, err)
		}
	}
	return len(schools), nil
}
