package geo

import (
	"cmp"
	"slices"

	"github.com/kass/go-school-locator/pkg/models"
)

// Rank returns the schools ordered by their distance from origin, nearest first.
// The sort is stable: schools at the same rounded distance keep their input order.
// The input slice is not modified.
func Rank(origin models.Location, schools []models.School) []models.RankedSchool {
	ranked := make([]models.RankedSchool, len(schools))
	for i, s := range schools {
		loc := s.Location()
		ranked[i] = models.RankedSchool{
			School:     s,
			DistanceKm: RoundKm(Distance(origin.Lat, origin.Lon, loc.Lat, loc.Lon)),
		}
	}

	slices.SortStableFunc(ranked, func(a, b models.RankedSchool) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	return ranked
}
