// Package directory implements school registration and proximity listing on
// top of a record store.
package directory

import (
	"context"
	"log/slog"

	"github.com/kass/go-school-locator/pkg/geo"
	"github.com/kass/go-school-locator/pkg/models"
	"github.com/kass/go-school-locator/pkg/store"
	"github.com/kass/go-school-locator/pkg/validate"
)

// RegisterRequest holds raw, unvalidated registration fields
type RegisterRequest struct {
	Name      any
	Address   any
	Latitude  any
	Longitude any
}

// Listing is the result of a proximity query
type Listing struct {
	Count   int                   `json:"count"`
	Schools []models.RankedSchool `json:"schools"`
}

type Service struct {
	store  store.Store
	logger *slog.Logger
}

func NewService(st store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Register validates req and stores the school. Invalid input returns a
// *validate.ValidationError and never reaches the store.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	school, problems := validate.School(req.Name, req.Address, req.Latitude, req.Longitude)
	if len(problems) > 0 {
		return 0, &validate.ValidationError{Problems: problems}
	}

	id, err := s.store.Insert(ctx, school)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "school registered",
		"school_id", id, "name", school.Name,
		"latitude", school.Latitude, "longitude", school.Longitude)
	return id, nil
}

// List returns every school ordered by distance from the query point
func (s *Service) List(ctx context.Context, latitude, longitude any) (*Listing, error) {
	origin, problems := validate.Point(latitude, longitude)
	if len(problems) > 0 {
		return nil, &validate.ValidationError{Problems: problems}
	}

	schools, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ranked := geo.Rank(origin, schools)
	s.logger.DebugContext(ctx, "schools ranked",
		"latitude", origin.Lat, "longitude", origin.Lon, "count", len(ranked))

	return &Listing{Count: len(ranked), Schools: ranked}, nil
}
