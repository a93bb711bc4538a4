package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/kass/go-school-locator/pkg/logging"
	"github.com/kass/go-school-locator/pkg/models"
	"github.com/kass/go-school-locator/pkg/store"
	"github.com/kass/go-school-locator/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every read and write
type failingStore struct {
	*store.MemoryStore
	inserts int
}

func (f *failingStore) Insert(ctx context.Context, s models.NewSchool) (int64, error) {
	f.inserts++
	return 0, &store.Error{Op: "insert", Err: errors.New("connection refused")}
}

func (f *failingStore) ListAll(ctx context.Context) ([]models.School, error) {
	return nil, &store.Error{Op: "list", Err: errors.New("connection refused")}
}

func newService() (*Service, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewService(st, logging.Discard()), st
}

func TestRegisterValidSchool(t *testing.T) {
	ctx := context.Background()
	svc, st := newService()

	id, err := svc.Register(ctx, RegisterRequest{
		Name: "Test School", Address: "1 Test St", Latitude: 10.0, Longitude: 10.0,
	})
	require.NoError(t, err)

	schools, err := st.ListAll(ctx)
	require.NoError(t, err)
	seen := 0
	for _, s := range schools {
		if s.ID == id {
			seen++
			assert.Equal(t, "Test School", s.Name)
		}
	}
	assert.Equal(t, 1, seen)
}

func TestRegisterLatitudeOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, st := newService()

	_, err := svc.Register(ctx, RegisterRequest{
		Name: "Test School", Address: "1 Test St", Latitude: 91.0, Longitude: 10.0,
	})

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 1)
	assert.Contains(t, verr.Problems[0], "latitude must be between -90 and 90")

	count, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRegisterInvalidNeverReachesStore(t *testing.T) {
	st := &failingStore{MemoryStore: store.NewMemoryStore()}
	svc := NewService(st, logging.Discard())

	_, err := svc.Register(context.Background(), RegisterRequest{Name: "", Address: "x", Latitude: "a", Longitude: 0})

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)
	assert.Equal(t, 0, st.inserts)
}

func TestRegisterStoreFailure(t *testing.T) {
	st := &failingStore{MemoryStore: store.NewMemoryStore()}
	svc := NewService(st, logging.Discard())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Test School", Address: "1 Test St", Latitude: 10.0, Longitude: 10.0,
	})

	var storeErr *store.Error
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, 1, st.inserts)
}

func TestListEmptyStore(t *testing.T) {
	svc, _ := newService()

	listing, err := svc.List(context.Background(), "0", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, listing.Count)
	assert.NotNil(t, listing.Schools)
	assert.Empty(t, listing.Schools)
}

func TestListInvalidPoint(t *testing.T) {
	svc, _ := newService()

	_, err := svc.List(context.Background(), "abc", "200")

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"latitude is required and must be a valid number",
		"longitude must be between -180 and 180",
	}, verr.Problems)
}

func TestListSortedByDistance(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	for _, s := range store.SampleSchools() {
		_, err := svc.Register(ctx, RegisterRequest{
			Name: s.Name, Address: s.Address, Latitude: s.Latitude, Longitude: s.Longitude,
		})
		require.NoError(t, err)
	}

	// Seattle
	listing, err := svc.List(ctx, 47.6062, -122.3321)
	require.NoError(t, err)
	require.Equal(t, len(store.SampleSchools()), listing.Count)
	require.Len(t, listing.Schools, listing.Count)

	for i := 1; i < len(listing.Schools); i++ {
		assert.LessOrEqual(t, listing.Schools[i-1].DistanceKm, listing.Schools[i].DistanceKm)
	}
	assert.Contains(t, []string{"Garfield High School", "Lincoln High School"}, listing.Schools[0].Name)
}

func TestListRoundTripFromOwnCoordinates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	far := RegisterRequest{Name: "Far", Address: "far", Latitude: 20.0, Longitude: 20.0}
	near := RegisterRequest{Name: "Near", Address: "near", Latitude: 10.5, Longitude: 10.5}
	_, err := svc.Register(ctx, far)
	require.NoError(t, err)
	_, err = svc.Register(ctx, near)
	require.NoError(t, err)
	id, err := svc.Register(ctx, RegisterRequest{Name: "Here", Address: "here", Latitude: 10.0, Longitude: 10.0})
	require.NoError(t, err)

	listing, err := svc.List(ctx, 10.0, 10.0)
	require.NoError(t, err)
	require.Len(t, listing.Schools, 3)

	assert.Equal(t, id, listing.Schools[0].ID)
	assert.Equal(t, 0.0, listing.Schools[0].DistanceKm)
	assert.Greater(t, listing.Schools[1].DistanceKm, 0.0)
	assert.Equal(t, "Near", listing.Schools[1].Name)
	assert.Equal(t, "Far", listing.Schools[2].Name)
}

func TestListStoreFailure(t *testing.T) {
	st := &failingStore{MemoryStore: store.NewMemoryStore()}
	svc := NewService(st, logging.Discard())

	_, err := svc.List(context.Background(), 0, 0)

	var storeErr *store.Error
	assert.True(t, errors.As(err, &storeErr))
}
