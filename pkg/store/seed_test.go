package store

import (
	"context"
	"errors"
	"testing"

	"github.com/kass/go-school-locator/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct {
	*MemoryStore
	err error
}

func (b *brokenStore) Insert(ctx context.Context, s models.NewSchool) (int64, error) {
	return 0, opError("insert", b.err)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	samples := SampleSchools()

	n, err := Seed(ctx, st, samples)
	require.NoError(t, err)
	assert.Equal(t, len(samples), n)

	n, err = Seed(ctx, st, samples)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	count, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(samples)), count)
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_, err := st.Insert(ctx, models.NewSchool{Name: "existing", Address: "x"})
	require.NoError(t, err)

	n, err := Seed(ctx, st, SampleSchools())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSeedReportsStoreFailure(t *testing.T) {
	st := &brokenStore{MemoryStore: NewMemoryStore(), err: errors.New("disk full")}

	n, err := Seed(context.Background(), st, SampleSchools())
	assert.Equal(t, 0, n)

	var storeErr *Error
	assert.True(t, errors.As(err, &storeErr))
}

func TestSampleSchoolsAreValid(t *testing.T) {
	for _, s := range SampleSchools() {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Address)
		assert.True(t, s.Latitude >= -90 && s.Latitude <= 90, s.Name)
		assert.True(t, s.Longitude >= -180 && s.Longitude <= 180, s.Name)
	}
}
