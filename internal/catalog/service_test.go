package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCatalogRepo struct {
	byID   map[uuid.UUID]*ServiceType
	bySlug map[string]*ServiceType
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		byID:   make(map[uuid.UUID]*ServiceType),
		bySlug: make(map[string]*ServiceType),
	}
}

func (f *fakeCatalogRepo) Create(ctx context.Context, serviceType *ServiceType) error {
	serviceType.ID = uuid.New()
	f.byID[serviceType.ID] = serviceType
	f.bySlug[serviceType.Slug] = serviceType
	return nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*ServiceType, error) {
	if st, ok := f.byID[id]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepo) GetBySlug(ctx context.Context, slug string) (*ServiceType, error) {
	if st, ok := f.bySlug[slug]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepo) List(ctx context.Context, activeOnly bool) ([]ServiceType, error) {
	var out []ServiceType
	for _, st := range f.byID {
		if activeOnly && !st.Active {
			continue
		}
		out = append(out, *st)
	}
	return out, nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, serviceType *ServiceType) error {
	f.byID[serviceType.ID] = serviceType
	return nil
}

func (f *fakeCatalogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

// failingCache errors on every invalidation call and counts them.
type failingCache struct {
	deletes int
}

func (f *failingCache) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("cache unavailable")
}

func (f *failingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return errors.New("cache unavailable")
}

func (f *failingCache) Delete(ctx context.Context, key string) error {
	f.deletes++
	return errors.New("cache unavailable")
}

func (f *failingCache) DeletePattern(ctx context.Context, pattern string) error {
	return errors.New("cache unavailable")
}

func (f *failingCache) Exists(ctx context.Context, key string) bool { return false }

func (f *failingCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	value, err := fetcher()
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (f *failingCache) Ping(ctx context.Context) error { return errors.New("cache unavailable") }

func TestCreateSurvivesCacheInvalidationFailure(t *testing.T) {
	cache := &failingCache{}
	svc := NewService(newFakeCatalogRepo(), cache)

	created, err := svc.Create(context.Background(), CreateServiceTypeRequest{
		Name:            "Document Pickup",
		DurationMinutes: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "document-pickup", created.Slug)
	assert.Equal(t, 1, cache.deletes, "invalidation should still be attempted")
}

func TestDeactivateSurvivesCacheInvalidationFailure(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo, &failingCache{})

	created, err := svc.Create(context.Background(), CreateServiceTypeRequest{
		Name:            "Account Review",
		DurationMinutes: 20,
	})
	require.NoError(t, err)

	err = svc.Deactivate(context.Background(), created.ID.String())

	require.NoError(t, err)
	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.False(t, stored.Active)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := NewService(newFakeCatalogRepo(), &failingCache{})

	_, err := svc.Create(context.Background(), CreateServiceTypeRequest{
		Name:            "Document Pickup",
		DurationMinutes: 10,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateServiceTypeRequest{
		Name:            "Document  Pickup",
		DurationMinutes: 15,
	})
	assert.ErrorContains(t, err, "already exists")
}
