package leads

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/marketplace"
)

// MockBackend реализует интерфейс leads.Backend.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Leads(ctx context.Context, query url.Values) (*marketplace.LeadPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketplace.LeadPage), args.Error(1)
}

func (m *MockBackend) Dynamics(ctx context.Context, query url.Values) ([]marketplace.DynamicsPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.DynamicsPoint), args.Error(1)
}

func (m *MockBackend) DynamicsCommission(ctx context.Context, query url.Values) ([]marketplace.CommissionPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.CommissionPoint), args.Error(1)
}

func (m *MockBackend) ByCities(ctx context.Context, query url.Values) ([]marketplace.CityCount, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.CityCount), args.Error(1)
}

func (m *MockBackend) ByThreads(ctx context.Context, query url.Values) ([]marketplace.ThreadCount, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.ThreadCount), args.Error(1)
}

func (m *MockBackend) FilterSummary(ctx context.Context, query url.Values) (*leadfilter.FilterSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leadfilter.FilterSummary), args.Error(1)
}

func (m *MockBackend) PayByIDs(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockBackend) PayByFilter(ctx context.Context, query url.Values) error {
	return m.Called(ctx, query).Error(0)
}

func (m *MockBackend) Offers(ctx context.Context) ([]leadfilter.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leadfilter.Offer), args.Error(1)
}

func (m *MockBackend) Cities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// fakeCache — кеш в памяти без срока жизни, достаточно для тестов.
type fakeCache struct {
	data map[string]any
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]any)}
}

func (c *fakeCache) Get(_ context.Context, key string, result any) (bool, error) {
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	switch out := result.(type) {
	case *[]leadfilter.Offer:
		*out = v.([]leadfilter.Offer)
	case *[]string:
		*out = v.([]string)
	}
	return true, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestList_WebmasterScopedToOwnLeads(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	backend.On("Leads", mock.Anything, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("users") == "wm-7"
	})).Return(&marketplace.LeadPage{}, nil)

	f := leadfilter.NewFilter()
	_, err := svc.List(context.Background(), f, leadfilter.NewPagination(), RoleWebmaster, "wm-7")

	require.NoError(t, err)
	backend.AssertExpectations(t)
}

func TestList_AdminSeesEverything(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	backend.On("Leads", mock.Anything, mock.MatchedBy(func(q url.Values) bool {
		_, has := q["users"]
		return !has
	})).Return(&marketplace.LeadPage{}, nil)

	_, err := svc.List(context.Background(), leadfilter.NewFilter(), leadfilter.NewPagination(), "admin", "adm-1")

	require.NoError(t, err)
	backend.AssertExpectations(t)
}

func TestDynamics_ReturnsGranularity(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	backend.On("Dynamics", mock.Anything, mock.Anything).Return([]marketplace.DynamicsPoint{}, nil)

	f := leadfilter.NewFilter()
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)
	f.Period = leadfilter.Period{From: day, To: day}

	_, granularity, err := svc.Dynamics(context.Background(), f, "admin", "adm-1")

	require.NoError(t, err)
	assert.Equal(t, leadfilter.GranularityHourly, granularity)
}

func TestFilterSummary_PropagatesError(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	backend.On("FilterSummary", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))

	_, err := svc.FilterSummary(context.Background(), leadfilter.NewFilter(), "admin", "adm-1")

	assert.Error(t, err)
}

func TestPayByIDs_RejectsEmptyList(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	err := svc.PayByIDs(context.Background(), nil)

	assert.Error(t, err)
	backend.AssertNotCalled(t, "PayByIDs")
}

func TestOffers_CachedAfterFirstFetch(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	catalog := []leadfilter.Offer{{ID: 1, Title: "Ремонт квартир"}}
	backend.On("Offers", mock.Anything).Return(catalog, nil).Once()

	first, err := svc.Offers(context.Background())
	require.NoError(t, err)

	second, err := svc.Offers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	backend.AssertNumberOfCalls(t, "Offers", 1)
}

func TestResolveOffer_ByTitle(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	backend.On("Offers", mock.Anything).Return([]leadfilter.Offer{
		{ID: 3, Title: "Натяжные потолки"},
	}, nil)

	id, err := svc.ResolveOffer(context.Background(), "Натяжные потолки")

	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestResolveOffer_Unknown(t *testing.T) {
	backend := new(MockBackend)
	svc := New(backend, newFakeCache(), testLogger())

	backend.On("Offers", mock.Anything).Return([]leadfilter.Offer{}, nil)

	_, err := svc.ResolveOffer(context.Background(), "Окна")

	assert.Error(t, err)
}
