package business

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taartu/internal/analytics"
	"taartu/internal/domain"
)

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(ctx context.Context, b *domain.Business) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBusinessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) UpdateCommissionRate(ctx context.Context, id int64, rate decimal.Decimal) error {
	args := m.Called(ctx, id, rate)
	return args.Error(0)
}

type fakeTracker struct {
	mu     sync.Mutex
	events []string
	props  []map[string]any
}

func (f *fakeTracker) Track(name string, props map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, name)
	f.props = append(f.props, props)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestService_Initialize_AppliesCommissionOnlyDefaults(t *testing.T) {
	repo := new(MockBusinessRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tracker := &fakeTracker{}

	svc := NewService(repo, tracker)
	b, err := svc.Initialize(context.Background(), 42, InitializeBusinessRequest{
		BusinessName: "Test Salon",
		BusinessType: "Salon",
		Location:     "Nairobi, Kenya",
	})

	require.NoError(t, err)
	assert.True(t, b.PlatformFeePercentage.Equal(dec("10.00")))
	assert.True(t, b.CommissionOnlyModel)
	assert.False(t, b.SubscriptionModelEnabled)
	assert.Equal(t, domain.ModelCommissionOnly, b.ModelType())
	assert.Equal(t, []string{analytics.EventBusinessInitialized}, tracker.events)
}

func TestService_ValidateTransactable(t *testing.T) {
	svc := NewService(new(MockBusinessRepository), nil)

	rate, err := svc.ValidateTransactable(&domain.Business{
		CommissionOnlyModel:   true,
		PlatformFeePercentage: dec("12.50"),
	})
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("12.50")))

	_, err = svc.ValidateTransactable(&domain.Business{CommissionOnlyModel: false})
	assert.ErrorIs(t, err, ErrModelNotEligible)
}

func TestService_ValidateTransactable_UnsetRateDefaultsToTen(t *testing.T) {
	svc := NewService(new(MockBusinessRepository), nil)

	rate, err := svc.ValidateTransactable(&domain.Business{CommissionOnlyModel: true})
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("10.00")), "unset rate must default, not be zero: %s", rate)
}

func TestService_ValidateRateUpdate_Bounds(t *testing.T) {
	svc := NewService(new(MockBusinessRepository), nil)

	for _, rate := range []string{"10.00", "15.00", "12.5"} {
		assert.NoError(t, svc.ValidateRateUpdate(dec(rate)), "rate %s", rate)
	}
	for _, rate := range []string{"9.99", "15.01", "0", "-1"} {
		assert.ErrorIs(t, svc.ValidateRateUpdate(dec(rate)), ErrRateOutOfBounds, "rate %s", rate)
	}
}

func TestService_UpdateRate_ForcesModelFlagsAndTracks(t *testing.T) {
	repo := new(MockBusinessRepository)
	repo.On("GetByUserID", mock.Anything, int64(42)).Return(&domain.Business{
		ID:                       7,
		UserID:                   42,
		PlatformFeePercentage:    dec("10.00"),
		CommissionOnlyModel:      false,
		SubscriptionModelEnabled: true,
	}, nil)
	repo.On("UpdateCommissionRate", mock.Anything, int64(7), dec("12.50")).Return(nil)
	tracker := &fakeTracker{}

	svc := NewService(repo, tracker)
	b, err := svc.UpdateRate(context.Background(), 42, dec("12.50"))

	require.NoError(t, err)
	assert.True(t, b.PlatformFeePercentage.Equal(dec("12.50")))
	assert.True(t, b.CommissionOnlyModel)
	assert.False(t, b.SubscriptionModelEnabled)

	require.Equal(t, []string{analytics.EventPlatformFeeConfirmed}, tracker.events)
	assert.Equal(t, int64(7), tracker.props[0]["business_id"])
	assert.Equal(t, "12.50", tracker.props[0]["commission_rate"])
	assert.Equal(t, int64(42), tracker.props[0]["user_id"])
	repo.AssertExpectations(t)
}

func TestService_UpdateRate_RejectsOutOfBounds(t *testing.T) {
	repo := new(MockBusinessRepository)
	repo.On("GetByUserID", mock.Anything, int64(42)).Return(&domain.Business{ID: 7, UserID: 42}, nil)

	svc := NewService(repo, &fakeTracker{})
	_, err := svc.UpdateRate(context.Background(), 42, dec("16.00"))

	assert.ErrorIs(t, err, ErrRateOutOfBounds)
	repo.AssertNotCalled(t, "UpdateCommissionRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateRate_NoBusiness(t *testing.T) {
	repo := new(MockBusinessRepository)
	repo.On("GetByUserID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, &fakeTracker{})
	_, err := svc.UpdateRate(context.Background(), 42, dec("12.00"))

	assert.ErrorIs(t, err, ErrNotFound)
}
