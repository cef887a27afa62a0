package update_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/reservations/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/promotionservice"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	updateCalls int
	updated     *domain.Reservation
	err         error
}

func (f *fakeReservationRepo) Update(_ context.Context, reservation *domain.Reservation) error {
	f.updateCalls++
	if f.err != nil {
		return f.err
	}
	f.updated = reservation
	return nil
}

type fakeUserClient struct {
	calls int
	user  *userservice.User
	err   error
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakePromotionClient struct {
	calls     int
	promotion *promotionservice.Promotion
	err       error
}

func (f *fakePromotionClient) GetByCode(_ context.Context, code string) (*promotionservice.Promotion, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.promotion, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &Request{
		ID:          1,
		UserID:      42,
		ParkingSpot: "A-17",
		StartTime:   start,
		EndTime:     start.Add(12 * time.Hour),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	result, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.InDelta(t, 120.0, result.Cost, 1e-9) // 12h * 10/h
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUseCase_Execute_RecomputesCostWithPromotion(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{promotion: &promotionservice.Promotion{
		Name:            "SUMMER20",
		DiscountPercent: 20,
		MinHours:        10,
	}}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest()
	req.PromotionCode = ptr.Ptr("SUMMER20")

	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.InDelta(t, 96.0, result.Cost, 1e-9) // 12h * 10/h * 0.8
	require.NotNil(t, repo.updated)
	assert.InDelta(t, 96.0, repo.updated.Cost, 1e-9) // стоимость пересчитана перед записью
}

func TestUseCase_Execute_MinHoursNotMet(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{promotion: &promotionservice.Promotion{
		Name:            "LONGSTAY",
		DiscountPercent: 50,
		MinHours:        48,
	}}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest() // 12 часов < 48
	req.PromotionCode = ptr.Ptr("LONGSTAY")

	_, err := uc.Execute(context.Background(), req)

	var minHoursErr *domain.MinHoursNotMetError
	require.ErrorAs(t, err, &minHoursErr)
	assert.Equal(t, 48.0, minHoursErr.MinHours)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUseCase_Execute_ReservationNotFound(t *testing.T) {
	repo := &fakeReservationRepo{err: reservationRepo.ErrReservationNotFound}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUseCase_Execute_UserNotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{err: userservice.ErrUserNotFound}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUseCase_Execute_UserServiceUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{err: userservice.ErrServiceUnavailable}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrUserServiceUnavailable)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUseCase_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *Request)
		expected error
	}{
		{
			name:     "non-positive reservation id",
			mutate:   func(req *Request) { req.ID = 0 },
			expected: ErrInvalidInput,
		},
		{
			name:     "non-positive user id",
			mutate:   func(req *Request) { req.UserID = -1 },
			expected: ErrInvalidInput,
		},
		{
			name:     "empty parking spot",
			mutate:   func(req *Request) { req.ParkingSpot = "" },
			expected: ErrInvalidInput,
		},
		{
			name:     "end equals start",
			mutate:   func(req *Request) { req.EndTime = req.StartTime },
			expected: ErrInvalidTimePeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{}
			users := &fakeUserClient{user: &userservice.User{ID: 42}}
			promos := &fakePromotionClient{}

			uc := NewUseCase(repo, users, promos, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, tt.expected)
			assert.Equal(t, 0, users.calls)
			assert.Equal(t, 0, promos.calls)
			assert.Equal(t, 0, repo.updateCalls)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection reset")}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
}
