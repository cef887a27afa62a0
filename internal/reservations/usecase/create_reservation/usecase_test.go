package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/promotionservice"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	createCalls int
	created     *domain.Reservation
	err         error
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.created = reservation

	out := *reservation
	out.ID = 1
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	return &out, nil
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
		UserID:      42,
		ParkingSpot: "A-17",
		StartTime:   start,
		EndTime:     start.Add(5 * time.Hour),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42, Name: "Alice"}}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	result, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.InDelta(t, 50.0, result.Cost, 1e-9) // 5h * 10/h
	assert.Equal(t, 1, users.calls)
	assert.Equal(t, 0, promos.calls) // без кода акция не запрашивается
	assert.Equal(t, 1, repo.createCalls)
}

func TestUseCase_Execute_WithPromotion(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{promotion: &promotionservice.Promotion{
		ID:              7,
		Name:            "SUMMER20",
		DiscountPercent: 20,
		MinHours:        2,
	}}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest()
	req.PromotionCode = ptr.Ptr("SUMMER20")

	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.InDelta(t, 40.0, result.Cost, 1e-9) // 5h * 10/h * 0.8
	assert.Equal(t, 1, promos.calls)
	assert.Equal(t, 1, repo.createCalls)
}

func TestUseCase_Execute_EmptyPromotionCodeSkipsLookup(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest()
	req.PromotionCode = ptr.Ptr("")

	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.Cost, 1e-9)
	assert.Equal(t, 0, promos.calls)
}

func TestUseCase_Execute_MinHoursNotMet(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{promotion: &promotionservice.Promotion{
		Name:            "LONGSTAY",
		DiscountPercent: 50,
		MinHours:        24,
	}}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest() // 5 часов < 24
	req.PromotionCode = ptr.Ptr("LONGSTAY")

	result, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, result)

	var minHoursErr *domain.MinHoursNotMetError
	require.ErrorAs(t, err, &minHoursErr)
	assert.Equal(t, 24.0, minHoursErr.MinHours)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_MinHoursBoundaryPasses(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{promotion: &promotionservice.Promotion{
		Name:            "LONGSTAY",
		DiscountPercent: 50,
		MinHours:        5,
	}}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest() // ровно 5 часов
	req.PromotionCode = ptr.Ptr("LONGSTAY")

	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.InDelta(t, 25.0, result.Cost, 1e-9)
	assert.Equal(t, 1, repo.createCalls)
}

func TestUseCase_Execute_UserNotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{err: userservice.ErrUserNotFound}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest()
	req.PromotionCode = ptr.Ptr("SUMMER20")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, promos.calls) // конвейер останавливается на первой ошибке
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_UserServiceUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{err: userservice.ErrServiceUnavailable}
	promos := &fakePromotionClient{}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrUserServiceUnavailable)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_PromotionNotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{err: promotionservice.ErrPromotionNotFound}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest()
	req.PromotionCode = ptr.Ptr("NOPE")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrPromotionNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_PromotionServiceUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{}
	users := &fakeUserClient{user: &userservice.User{ID: 42}}
	promos := &fakePromotionClient{err: promotionservice.ErrServiceUnavailable}

	uc := NewUseCase(repo, users, promos, nopLogger{})

	req := validRequest()
	req.PromotionCode = ptr.Ptr("SUMMER20")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrPromotionServiceUnavailable)
	assert.NotErrorIs(t, err, ErrPromotionNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *Request)
		expected error
	}{
		{
			name:     "non-positive user id",
			mutate:   func(req *Request) { req.UserID = 0 },
			expected: ErrInvalidInput,
		},
		{
			name:     "empty parking spot",
			mutate:   func(req *Request) { req.ParkingSpot = "" },
			expected: ErrInvalidInput,
		},
		{
			name:     "zero start time",
			mutate:   func(req *Request) { req.StartTime = time.Time{} },
			expected: ErrInvalidInput,
		},
		{
			name:     "end equals start",
			mutate:   func(req *Request) { req.EndTime = req.StartTime },
			expected: ErrInvalidTimePeriod,
		},
		{
			name:     "end before start",
			mutate:   func(req *Request) { req.EndTime = req.StartTime.Add(-time.Hour) },
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
			// Валидация выполняется до любых сетевых вызовов
			assert.Equal(t, 0, users.calls)
			assert.Equal(t, 0, promos.calls)
			assert.Equal(t, 0, repo.createCalls)
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
