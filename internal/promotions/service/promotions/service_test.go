package promotions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/promotions/domain"
	promotionRepo "github.com/m04kA/SMC-ReservationService/internal/promotions/infra/storage/promotion"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions/models"
)

type fakePromotionRepo struct {
	createCalls int
	promotion   *domain.Promotion
	list        []*domain.Promotion
	err         error
}

func (f *fakePromotionRepo) Create(_ context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}

	out := *promotion
	out.ID = 1
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

func (f *fakePromotionRepo) GetByID(_ context.Context, id int64) (*domain.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.promotion, nil
}

func (f *fakePromotionRepo) GetByName(_ context.Context, name string) (*domain.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.promotion, nil
}

func (f *fakePromotionRepo) List(_ context.Context) ([]*domain.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakePromotionRepo) Update(_ context.Context, promotion *domain.Promotion) error {
	return f.err
}

func (f *fakePromotionRepo) Delete(_ context.Context, id int64) error {
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_Create_Success(t *testing.T) {
	repo := &fakePromotionRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Create(context.Background(), &models.CreatePromotionRequest{
		Name:            "SUMMER20",
		Description:     "Summer discount",
		DiscountPercent: 20,
		MinHours:        10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "SUMMER20", result.Name)
	assert.Equal(t, 1, repo.createCalls)
}

func TestService_Create_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreatePromotionRequest
	}{
		{
			name: "empty name",
			req:  &models.CreatePromotionRequest{Name: "", DiscountPercent: 20},
		},
		{
			name: "negative discount",
			req:  &models.CreatePromotionRequest{Name: "X", DiscountPercent: -1},
		},
		{
			name: "discount over 100",
			req:  &models.CreatePromotionRequest{Name: "X", DiscountPercent: 101},
		},
		{
			name: "negative min hours",
			req:  &models.CreatePromotionRequest{Name: "X", DiscountPercent: 20, MinHours: -5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePromotionRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Create(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, repo.createCalls)
		})
	}
}

func TestService_GetByCode_Success(t *testing.T) {
	repo := &fakePromotionRepo{promotion: &domain.Promotion{
		ID:              7,
		Name:            "SUMMER20",
		DiscountPercent: 20,
		MinHours:        10,
	}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetByCode(context.Background(), "SUMMER20")

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, 20.0, result.DiscountPercent)
	assert.Equal(t, 10.0, result.MinHours)
}

func TestService_GetByCode_NotFound(t *testing.T) {
	repo := &fakePromotionRepo{err: promotionRepo.ErrPromotionNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByCode(context.Background(), "NOPE")

	require.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakePromotionRepo{err: promotionRepo.ErrPromotionNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 999)

	require.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestService_List_Success(t *testing.T) {
	repo := &fakePromotionRepo{list: []*domain.Promotion{
		{ID: 1, Name: "SUMMER20"},
		{ID: 2, Name: "LONGSTAY"},
	}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Promotions, 2)
	assert.Equal(t, "SUMMER20", result.Promotions[0].Name)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := &fakePromotionRepo{err: promotionRepo.ErrPromotionNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdatePromotionRequest{
		ID:              999,
		Name:            "SUMMER20",
		DiscountPercent: 20,
	})

	require.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestService_Delete_RepositoryError(t *testing.T) {
	repo := &fakePromotionRepo{err: errors.New("connection reset")}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	require.ErrorIs(t, err, ErrInternal)
}
