package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/reservations/usecase/create_reservation"
)

type fakeUseCase struct {
	calls    int
	response *createReservation.Response
	err      error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Handle_Created(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{response: &createReservation.Response{
		ID:          5,
		UserID:      42,
		ParkingSpot: "A-17",
		StartTime:   start,
		EndTime:     start.Add(5 * time.Hour),
		Cost:        50,
	}}

	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, CreateReservationRequest{
		UserID:      42,
		ParkingSpot: "A-17",
		StartTime:   start,
		EndTime:     start.Add(5 * time.Hour),
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/reservations/5", rec.Header().Get("Location"))

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.InDelta(t, 50.0, resp.Cost, 1e-9)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandler_Handle_MinHoursNotMet(t *testing.T) {
	uc := &fakeUseCase{err: &domain.MinHoursNotMetError{MinHours: 24}}
	h := NewHandler(uc, nopLogger{})

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, CreateReservationRequest{
		UserID:      42,
		ParkingSpot: "A-17",
		StartTime:   start,
		EndTime:     start.Add(5 * time.Hour),
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "reservation does not meet promotion minimum hours: 24", errResp.Message)
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "user not found",
			err:            createReservation.ErrUserNotFound,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "user service unavailable",
			err:            createReservation.ErrUserServiceUnavailable,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "promotion not found",
			err:            createReservation.ErrPromotionNotFound,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "promotion service unavailable",
			err:            createReservation.ErrPromotionServiceUnavailable,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid time period",
			err:            createReservation.ErrInvalidTimePeriod,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid input",
			err:            createReservation.ErrInvalidInput,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "internal error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			h := NewHandler(uc, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(t, CreateReservationRequest{
				UserID:      42,
				ParkingSpot: "A-17",
				StartTime:   start,
				EndTime:     start.Add(5 * time.Hour),
			}))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
