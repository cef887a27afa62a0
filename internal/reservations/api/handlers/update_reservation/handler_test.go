package update_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/reservations/usecase/update_reservation"
)

type fakeUseCase struct {
	calls    int
	response *updateReservation.Response
	err      error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateReservation.Request) (*updateReservation.Response, error) {
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

func newRequest(t *testing.T, pathID string, body interface{}) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/reservations/%s", pathID), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, map[string]string{"reservationId": pathID})
}

func validBody() UpdateReservationRequest {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return UpdateReservationRequest{
		ID:          1,
		UserID:      42,
		ParkingSpot: "A-17",
		StartTime:   start,
		EndTime:     start.Add(12 * time.Hour),
	}
}

func TestHandler_Handle_OK(t *testing.T) {
	body := validBody()
	uc := &fakeUseCase{response: &updateReservation.Response{
		ID:          1,
		UserID:      42,
		ParkingSpot: "A-17",
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Cost:        120,
	}}

	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, "1", body))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.InDelta(t, 120.0, resp.Cost, 1e-9)
}

func TestHandler_Handle_IDMismatch(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	body := validBody()
	body.ID = 2

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, "1", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Несовпадение отклоняется до запуска конвейера
	assert.Equal(t, 0, uc.calls)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "id mismatch", errResp.Message)
}

func TestHandler_Handle_InvalidPathID(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, "abc", validBody()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandler_Handle_ReservationNotFound(t *testing.T) {
	uc := &fakeUseCase{err: updateReservation.ErrReservationNotFound}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, "1", validBody()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Handle_MinHoursNotMet(t *testing.T) {
	uc := &fakeUseCase{err: &domain.MinHoursNotMetError{MinHours: 48}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, "1", validBody()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "reservation does not meet promotion minimum hours: 48", errResp.Message)
}

func TestHandler_Handle_DependencyFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "user not found", err: updateReservation.ErrUserNotFound},
		{name: "user service unavailable", err: updateReservation.ErrUserServiceUnavailable},
		{name: "promotion not found", err: updateReservation.ErrPromotionNotFound},
		{name: "promotion service unavailable", err: updateReservation.ErrPromotionServiceUnavailable},
		{name: "invalid time period", err: updateReservation.ErrInvalidTimePeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			h := NewHandler(uc, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(t, "1", validBody()))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
