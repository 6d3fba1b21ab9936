package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	clockInResp attendance.AttendanceResponse
	clockInErr  error
	listResp    []attendance.AttendanceResponse
	listTotal   int64
	listErr     error
}

func (s *stubAttendanceService) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return s.clockInResp, s.clockInErr
}

func (s *stubAttendanceService) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (s *stubAttendanceService) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	return s.listResp, s.listTotal, s.listErr
}

func TestAttendanceHandler_ClockIn_Success(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		clockInResp: attendance.AttendanceResponse{
			ID:         "att-1",
			EmployeeID: "emp-1",
			Date:       "2025-06-02",
			ClockIn:    "09:00:00",
			Status:     "present",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ClockIn(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool                          `json:"success"`
		Data    attendance.AttendanceResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "emp-1", body.Data.EmployeeID)
	assert.Equal(t, "present", body.Data.Status)
}

func TestAttendanceHandler_ClockIn_EmptyBody(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		clockInResp: attendance.AttendanceResponse{ID: "att-1", EmployeeID: "emp-1"},
	})

	// No body at all still means "clock me in for today".
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", nil)
	rec := httptest.NewRecorder()
	handler.ClockIn(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAttendanceHandler_ClockIn_Conflict(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		clockInErr: attendance.ErrAlreadyClockedIn,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ClockIn(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "CONFLICT", body.Error.Code)
}

func TestAttendanceHandler_ClockIn_InvalidDate(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", bytes.NewBufferString(`{"date":"02-06-2025"}`))
	rec := httptest.NewRecorder()
	handler.ClockIn(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAttendanceHandler_List_Meta(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		listResp: []attendance.AttendanceResponse{
			{ID: "att-1"}, {ID: "att-2"},
		},
		listTotal: 12,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?page=1&limit=10", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Meta    struct {
			Count int `json:"count"`
			Total int `json:"total"`
			Page  int `json:"page"`
			Pages int `json:"pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Meta.Count)
	assert.Equal(t, 12, body.Meta.Total)
	assert.Equal(t, 1, body.Meta.Page)
	assert.Equal(t, 2, body.Meta.Pages)
}
