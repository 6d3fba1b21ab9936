package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/ems-backend-go/internal/domain/settings"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	UpdateLeaveType(w http.ResponseWriter, r *http.Request)
	DeleteLeaveType(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.Service
}

// CreateDepartment implements SettingsHandler.
func (h *SettingsHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req settings.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	departmentResponse, err := h.settingsService.CreateDepartment(r.Context(), &req)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", departmentResponse)
}

// ListDepartments implements SettingsHandler.
func (h *SettingsHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.settingsService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// UpdateDepartment implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	departmentResponse, err := h.settingsService.UpdateDepartment(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		slog.Error("UpdateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", departmentResponse)
}

// DeleteDepartment implements SettingsHandler.
func (h *SettingsHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	if err := h.settingsService.DeleteDepartment(r.Context(), id); err != nil {
		slog.Error("DeleteDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// CreateHoliday implements SettingsHandler.
func (h *SettingsHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req settings.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	holidayResponse, err := h.settingsService.CreateHoliday(r.Context(), &req)
	if err != nil {
		slog.Error("CreateHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", holidayResponse)
}

// ListHolidays implements SettingsHandler.
func (h *SettingsHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	filter := settings.ListHolidaysFilter{
		Year: queryInt(r, "year"),
		Type: r.URL.Query().Get("type"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	holidays, err := h.settingsService.ListHolidays(r.Context(), &filter)
	if err != nil {
		slog.Error("ListHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeleteHoliday implements SettingsHandler.
func (h *SettingsHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.settingsService.DeleteHoliday(r.Context(), id); err != nil {
		slog.Error("DeleteHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// CreateLeaveType implements SettingsHandler.
func (h *SettingsHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req settings.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeaveType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	leaveTypeResponse, err := h.settingsService.CreateLeaveType(r.Context(), &req)
	if err != nil {
		slog.Error("CreateLeaveType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leaveTypeResponse)
}

// ListLeaveTypes implements SettingsHandler.
func (h *SettingsHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	leaveTypes, err := h.settingsService.ListLeaveTypes(r.Context())
	if err != nil {
		slog.Error("ListLeaveTypes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaveTypes)
}

// UpdateLeaveType implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeaveType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	leaveTypeResponse, err := h.settingsService.UpdateLeaveType(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		slog.Error("UpdateLeaveType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", leaveTypeResponse)
}

// DeleteLeaveType implements SettingsHandler.
func (h *SettingsHandlerImpl) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := h.settingsService.DeleteLeaveType(r.Context(), id); err != nil {
		slog.Error("DeleteLeaveType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}
