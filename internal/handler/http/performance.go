package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/ems-backend-go/internal/domain/performance"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.Service
}

// Create implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reviewResponse, err := h.performanceService.Create(r.Context(), &req)
	if err != nil {
		slog.Error("Create review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Performance review created", "review_id", reviewResponse.ID)
	response.Created(w, "Performance review created successfully", reviewResponse)
}

// Get implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	reviewResponse, err := h.performanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviewResponse)
}

// List implements PerformanceHandler.
func (h *PerformanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := performance.ListReviewsFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Period:     r.URL.Query().Get("period"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reviews, total, err := h.performanceService.List(r.Context(), &filter)
	if err != nil {
		slog.Error("List reviews service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, reviews, response.NewMeta(len(reviews), total, filter.Page, filter.Limit))
}

// Update implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req performance.UpdateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reviewResponse, err := h.performanceService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		slog.Error("Update review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", reviewResponse)
}

// Delete implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.performanceService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted successfully", nil)
}

func NewPerformanceHandler(performanceService performance.Service) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}
