package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/usecase/booking"
)

// BookingService определяет интерфейс для сервиса записи на техосмотр
type BookingService interface {
	FetchInspectionCenters(ctx context.Context) ([]domain.InspectionCenter, error)
	BookInspection(ctx context.Context, userID string, req *booking.BookingRequest) (*domain.Result, error)
}

// BookingHandler обрабатывает запросы записи на техосмотр
type BookingHandler struct {
	bookingService BookingService
	logger         logger.Logger
}

// NewBookingHandler создает новый handler
func NewBookingHandler(bookingService BookingService, logger logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// GetInspectionCenters возвращает список пунктов техосмотра
// GET /api/v1/inspection-centers
func (h *BookingHandler) GetInspectionCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.bookingService.FetchInspectionCenters(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch inspection centers", map[string]interface{}{
			"error": err,
		})
		respondError(w, http.StatusInternalServerError, "Failed to fetch inspection centers")
		return
	}

	respondData(w, http.StatusOK, centers)
}

// CreateBooking записывает водителя на техосмотр
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req booking.BookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.bookingService.BookInspection(r.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBookingData) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to book inspection", map[string]interface{}{
			"user_id": claims.UserID,
			"error":   err,
		})
		respondError(w, http.StatusInternalServerError, "Failed to book inspection")
		return
	}

	if !result.Success {
		respondError(w, http.StatusNotFound, "User data not found")
		return
	}

	respondJSON(w, http.StatusCreated, result)
}
