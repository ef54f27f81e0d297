package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
)

// TrafficService определяет интерфейс для сервиса дорожной обстановки
type TrafficService interface {
	FetchTrafficReports(ctx context.Context) ([]domain.TrafficReport, error)
}

// TrafficBriefer готовит сводку о пробках
type TrafficBriefer interface {
	TrafficBriefing(ctx context.Context, reports []domain.TrafficReport) (string, error)
}

// briefingRequest - сводки, которые видит клиент (если пусто, берутся свежие)
type briefingRequest struct {
	Reports []domain.TrafficReport `json:"reports"`
}

// TrafficHandler обрабатывает запросы о дорожной обстановке
type TrafficHandler struct {
	trafficService TrafficService
	briefer        TrafficBriefer
	logger         logger.Logger
}

// NewTrafficHandler создает новый handler
func NewTrafficHandler(trafficService TrafficService, briefer TrafficBriefer, logger logger.Logger) *TrafficHandler {
	return &TrafficHandler{
		trafficService: trafficService,
		briefer:        briefer,
		logger:         logger,
	}
}

// GetReports возвращает свежую сводку по маршрутам
// GET /api/v1/traffic/reports
func (h *TrafficHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.trafficService.FetchTrafficReports(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch traffic reports", map[string]interface{}{
			"error": err,
		})
		respondError(w, http.StatusInternalServerError, "Failed to fetch traffic reports")
		return
	}

	respondData(w, http.StatusOK, reports)
}

// GetBriefing возвращает ИИ-сводку о пробках в markdown
// POST /api/v1/traffic/briefing
func (h *TrafficHandler) GetBriefing(w http.ResponseWriter, r *http.Request) {
	var req briefingRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reports := req.Reports
	if len(reports) == 0 {
		var err error
		reports, err = h.trafficService.FetchTrafficReports(r.Context())
		if err != nil {
			h.logger.Error("Failed to fetch traffic reports", map[string]interface{}{
				"error": err,
			})
			respondError(w, http.StatusInternalServerError, "Failed to fetch traffic reports")
			return
		}
	}

	briefing, err := h.briefer.TrafficBriefing(r.Context(), reports)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAssistantOffline):
			respondError(w, http.StatusServiceUnavailable, "AI assistant is not available")
		case errors.Is(err, domain.ErrNoTrafficReports):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to generate briefing", map[string]interface{}{
				"error": err,
			})
			respondError(w, http.StatusInternalServerError, "Failed to generate briefing")
		}
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"briefing": briefing,
		"reports":  reports,
	})
}
