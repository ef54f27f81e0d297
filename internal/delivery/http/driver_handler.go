package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/usecase/driver"
	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

// qrImageSize - сторона PNG с QR-кодом в пикселях
const qrImageSize = 256

// DriverService определяет интерфейс для сервиса данных водителя
type DriverService interface {
	GetUserData(ctx context.Context, userID string) (*domain.UserData, error)
	Dashboard(ctx context.Context, userID string) (*driver.Dashboard, error)
	Documents(ctx context.Context, userID string) ([]domain.Document, error)
	Fines(ctx context.Context, userID string) ([]domain.Fine, error)
	UnpaidFines(ctx context.Context, userID string) ([]domain.Fine, error)
	QRPayload(ctx context.Context, userID string) (*domain.QRPayload, error)
	PayFine(ctx context.Context, userID, fineID string) (*domain.Result, error)
}

// DriverHandler обрабатывает запросы водителя к своим данным
type DriverHandler struct {
	driverService DriverService
	logger        logger.Logger
}

// NewDriverHandler создает новый handler
func NewDriverHandler(driverService DriverService, logger logger.Logger) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		logger:        logger,
	}
}

// respondServiceError переводит ошибку сервиса в HTTP ответ
func (h *DriverHandler) respondServiceError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrUserDataNotFound):
		respondError(w, http.StatusNotFound, "User data not found")
	case errors.Is(err, domain.ErrNoQRCode):
		respondError(w, http.StatusNotFound, "No inspection record for QR code")
	default:
		h.logger.Error("Failed to "+action, map[string]interface{}{
			"error": err,
		})
		respondError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// GetData возвращает полный набор данных водителя
// GET /api/v1/drivers/me/data
func (h *DriverHandler) GetData(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	data, err := h.driverService.GetUserData(r.Context(), claims.UserID)
	if err != nil {
		h.respondServiceError(w, err, "get user data")
		return
	}

	respondData(w, http.StatusOK, data)
}

// GetDashboard возвращает данные главного экрана
// GET /api/v1/drivers/me/dashboard
func (h *DriverHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	dashboard, err := h.driverService.Dashboard(r.Context(), claims.UserID)
	if err != nil {
		h.respondServiceError(w, err, "get dashboard")
		return
	}

	respondData(w, http.StatusOK, dashboard)
}

// GetDocuments возвращает документы водителя
// GET /api/v1/drivers/me/documents
func (h *DriverHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	documents, err := h.driverService.Documents(r.Context(), claims.UserID)
	if err != nil {
		h.respondServiceError(w, err, "get documents")
		return
	}

	respondData(w, http.StatusOK, documents)
}

// GetFines возвращает штрафы водителя
// GET /api/v1/drivers/me/fines?status=unpaid
func (h *DriverHandler) GetFines(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var (
		fines []domain.Fine
		err   error
	)
	switch r.URL.Query().Get("status") {
	case "":
		fines, err = h.driverService.Fines(r.Context(), claims.UserID)
	case "unpaid", string(domain.FineUnpaid):
		fines, err = h.driverService.UnpaidFines(r.Context(), claims.UserID)
	default:
		respondError(w, http.StatusBadRequest, "Unknown fine status filter")
		return
	}
	if err != nil {
		h.respondServiceError(w, err, "get fines")
		return
	}

	respondData(w, http.StatusOK, fines)
}

// PayFine оплачивает штраф
// POST /api/v1/drivers/me/fines/{id}/pay
func (h *DriverHandler) PayFine(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	fineID := chi.URLParam(r, "id")
	result, err := h.driverService.PayFine(r.Context(), claims.UserID, fineID)
	if err != nil {
		h.respondServiceError(w, err, "pay fine")
		return
	}

	if !result.Success {
		respondError(w, http.StatusNotFound, "Fine not found")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetQR возвращает данные QR-кода и их текстовое представление
// GET /api/v1/drivers/me/qr
func (h *DriverHandler) GetQR(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	payload, err := h.driverService.QRPayload(r.Context(), claims.UserID)
	if err != nil {
		h.respondServiceError(w, err, "get QR code")
		return
	}

	text, err := payload.Encode()
	if err != nil {
		h.respondServiceError(w, err, "encode QR code")
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"payload": payload,
		"text":    text,
	})
}

// GetQRImage возвращает QR-код в формате PNG
// GET /api/v1/drivers/me/qr.png
func (h *DriverHandler) GetQRImage(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	payload, err := h.driverService.QRPayload(r.Context(), claims.UserID)
	if err != nil {
		h.respondServiceError(w, err, "get QR code")
		return
	}

	text, err := payload.Encode()
	if err != nil {
		h.respondServiceError(w, err, "encode QR code")
		return
	}

	png, err := qrcode.Encode(text, qrcode.Medium, qrImageSize)
	if err != nil {
		h.respondServiceError(w, err, "render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
