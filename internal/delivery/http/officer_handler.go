package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/frontandrew/drivesure/internal/delivery/http/middleware"
	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/i18n"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/usecase/verification"
)

// VerificationService определяет интерфейс для сервиса проверки QR-кодов
type VerificationService interface {
	Verify(ctx context.Context, officerID, text string) (*verification.Verification, error)
}

// verifyRequest - расшифрованный текст QR-кода
type verifyRequest struct {
	QR string `json:"qr"`
}

// OfficerHandler обрабатывает запросы инспекторов
type OfficerHandler struct {
	verificationService VerificationService
	logger              logger.Logger
}

// NewOfficerHandler создает новый handler
func NewOfficerHandler(verificationService VerificationService, logger logger.Logger) *OfficerHandler {
	return &OfficerHandler{
		verificationService: verificationService,
		logger:              logger,
	}
}

// Verify проверяет QR-код водителя
// POST /api/v1/officer/verify
func (h *OfficerHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req verifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lang := middleware.GetLanguage(r.Context())

	result, err := h.verificationService.Verify(r.Context(), claims.UserID, req.QR)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQRCode) {
			respondError(w, http.StatusUnprocessableEntity, i18n.T(lang, "invalidQrCode"))
			return
		}
		h.logger.Error("Failed to verify QR code", map[string]interface{}{
			"error": err,
		})
		respondError(w, http.StatusInternalServerError, "Failed to verify QR code")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": i18n.T(lang, "certificateValid"),
		"data":    result,
	})
}
