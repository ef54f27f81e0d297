package verification

import (
	"context"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
)

// Verification - результат проверки QR-кода водителя
type Verification struct {
	Status  State             `json:"status"`
	Valid   bool              `json:"valid"`
	Payload *domain.QRPayload `json:"payload,omitempty"`
}

// Service проверяет QR-коды, предъявленные инспектору
type Service struct {
	latency *latency.Simulator
	logger  logger.Logger
}

// NewService создает новый экземпляр VerificationService
func NewService(sim *latency.Simulator, logger logger.Logger) *Service {
	return &Service{
		latency: sim,
		logger:  logger,
	}
}

// Verify проводит один цикл сканирования для расшифрованного текста
// Содержимое кода не сверяется с хранилищем: проверяется только формат
func (s *Service) Verify(ctx context.Context, officerID, text string) (*Verification, error) {
	scanner := NewScanner()
	scanner.Start()

	payload, err := scanner.Complete(text)
	if err != nil {
		s.logger.Warn("QR verification failed", map[string]interface{}{
			"officer_id": officerID,
			"error":      err,
		})
		return nil, err
	}

	s.logger.Info("QR verified", map[string]interface{}{
		"officer_id": officerID,
		"driver_id":  payload.DriverID,
		"plate":      payload.PlateNumber,
	})

	return latency.Resolve(ctx, s.latency, &Verification{
		Status:  scanner.State(),
		Valid:   true,
		Payload: payload,
	}, latency.Default)
}
