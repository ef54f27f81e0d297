package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository"
)

// Dashboard - данные главного экрана водителя
type Dashboard struct {
	Profile          domain.Profile        `json:"profile"`
	LatestInspection *domain.Inspection    `json:"latestInspection"`
	Notifications    []domain.Notification `json:"notifications"`
	QRPayload        *domain.QRPayload     `json:"qrPayload"`
	HasUnpaidFines   bool                  `json:"hasUnpaidFines"`
}

// Service содержит бизнес-логику данных водителя
type Service struct {
	userDataRepo repository.UserDataRepository
	latency      *latency.Simulator
	logger       logger.Logger
}

// NewService создает новый экземпляр DriverService
func NewService(
	userDataRepo repository.UserDataRepository,
	sim *latency.Simulator,
	logger logger.Logger,
) *Service {
	return &Service{
		userDataRepo: userDataRepo,
		latency:      sim,
		logger:       logger,
	}
}

// GetUserData возвращает полный набор данных водителя
func (s *Service) GetUserData(ctx context.Context, userID string) (*domain.UserData, error) {
	data, err := s.userDataRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserDataNotFound) {
			return nil, fmt.Errorf("failed to get user data: %w", err)
		}
		if werr := s.latency.Wait(ctx, latency.Default); werr != nil {
			return nil, werr
		}
		return nil, err
	}
	return latency.Resolve(ctx, s.latency, data, latency.Default)
}

// Dashboard собирает данные главного экрана
// QR-код есть только при наличии хотя бы одной записи о техосмотре
func (s *Service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	data, err := s.GetUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Profile:          data.Profile,
		LatestInspection: data.LatestInspection(),
		Notifications:    data.Notifications,
		QRPayload:        data.QRPayload(),
		HasUnpaidFines:   data.HasUnpaidFines(),
	}, nil
}

// Documents возвращает документы водителя
func (s *Service) Documents(ctx context.Context, userID string) ([]domain.Document, error) {
	data, err := s.GetUserData(ctx, userID)
	if err != nil {
		return nil, err
	}
	return data.Documents, nil
}

// Fines возвращает все штрафы водителя
func (s *Service) Fines(ctx context.Context, userID string) ([]domain.Fine, error) {
	data, err := s.GetUserData(ctx, userID)
	if err != nil {
		return nil, err
	}
	return data.Fines, nil
}

// UnpaidFines возвращает неоплаченные штрафы водителя
func (s *Service) UnpaidFines(ctx context.Context, userID string) ([]domain.Fine, error) {
	data, err := s.GetUserData(ctx, userID)
	if err != nil {
		return nil, err
	}
	return data.UnpaidFines(), nil
}

// QRPayload возвращает данные QR-кода водителя
func (s *Service) QRPayload(ctx context.Context, userID string) (*domain.QRPayload, error) {
	data, err := s.GetUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := data.QRPayload()
	if payload == nil {
		return nil, domain.ErrNoQRCode
	}
	return payload, nil
}

// PayFine отмечает штраф как оплаченный
// Отсутствие данных водителя или штрафа - Success = false, без ошибки
// Повторная оплата уже оплаченного штрафа успешна и ничего не меняет
func (s *Service) PayFine(ctx context.Context, userID, fineID string) (*domain.Result, error) {
	s.logger.Info("Paying fine", map[string]interface{}{
		"user_id": userID,
		"fine_id": fineID,
	})

	err := s.userDataRepo.Update(ctx, userID, func(data *domain.UserData) error {
		fine := data.FindFine(fineID)
		if fine == nil {
			return domain.ErrFineNotFound
		}
		fine.Pay()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserDataNotFound) || errors.Is(err, domain.ErrFineNotFound) {
			s.logger.Warn("Fine payment rejected", map[string]interface{}{
				"user_id": userID,
				"fine_id": fineID,
				"reason":  err.Error(),
			})
			return latency.Resolve(ctx, s.latency, &domain.Result{Success: false}, latency.Default)
		}
		return nil, fmt.Errorf("failed to pay fine: %w", err)
	}

	s.logger.Info("Fine paid", map[string]interface{}{
		"user_id": userID,
		"fine_id": fineID,
	})

	return latency.Resolve(ctx, s.latency, &domain.Result{Success: true}, latency.FinePayment)
}
