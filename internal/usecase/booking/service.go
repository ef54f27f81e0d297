package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// inspectionCenters - пункты техосмотра LACVIS
var inspectionCenters = []domain.InspectionCenter{
	{ID: "1", Name: "LACVIS, Ojodu Berger", Address: "96, Federal Road Safety Corps, Ojodu, Lagos"},
	{ID: "2", Name: "LACVIS, Ikorodu", Address: "Ikorodu - Shagamu Rd, Ikorodu, Lagos"},
	{ID: "3", Name: "LACVIS, Gbagada", Address: "Oworonshoki Expy, Gbagada, Lagos"},
	{ID: "4", Name: "LACVIS, Epe", Address: "Epe-Ijebu-Ode Road, Epe, Lagos"},
}

// BookingRequest - запрос на запись на техосмотр
// Time принимается, но не сохраняется
type BookingRequest struct {
	Center string `json:"center"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// Validate проверяет центр и дату (YYYY-MM-DD)
func (r *BookingRequest) Validate() error {
	if strings.TrimSpace(r.Center) == "" {
		return fmt.Errorf("%w: center is required", domain.ErrInvalidBookingData)
	}
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidBookingData)
	}
	return nil
}

// Service содержит бизнес-логику записи на техосмотр
type Service struct {
	userDataRepo repository.UserDataRepository
	latency      *latency.Simulator
	logger       logger.Logger
	now          func() time.Time
}

// NewService создает новый экземпляр BookingService
func NewService(
	userDataRepo repository.UserDataRepository,
	sim *latency.Simulator,
	logger logger.Logger,
) *Service {
	return &Service{
		userDataRepo: userDataRepo,
		latency:      sim,
		logger:       logger,
		now:          time.Now,
	}
}

// FetchInspectionCenters возвращает список пунктов техосмотра
func (s *Service) FetchInspectionCenters(ctx context.Context) ([]domain.InspectionCenter, error) {
	centers := make([]domain.InspectionCenter, len(inspectionCenters))
	copy(centers, inspectionCenters)
	return latency.Resolve(ctx, s.latency, centers, latency.Default)
}

// BookInspection записывает водителя на техосмотр
// Новая запись (Pending, срок "N/A") и уведомление добавляются в начало списков
func (s *Service) BookInspection(ctx context.Context, userID string, req *BookingRequest) (*domain.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("Booking inspection", map[string]interface{}{
		"user_id": userID,
		"center":  req.Center,
		"date":    req.Date,
	})

	inspectionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate inspection id: %w", err)
	}
	notificationID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notification id: %w", err)
	}

	err = s.userDataRepo.Update(ctx, userID, func(data *domain.UserData) error {
		data.PrependInspection(domain.Inspection{
			ID:     "insp_" + inspectionID.String(),
			Date:   req.Date,
			Center: req.Center,
			Status: domain.InspectionPending,
			Expiry: domain.ExpiryNotAvailable,
		})
		data.PrependNotification(domain.Notification{
			ID:      "notif_" + notificationID.String(),
			Title:   "Booking Confirmed!",
			Message: fmt.Sprintf("Your inspection at %s is confirmed for %s.", req.Center, req.Date),
			Date:    s.now().UTC().Format(dateLayout),
			Read:    false,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserDataNotFound) {
			s.logger.Warn("Booking rejected: no user data", map[string]interface{}{
				"user_id": userID,
			})
			return latency.Resolve(ctx, s.latency, &domain.Result{Success: false}, latency.Default)
		}
		return nil, fmt.Errorf("failed to book inspection: %w", err)
	}

	return latency.Resolve(ctx, s.latency, &domain.Result{Success: true, Message: "Booking confirmed."}, latency.Booking)
}
