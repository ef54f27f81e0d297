package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/usecase/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingService - мок для booking service
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) FetchInspectionCenters(ctx context.Context) ([]domain.InspectionCenter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InspectionCenter), args.Error(1)
}

func (m *MockBookingService) BookInspection(ctx context.Context, userID string, req *booking.BookingRequest) (*domain.Result, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Result), args.Error(1)
}

func TestBookingHandler_GetInspectionCenters(t *testing.T) {
	mockService := new(MockBookingService)
	mockService.On("FetchInspectionCenters", mock.Anything).Return([]domain.InspectionCenter{
		{ID: "1", Name: "LACVIS, Ojodu Berger", Address: "96, Federal Road Safety Corps, Ojodu, Lagos"},
	}, nil)

	handler := NewBookingHandler(mockService, logger.NewNoop())
	w := httptest.NewRecorder()

	handler.GetInspectionCenters(w, newRequest(t, http.MethodGet, "/api/v1/inspection-centers", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	AssertSuccess(t, resp)
	centers := resp["data"].([]interface{})
	assert.Len(t, centers, 1)
	assert.Equal(t, "LACVIS, Ojodu Berger", centers[0].(map[string]interface{})["name"])
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	validBody := booking.BookingRequest{Center: "LACVIS, Gbagada", Date: "2026-11-02", Time: "10:00"}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockBookingService)
		expectedStatus int
	}{
		{
			name:        "успешная запись",
			requestBody: validBody,
			mockSetup: func(m *MockBookingService) {
				m.On("BookInspection", mock.Anything, testDriverID, &validBody).
					Return(&domain.Result{Success: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "нет данных водителя",
			requestBody: validBody,
			mockSetup: func(m *MockBookingService) {
				m.On("BookInspection", mock.Anything, testDriverID, mock.Anything).
					Return(&domain.Result{Success: false}, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "неверная дата",
			requestBody: booking.BookingRequest{Center: "LACVIS, Epe", Date: "tomorrow"},
			mockSetup: func(m *MockBookingService) {
				m.On("BookInspection", mock.Anything, testDriverID, mock.Anything).
					Return(nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidBookingData))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "невалидный JSON",
			requestBody:    "{",
			mockSetup:      func(m *MockBookingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBookingService)
			tt.mockSetup(mockService)

			handler := NewBookingHandler(mockService, logger.NewNoop())
			req := withClaims(newRequest(t, http.MethodPost, "/api/v1/bookings", tt.requestBody), testDriverID, domain.RoleDriver)
			w := httptest.NewRecorder()

			handler.CreateBooking(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.Equal(t, tt.expectedStatus == http.StatusCreated, resp["success"])
			mockService.AssertExpectations(t)
		})
	}
}
