package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/drivesure/internal/delivery/http/middleware"
	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/usecase/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfficerHandler() http.Handler {
	service := verification.NewService(latency.Disabled(), logger.NewNoop())
	handler := NewOfficerHandler(service, logger.NewNoop())
	return middleware.LanguageMiddleware(http.HandlerFunc(handler.Verify))
}

func TestOfficerHandler_Verify(t *testing.T) {
	validQR, err := testQRPayload().Encode()
	require.NoError(t, err)

	tests := []struct {
		name            string
		requestBody     interface{}
		acceptLanguage  string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "действительный код",
			requestBody:     verifyRequest{QR: validQR},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Certificate is Valid",
		},
		{
			name:            "действительный код на йоруба",
			requestBody:     verifyRequest{QR: validQR},
			acceptLanguage:  "yo-NG",
			expectedStatus:  http.StatusOK,
			expectedMessage: "Iwe-ẹri Wulo",
		},
		{
			name:            "не JSON",
			requestBody:     verifyRequest{QR: "https://example.com"},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Invalid QR Code Data",
		},
		{
			name:            "нет срока действия",
			requestBody:     verifyRequest{QR: `{"driverId":"LAG-123-4567"}`},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Invalid QR Code Data",
		},
		{
			name:            "невалидный код на йоруба",
			requestBody:     verifyRequest{QR: "garbage"},
			acceptLanguage:  "yo",
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Data Koodu QR ti ko tọ",
		},
		{
			name:           "невалидное тело",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withClaims(newRequest(t, http.MethodPost, "/api/v1/officer/verify", tt.requestBody), testOfficerID, domain.RoleOfficer)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			w := httptest.NewRecorder()

			newOfficerHandler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeResponse(t, w)

			switch tt.expectedStatus {
			case http.StatusOK:
				AssertSuccess(t, resp)
				assert.Equal(t, tt.expectedMessage, resp["message"])
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "success", data["status"])
				assert.Equal(t, true, data["valid"])
				assert.Equal(t, "KJA-123AB", data["payload"].(map[string]interface{})["plateNumber"])
			case http.StatusUnprocessableEntity:
				AssertError(t, resp)
				assert.Equal(t, tt.expectedMessage, resp["error"])
			default:
				AssertError(t, resp)
			}
		})
	}
}

func TestOfficerHandler_Verify_Unauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	newOfficerHandler().ServeHTTP(w, newRequest(t, http.MethodPost, "/api/v1/officer/verify", verifyRequest{QR: "{}"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
