package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/drivesure/internal/delivery/http/middleware"
	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const (
	testDriverID  = "user_driver"
	testOfficerID = "user_officer"
)

// CreateTestAccount создает тестовый аккаунт
func CreateTestAccount(id, email string, role domain.UserRole) *domain.Account {
	return &domain.Account{
		ID:    id,
		Name:  "Test User",
		Email: email,
		Role:  role,
	}
}

// newRequest создает запрос с JSON телом (body может быть строкой с сырым JSON)
func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withClaims добавляет в запрос claims пользователя
func withClaims(req *http.Request, userID string, role domain.UserRole) *http.Request {
	claims := &jwt.Claims{UserID: userID, Email: userID + "@example.com", Role: role}
	return req.WithContext(middleware.WithUserClaims(req.Context(), claims))
}

// withURLParam добавляет параметр пути chi
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeResponse разбирает JSON ответ
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response
}

// AssertSuccess проверяет успешный ответ API
func AssertSuccess(t *testing.T, response map[string]interface{}) {
	t.Helper()
	success, ok := response["success"].(bool)
	if !ok || !success {
		t.Errorf("Expected success=true, got %v", response)
	}
}

// AssertError проверяет ошибочный ответ API
func AssertError(t *testing.T, response map[string]interface{}) {
	t.Helper()
	success, ok := response["success"].(bool)
	if !ok || success {
		t.Errorf("Expected success=false, got %v", response)
	}
}
