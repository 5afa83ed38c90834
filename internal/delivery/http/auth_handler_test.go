package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/garage/internal/usecase/auth"
)

// TestAuthHandler_Login тестирует вход через API
func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "успешный вход",
			requestBody:    auth.LoginRequest{Username: "admin", Password: "secret1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "короткий пароль",
			requestBody:    auth.LoginRequest{Username: "admin", Password: "12345"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "пустое имя",
			requestBody:    auth.LoginRequest{Username: "", Password: "123456"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "невалидный JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			w := app.doAnonymous(t, http.MethodPost, "/api/v1/auth/login", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := decodeResponse(t, w)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, response["success"])
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "admin", data["username"])
				assert.NotEmpty(t, data["access_token"])
			} else {
				assert.Equal(t, false, response["success"])
			}
		})
	}
}

// TestAuthHandler_LoginIssuedTokenWorks проверяет, что выданный
// токен открывает защищенные маршруты
func TestAuthHandler_LoginIssuedTokenWorks(t *testing.T) {
	app := newTestApp(t)

	w := app.doAnonymous(t, http.MethodPost, "/api/v1/auth/login", auth.LoginRequest{
		Username: "mechanic",
		Password: "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	token := data["access_token"].(string)

	me := app.doRequest(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, me.Code)

	meData := decodeResponse(t, me)["data"].(map[string]interface{})
	assert.Equal(t, "mechanic", meData["username"])
}

// TestAuthHandler_Logout тестирует выход
func TestAuthHandler_Logout(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, true, response["success"])
}

// TestProtectedRoutes_RequireToken проверяет, что защищенные
// маршруты недоступны без токена
func TestProtectedRoutes_RequireToken(t *testing.T) {
	app := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/services"},
		{http.MethodGet, "/api/v1/cars"},
		{http.MethodGet, "/api/v1/records"},
		{http.MethodGet, "/api/v1/payments"},
		{http.MethodGet, "/api/v1/reports/summary"},
	}

	for _, p := range paths {
		t.Run(p.path, func(t *testing.T) {
			w := app.doAnonymous(t, p.method, p.path, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// TestProtectedRoutes_RejectGarbageToken тестирует мусорный токен
func TestProtectedRoutes_RejectGarbageToken(t *testing.T) {
	app := newTestApp(t)

	w := app.doRequest(t, http.MethodGet, "/api/v1/services", nil, "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestHealthCheck тестирует публичный health check
func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	w := app.doAnonymous(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
