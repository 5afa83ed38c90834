package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/garage/internal/usecase/catalog"
)

// TestServiceHandler_ListServices проверяет предзаполненный каталог
func TestServiceHandler_ListServices(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(6), response["count"])
}

// TestServiceHandler_AddService тестирует добавление услуги
func TestServiceHandler_AddService(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "успешное добавление",
			requestBody:    catalog.AddServiceRequest{ServiceCode: "SVC007", ServiceName: "Brake check", ServicePrice: 10000},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "дублирующийся код",
			requestBody:    catalog.AddServiceRequest{ServiceCode: "SVC001", ServiceName: "Engine repair", ServicePrice: 150000},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "отрицательная цена",
			requestBody:    catalog.AddServiceRequest{ServiceCode: "SVC007", ServiceName: "Brake check", ServicePrice: -1},
			expectedStatus: http.StatusBadRequest,
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

			w := app.do(t, http.MethodPost, "/api/v1/services", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestServiceHandler_GetServiceByCode тестирует получение услуги
func TestServiceHandler_GetServiceByCode(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/services/SVC003", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Oil Change", data["service_name"])
	assert.Equal(t, float64(60000), data["service_price"])

	missing := app.do(t, http.MethodGet, "/api/v1/services/SVC999", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
