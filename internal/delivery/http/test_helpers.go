package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smartpark/garage/internal/infrastructure/pdf"
	"github.com/smartpark/garage/internal/pkg/config"
	"github.com/smartpark/garage/internal/pkg/jwt"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/repository/memory"
	"github.com/smartpark/garage/internal/usecase/auth"
	"github.com/smartpark/garage/internal/usecase/car"
	"github.com/smartpark/garage/internal/usecase/catalog"
	"github.com/smartpark/garage/internal/usecase/invoice"
	"github.com/smartpark/garage/internal/usecase/payment"
	"github.com/smartpark/garage/internal/usecase/record"
	"github.com/smartpark/garage/internal/usecase/report"
)

// testApp - полный стек приложения поверх пустого хранилища
// для сквозных тестов через роутер
type testApp struct {
	handler http.Handler
	token   string
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:    "test-secret-key",
			AccessExpiry: 12 * time.Hour,
		},
		Auth: config.AuthConfig{
			LoginDelay: 0,
		},
		Garage: config.GarageConfig{
			Name:     "SmartPark Garage",
			Address:  "Rubavu District, Western Province, Rwanda",
			Currency: "Rwf",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		},
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := testConfig()
	log := logger.NewNoop()

	store := memory.NewStore()
	serviceRepo := memory.NewServiceRepository(store)
	carRepo := memory.NewCarRepository(store)
	recordRepo := memory.NewRecordRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)

	tokenService := jwt.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.AccessExpiry)

	authService := auth.NewService(tokenService, cfg.Auth.LoginDelay, log)
	catalogService := catalog.NewService(serviceRepo, log)
	carService := car.NewService(carRepo, log)
	recordService := record.NewService(recordRepo, carRepo, serviceRepo, log)
	paymentService := payment.NewService(paymentRepo, recordRepo, serviceRepo, carRepo, log)
	reportService := report.NewService(recordRepo, paymentRepo, serviceRepo, carRepo, log)
	invoiceService := invoice.NewService(paymentService, pdf.New(), cfg.Garage, log)

	require.NoError(t, catalogService.SeedDefaults(context.Background()))

	router := NewRouter(
		NewAuthHandler(authService, log),
		NewServiceHandler(catalogService, log),
		NewCarHandler(carService, log),
		NewRecordHandler(recordService, reportService, log),
		NewPaymentHandler(paymentService, invoiceService, log),
		NewReportHandler(reportService, log),
		tokenService,
		cfg,
		log,
	)

	token, err := tokenService.GenerateToken("admin")
	require.NoError(t, err)

	return &testApp{
		handler: router.Setup(),
		token:   token.AccessToken,
	}
}

// do выполняет запрос через роутер с токеном сеанса
func (app *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return app.doRequest(t, method, path, body, app.token)
}

// doAnonymous выполняет запрос без токена
func (app *testApp) doAnonymous(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return app.doRequest(t, method, path, body, "")
}

func (app *testApp) doRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if str, ok := body.(string); ok {
			reader = bytes.NewReader([]byte(str))
		} else {
			raw, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.handler.ServeHTTP(w, req)
	return w
}

// decodeResponse разбирает JSON конверт ответа
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// registerTestCar регистрирует автомобиль через API
func (app *testApp) registerTestCar(t *testing.T, plate string) {
	t.Helper()

	w := app.do(t, http.MethodPost, "/api/v1/cars", car.RegisterCarRequest{
		PlateNumber:       plate,
		Type:              "Sedan",
		Model:             "Toyota Corolla",
		ManufacturingYear: 2015,
		DriverPhone:       "+250788123456",
		MechanicName:      "Jean Bosco",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

// createTestRecord создает запись об обслуживании через API
func (app *testApp) createTestRecord(t *testing.T, date, plate, code string) string {
	t.Helper()

	w := app.do(t, http.MethodPost, "/api/v1/records", record.CreateRecordRequest{
		ServiceDate: date,
		PlateNumber: plate,
		ServiceCode: code,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	return data["record_number"].(string)
}
