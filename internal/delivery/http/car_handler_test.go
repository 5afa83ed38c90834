package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/garage/internal/usecase/car"
)

// TestCarHandler_RegisterCar тестирует регистрацию автомобиля
func TestCarHandler_RegisterCar(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/cars", car.RegisterCarRequest{
		PlateNumber:       "rab 123 a",
		Type:              "Sedan",
		Model:             "Toyota Corolla",
		ManufacturingYear: 2015,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Номер нормализуется при регистрации
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "RAB123A", data["plate_number"])
}

// TestCarHandler_RegisterCar_Duplicate тестирует дублирующийся номер
func TestCarHandler_RegisterCar_Duplicate(t *testing.T) {
	app := newTestApp(t)
	app.registerTestCar(t, "RAB123A")

	w := app.do(t, http.MethodPost, "/api/v1/cars", car.RegisterCarRequest{
		PlateNumber:       "RAB123A",
		Model:             "Honda Civic",
		ManufacturingYear: 2018,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

// TestCarHandler_RegisterCar_Invalid тестирует невалидные данные
func TestCarHandler_RegisterCar_Invalid(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/cars", car.RegisterCarRequest{
		PlateNumber:       "RAB123A",
		Model:             "Toyota Corolla",
		ManufacturingYear: 1980,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestCarHandler_GetCarByPlate тестирует получение автомобиля
func TestCarHandler_GetCarByPlate(t *testing.T) {
	app := newTestApp(t)
	app.registerTestCar(t, "RAB123A")

	w := app.do(t, http.MethodGet, "/api/v1/cars/RAB123A", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Toyota Corolla", data["model"])

	missing := app.do(t, http.MethodGet, "/api/v1/cars/RAB999Z", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

// TestCarHandler_ListCars тестирует список автомобилей
func TestCarHandler_ListCars(t *testing.T) {
	app := newTestApp(t)
	app.registerTestCar(t, "RAB123A")
	app.registerTestCar(t, "RAB456B")

	w := app.do(t, http.MethodGet, "/api/v1/cars", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, float64(2), response["count"])
}
