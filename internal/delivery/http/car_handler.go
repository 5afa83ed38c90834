package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/usecase/car"
)

// CarHandler обрабатывает запросы реестра автомобилей
type CarHandler struct {
	carService *car.Service
	logger     logger.Logger
}

// NewCarHandler создает новый handler
func NewCarHandler(carService *car.Service, logger logger.Logger) *CarHandler {
	return &CarHandler{
		carService: carService,
		logger:     logger,
	}
}

// RegisterCar регистрирует автомобиль
// POST /api/v1/cars
func (h *CarHandler) RegisterCar(w http.ResponseWriter, r *http.Request) {
	var req car.RegisterCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	registered, err := h.carService.RegisterCar(r.Context(), &req)
	if err != nil {
		if err == domain.ErrCarAlreadyExists {
			respondError(w, http.StatusConflict, "Car already registered")
			return
		}
		if err == domain.ErrInvalidPlateNumber || err == domain.ErrInvalidCarData {
			respondError(w, http.StatusBadRequest, "Invalid car data")
			return
		}
		h.logger.Error("Failed to register car", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to register car")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    registered,
	})
}

// GetCarByPlate возвращает автомобиль по номерному знаку
// GET /api/v1/cars/{plate}
func (h *CarHandler) GetCarByPlate(w http.ResponseWriter, r *http.Request) {
	plate := chi.URLParam(r, "plate")

	found, err := h.carService.GetCarByPlate(r.Context(), plate)
	if err != nil {
		if err == domain.ErrCarNotFound {
			respondError(w, http.StatusNotFound, "Car not found")
			return
		}
		h.logger.Error("Failed to get car", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get car")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    found,
	})
}

// ListCars возвращает все зарегистрированные автомобили
// GET /api/v1/cars
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.ListCars(r.Context())
	if err != nil {
		h.logger.Error("Failed to list cars", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list cars")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    cars,
		"count":   len(cars),
	})
}
