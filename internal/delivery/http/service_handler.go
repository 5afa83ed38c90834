package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/usecase/catalog"
)

// ServiceHandler обрабатывает запросы каталога услуг
type ServiceHandler struct {
	catalogService *catalog.Service
	logger         logger.Logger
}

// NewServiceHandler создает новый handler
func NewServiceHandler(catalogService *catalog.Service, logger logger.Logger) *ServiceHandler {
	return &ServiceHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// AddService добавляет услугу в каталог
// POST /api/v1/services
func (h *ServiceHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req catalog.AddServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	service, err := h.catalogService.AddService(r.Context(), &req)
	if err != nil {
		if err == domain.ErrServiceAlreadyExists {
			respondError(w, http.StatusConflict, "Service already exists")
			return
		}
		if err == domain.ErrInvalidServiceData {
			respondError(w, http.StatusBadRequest, "Invalid service data")
			return
		}
		h.logger.Error("Failed to add service", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to add service")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    service,
	})
}

// GetServiceByCode возвращает услугу по коду
// GET /api/v1/services/{code}
func (h *ServiceHandler) GetServiceByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	service, err := h.catalogService.GetServiceByCode(r.Context(), code)
	if err != nil {
		if err == domain.ErrServiceNotFound {
			respondError(w, http.StatusNotFound, "Service not found")
			return
		}
		h.logger.Error("Failed to get service", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get service")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    service,
	})
}

// ListServices возвращает весь каталог услуг
// GET /api/v1/services
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.ListServices(r.Context())
	if err != nil {
		h.logger.Error("Failed to list services", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list services")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    services,
		"count":   len(services),
	})
}
