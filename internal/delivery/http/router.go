package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/smartpark/garage/internal/delivery/http/middleware"
	"github.com/smartpark/garage/internal/pkg/config"
	"github.com/smartpark/garage/internal/pkg/jwt"
	"github.com/smartpark/garage/internal/pkg/logger"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler    *AuthHandler
	serviceHandler *ServiceHandler
	carHandler     *CarHandler
	recordHandler  *RecordHandler
	paymentHandler *PaymentHandler
	reportHandler  *ReportHandler
	tokenService   *jwt.TokenService
	config         *config.Config
	logger         logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	serviceHandler *ServiceHandler,
	carHandler *CarHandler,
	recordHandler *RecordHandler,
	paymentHandler *PaymentHandler,
	reportHandler *ReportHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		serviceHandler: serviceHandler,
		carHandler:     carHandler,
		recordHandler:  recordHandler,
		paymentHandler: paymentHandler,
		reportHandler:  reportHandler,
		tokenService:   tokenService,
		config:         config,
		logger:         logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Post("/auth/login", rt.authHandler.Login)

		// Protected routes (требуют токена сеанса)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokenService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", rt.authHandler.Logout)
				r.Get("/me", rt.authHandler.GetMe)
			})

			// Каталог услуг
			r.Route("/services", func(r chi.Router) {
				r.Get("/", rt.serviceHandler.ListServices)
				r.Post("/", rt.serviceHandler.AddService)
				r.Get("/{code}", rt.serviceHandler.GetServiceByCode)
			})

			// Реестр автомобилей
			r.Route("/cars", func(r chi.Router) {
				r.Get("/", rt.carHandler.ListCars)
				r.Post("/", rt.carHandler.RegisterCar)
				r.Get("/{plate}", rt.carHandler.GetCarByPlate)
			})

			// Записи об обслуживании
			r.Route("/records", func(r chi.Router) {
				r.Get("/", rt.recordHandler.ListRecords)
				r.Post("/", rt.recordHandler.CreateRecord)
				r.Get("/unpaid", rt.recordHandler.ListUnpaidRecords)
				r.Get("/{number}", rt.recordHandler.GetRecordByNumber)
				r.Put("/{number}", rt.recordHandler.UpdateRecord)
				r.Delete("/{number}", rt.recordHandler.DeleteRecord)
			})

			// Платежи и печатные формы
			r.Route("/payments", func(r chi.Router) {
				r.Get("/", rt.paymentHandler.ListPayments)
				r.Post("/", rt.paymentHandler.RecordPayment)
				r.Get("/suggested/{record_number}", rt.paymentHandler.GetSuggestedAmount)
				r.Get("/{number}", rt.paymentHandler.GetPaymentByNumber)
				r.Get("/{number}/details", rt.paymentHandler.GetPaymentDetails)
				r.Get("/{number}/invoice", rt.paymentHandler.GenerateInvoice)
				r.Get("/{number}/receipt", rt.paymentHandler.GenerateReceipt)
			})

			// Отчеты
			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", rt.reportHandler.GetSummary)
				r.Get("/daily", rt.reportHandler.GetDailyReport)
			})
		})
	})

	return r
}
