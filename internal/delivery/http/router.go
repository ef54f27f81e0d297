package http

import (
	"net/http"

	"github.com/frontandrew/drivesure/internal/delivery/http/middleware"
	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/config"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler      *AuthHandler
	driverHandler    *DriverHandler
	bookingHandler   *BookingHandler
	trafficHandler   *TrafficHandler
	officerHandler   *OfficerHandler
	assistantHandler *AssistantHandler
	tokens           middleware.TokenValidator
	config           *config.Config
	logger           logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	driverHandler *DriverHandler,
	bookingHandler *BookingHandler,
	trafficHandler *TrafficHandler,
	officerHandler *OfficerHandler,
	assistantHandler *AssistantHandler,
	tokens middleware.TokenValidator,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:      authHandler,
		driverHandler:    driverHandler,
		bookingHandler:   bookingHandler,
		trafficHandler:   trafficHandler,
		officerHandler:   officerHandler,
		assistantHandler: assistantHandler,
		tokens:           tokens,
		config:           config,
		logger:           logger,
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
	r.Use(middleware.LanguageMiddleware)

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)
		})

		r.Get("/i18n/{lang}", GetTranslations)
		r.Get("/inspection-centers", rt.bookingHandler.GetInspectionCenters)
		r.Get("/traffic/reports", rt.trafficHandler.GetReports)

		// Protected routes (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokens))

			r.Get("/auth/me", rt.authHandler.GetMe)
			r.Post("/traffic/briefing", rt.trafficHandler.GetBriefing)
			r.Get("/assistant/chat", rt.assistantHandler.Chat)

			// Driver only endpoints
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleDriver))

				r.Route("/drivers/me", func(r chi.Router) {
					r.Get("/data", rt.driverHandler.GetData)
					r.Get("/dashboard", rt.driverHandler.GetDashboard)
					r.Get("/documents", rt.driverHandler.GetDocuments)
					r.Get("/fines", rt.driverHandler.GetFines)
					r.Post("/fines/{id}/pay", rt.driverHandler.PayFine)
					r.Get("/qr", rt.driverHandler.GetQR)
					r.Get("/qr.png", rt.driverHandler.GetQRImage)
				})

				r.Post("/bookings", rt.bookingHandler.CreateBooking)
			})

			// Officer only endpoints
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleOfficer))
				r.Post("/officer/verify", rt.officerHandler.Verify)
			})
		})
	})

	return r
}
