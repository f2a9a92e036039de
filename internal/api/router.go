package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brickfolio/property-portfolio-backend/internal/api/handlers"
	custommiddleware "github.com/brickfolio/property-portfolio-backend/internal/api/middleware"
	"github.com/brickfolio/property-portfolio-backend/internal/auth"
	"github.com/brickfolio/property-portfolio-backend/internal/config"
	"github.com/brickfolio/property-portfolio-backend/internal/service"
)

// Services bundles the service layer dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Owner       *service.OwnerService
	Property    *service.PropertyService
	Transaction *service.TransactionService
	Portfolio   *service.PortfolioService
	Snapshot    *service.SnapshotService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, sessions *auth.SessionManager, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		sessionHandler := handlers.NewSessionHandler(sessions, svc.Owner)
		r.Post("/session", sessionHandler.CreateSession)

		r.Route("/owner", func(r chi.Router) {
			ownerHandler := handlers.NewOwnerHandler(svc.Owner)
			r.Get("/", ownerHandler.Owners)
			r.Post("/", ownerHandler.CreateOwner)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", ownerHandler.GetOwner)
			})
		})

		r.Route("/property", func(r chi.Router) {
			propertyHandler := handlers.NewPropertyHandler(svc.Property, svc.Portfolio)
			r.Get("/", propertyHandler.Properties)
			r.Post("/", propertyHandler.CreateProperty)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", propertyHandler.GetProperty)
				r.Put("/", propertyHandler.UpdateProperty)
				r.Delete("/", propertyHandler.DeleteProperty)
				r.Post("/liquidate", propertyHandler.Liquidate)
				r.Get("/liquidations", propertyHandler.Liquidations)
				r.Get("/metrics", propertyHandler.Metrics)
				r.Get("/cashflow", propertyHandler.CashFlow)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Route("/property/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.TransactionsPerProperty)
			})
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Use(custommiddleware.Session(sessions))
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio, svc.Snapshot)
			r.Get("/metrics", portfolioHandler.Metrics)
			r.Get("/cashflow", portfolioHandler.CashFlow)
			r.Get("/history", portfolioHandler.History)
		})
	})

	return r
}
