// Package handlers wires the HTTP surface onto a chi router. The handler
// logic itself lives in per-resource subpackages.
package handlers

import (
	"log/slog"

	"github.com/elegantevents/wedding-finance/pkg/handlers/checkout"
	"github.com/elegantevents/wedding-finance/pkg/handlers/payments"
	"github.com/elegantevents/wedding-finance/pkg/handlers/weddings"
	custommw "github.com/elegantevents/wedding-finance/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config carries the per-resource handlers mounted by NewRouter.
type Config struct {
	Payments *payments.Handler
	Checkout *checkout.Handler
	Weddings *weddings.Handler
	Logger   *slog.Logger
}

// NewRouter builds the application router.
func NewRouter(cfg Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(custommw.NewStructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)

	r.Route("/weddings/{weddingId}", func(r chi.Router) {
		r.Get("/financials", cfg.Payments.GetFinancials)
		r.Get("/payments", cfg.Payments.ListPayments)
		r.Post("/payments/schedule", cfg.Payments.EnsureSchedule)
		r.Patch("/complete", cfg.Weddings.CompleteWedding)
		r.Get("/assignment", cfg.Weddings.GetAssignment)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/checkout", cfg.Checkout.Initiate)
		r.Get("/verify", cfg.Checkout.Verify)
		r.Get("/return", cfg.Checkout.Return)
	})

	return r
}
