// Package api exposes the society ledger over HTTP: forms and lists of the
// office application become JSON endpoints over the store and the accounting
// engine.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// NewRouter builds the HTTP routing table over the given store.
func NewRouter(s *store.Store, income ledger.IncomeCategories) *chi.Mux {
	sessionHandler := NewSessionHandler(s)
	membersHandler := NewMembersHandler(s)
	transactionsHandler := NewTransactionsHandler(s)
	reportsHandler := NewReportsHandler(s, income)
	profitHandler := NewProfitHandler(s)
	usersHandler := NewUsersHandler(s)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Session endpoints (no session required).
	r.Post("/login", sessionHandler.Login)
	r.Post("/logout", sessionHandler.Logout)

	// Ledger API (session required).
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(SessionMiddleware(s))

		r.Get("/session", sessionHandler.Session)
		r.Post("/password", sessionHandler.ChangePassword)

		r.Route("/members", func(r chi.Router) {
			r.Get("/", membersHandler.List)
			r.Post("/", membersHandler.Create)
			r.Get("/due/savings", membersHandler.SavingsDue)
			r.Get("/due/loan", membersHandler.LoanDue)
			r.Get("/{id}", membersHandler.Get)
			r.Put("/{id}", membersHandler.Update)
			r.With(RequireAdmin).Delete("/{id}", membersHandler.Delete)
			r.Get("/{id}/ledger", membersHandler.Ledger)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", transactionsHandler.List)
			r.Post("/", transactionsHandler.Create)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", reportsHandler.Summary)
			r.Get("/monthly-series", reportsHandler.MonthlySeries)
			r.Get("/monthly", reportsHandler.Monthly)
			r.Get("/profit", reportsHandler.Profit)
		})

		r.With(RequireAdmin).Post("/profit/distribution", profitHandler.Distribute)

		r.Route("/users", func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Get("/", usersHandler.List)
			r.Post("/", usersHandler.Create)
			r.Delete("/{id}", usersHandler.Delete)
		})
	})

	// Health check endpoint.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
