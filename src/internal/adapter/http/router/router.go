package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type SessionRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type AccountRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type AdminRouteRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

func New(
	sessionController SessionRouteRegistrar,
	accountController AccountRouteRegistrar,
	adminController AdminRouteRegistrar,
	adminAuthMiddleware func(http.Handler) http.Handler,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	registerSwaggerRoutes(r)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if sessionController != nil {
		sessionController.RegisterRoutes(r)
	}
	if accountController != nil {
		accountController.RegisterRoutes(r)
	}
	if adminController != nil {
		adminController.RegisterRoutes(r, adminAuthMiddleware)
	}

	return r
}
