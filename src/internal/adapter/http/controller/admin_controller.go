package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/usecase/service_interfaces"
)

type AdminController struct {
	service service_interfaces.AdminService
}

func NewAdminController(service service_interfaces.AdminService) *AdminController {
	return &AdminController{service: service}
}

func (c *AdminController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/admin", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/accounts", c.listAccounts)
		r.Post("/accounts/{accountID}/unlock", c.unlockAccount)
	})
}

func (c *AdminController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListAccounts(r.Context())
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AdminController) unlockAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.UnlockAccount(r.Context(), chi.URLParam(r, "accountID"))
	respond(w, r, response, err, http.StatusOK, start)
}
