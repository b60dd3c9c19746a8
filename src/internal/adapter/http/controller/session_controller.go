package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/middleware"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/models"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/usecase/service_interfaces"
)

type SessionController struct {
	service service_interfaces.SessionService
}

func NewSessionController(service service_interfaces.SessionService) *SessionController {
	return &SessionController{service: service}
}

func (c *SessionController) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", c.login)
	r.With(middleware.RequireSessionToken).Delete("/sessions", c.logout)
}

func (c *SessionController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if !decodeBody[models.LoginResponse](w, r, &req, start) {
		return
	}

	response, err := c.service.Login(r.Context(), req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *SessionController) logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Logout(r.Context(), middleware.SessionTokenFromContext(r.Context()))
	respond(w, r, response, err, http.StatusOK, start)
}
