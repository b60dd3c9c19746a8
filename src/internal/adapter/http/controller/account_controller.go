package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/middleware"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/models"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/usecase/service_interfaces"
)

// AccountController serves the logged-in holder's own account.
type AccountController struct {
	service service_interfaces.SessionService
}

func NewAccountController(service service_interfaces.SessionService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(r chi.Router) {
	r.Route("/account", func(r chi.Router) {
		r.Use(middleware.RequireSessionToken)
		r.Get("/balance", c.balance)
		r.Post("/withdraw", c.withdraw)
		r.Post("/deposit", c.deposit)
		r.Post("/transfer", c.transfer)
		r.Get("/history", c.history)
		r.Post("/pin", c.changePIN)
	})
}

func (c *AccountController) balance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Balance(r.Context(), middleware.SessionTokenFromContext(r.Context()))
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AmountRequest
	if !decodeBody[models.CashResponse](w, r, &req, start) {
		return
	}

	response, err := c.service.Withdraw(r.Context(), middleware.SessionTokenFromContext(r.Context()), req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AmountRequest
	if !decodeBody[models.CashResponse](w, r, &req, start) {
		return
	}

	response, err := c.service.Deposit(r.Context(), middleware.SessionTokenFromContext(r.Context()), req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AccountController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferRequest
	if !decodeBody[models.TransferResponse](w, r, &req, start) {
		return
	}

	response, err := c.service.Transfer(r.Context(), middleware.SessionTokenFromContext(r.Context()), req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AccountController) history(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.History(r.Context(), middleware.SessionTokenFromContext(r.Context()))
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AccountController) changePIN(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ChangePinRequest
	if !decodeBody[models.ChangePinResponse](w, r, &req, start) {
		return
	}

	response, err := c.service.ChangePIN(r.Context(), middleware.SessionTokenFromContext(r.Context()), req)
	respond(w, r, response, err, http.StatusOK, start)
}
