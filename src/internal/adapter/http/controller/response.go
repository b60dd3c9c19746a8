package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/commons"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/logger"
)

const maxBodyBytes = 1 << 16

// statusFor maps a failed service response to an HTTP status.
func statusFor(message string) int {
	switch message {
	case commons.MsgValidationFailed, commons.MsgInvalidAmount, commons.MsgInvalidPinFormat,
		commons.MsgPinMismatch, commons.MsgSameAccount:
		return http.StatusBadRequest
	case commons.MsgInvalidPin, commons.MsgInvalidSession:
		return http.StatusUnauthorized
	case commons.MsgAccountLocked:
		return http.StatusLocked
	case commons.MsgAccountNotFound, commons.MsgRecipientNotFound:
		return http.StatusNotFound
	case commons.MsgSessionActive:
		return http.StatusConflict
	case commons.MsgInsufficientFunds, commons.MsgLimitExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request, dst any, start time.Time) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[T]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return false
	}
	logRequest(r, dst)
	return true
}

func respond[T any](w http.ResponseWriter, r *http.Request, response commons.Response[T], err error, successStatus int, start time.Time) {
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusFor(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, successStatus, response)
	logResponse(r, successStatus, response, start)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
