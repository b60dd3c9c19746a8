package models

import (
	"errors"
	"strings"
)

type LoginRequest struct {
	AccountID string `json:"accountId"`
	Pin       string `json:"pin"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}
	if strings.TrimSpace(r.Pin) == "" {
		errs = append(errs, "pin is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type LoginResponse struct {
	SessionToken      string `json:"sessionToken,omitempty"`
	AccountID         string `json:"accountId"`
	HolderName        string `json:"holderName,omitempty"`
	Balance           string `json:"balance,omitempty"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
	ExpiresAt         string `json:"expiresAt,omitempty"`
}

type LogoutResponse struct {
	AccountID string `json:"accountId"`
}
