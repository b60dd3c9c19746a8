package models

import (
	"errors"
	"strings"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
)

type AmountRequest struct {
	Amount string `json:"amount"`
}

func (r AmountRequest) Validate() error {
	if err := validateAmount(r.Amount); err != "" {
		return errors.New(err)
	}
	return nil
}

type TransferRequest struct {
	ToAccountID string `json:"toAccountId"`
	Amount      string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.ToAccountID) == "" {
		errs = append(errs, "toAccountId is required")
	}
	if err := validateAmount(r.Amount); err != "" {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ChangePinRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin"`
	ConfirmPin string `json:"confirmPin"`
}

func (r ChangePinRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CurrentPin) == "" {
		errs = append(errs, "currentPin is required")
	}
	if r.NewPin == "" {
		errs = append(errs, "newPin is required")
	}
	if r.ConfirmPin == "" {
		errs = append(errs, "confirmPin is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateAmount(raw string) string {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return "amount is required"
	}
	parsed, err := domain.ParseAmount(amount)
	if err != nil {
		return "amount must be a plain decimal with at most two decimal places"
	}
	if parsed <= 0 {
		return "amount must be greater than zero"
	}
	return ""
}

type BalanceResponse struct {
	AccountID  string `json:"accountId"`
	HolderName string `json:"holderName"`
	Balance    string `json:"balance"`
}

type CashResponse struct {
	AccountID string `json:"accountId"`
	Amount    string `json:"amount"`
	Balance   string `json:"balance"`
}

type TransferResponse struct {
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	RecipientName string `json:"recipientName"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

type TransactionResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	Counterparty string `json:"counterparty,omitempty"`
	BalanceAfter string `json:"balanceAfter"`
	Timestamp    string `json:"timestamp"`
}

type HistoryResponse struct {
	AccountID    string                `json:"accountId"`
	Transactions []TransactionResponse `json:"transactions"`
}

type ChangePinResponse struct {
	AccountID string `json:"accountId"`
}
