package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/models"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/commons"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/logger"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/usecase/service_interfaces"
)

type session struct {
	token     string
	accountID string
	lastSeen  time.Time
}

var _ service_interfaces.SessionService = (*SessionService)(nil)

// SessionService is the terminal: at most one card holder is logged in at a
// time, and every account operation runs against that holder's account.
// s.mu is held from token check to the end of each account operation, so a
// logout never lands in the middle of one. Lock order is s.mu before any
// account lock.
type SessionService struct {
	ledger      *domain.Ledger
	idleTimeout time.Duration
	now         func() time.Time

	mu     sync.Mutex
	active *session
}

func NewSessionService(ledger *domain.Ledger, idleTimeout time.Duration) *SessionService {
	return &SessionService{
		ledger:      ledger,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

func (s *SessionService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("session service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("session service login validation failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse](commons.MsgValidationFailed, err.Error()), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	account, err := s.ledger.Lookup(accountID)
	if err != nil {
		logger.Error("session service login account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.LoginResponse](commons.MsgAccountNotFound), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireIdleLocked()
	if s.active != nil {
		logger.Warn("session service login rejected, terminal busy", logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.LoginResponse](commons.MsgSessionActive, "log out of the current session first"), ErrSessionActive
	}

	if account.IsLocked() {
		logger.Warn("session service login on locked account", logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.LoginResponse](commons.MsgAccountLocked, "Too many failed attempts"), domain.ErrAccountLocked
	}

	if !account.VerifyCredential(req.Pin) {
		remaining := account.AttemptsRemaining()
		data := models.LoginResponse{AccountID: accountID, AttemptsRemaining: remaining}
		if account.IsLocked() {
			logger.Warn("session service account locked after failed attempts", logger.Fields{
				"accountId": accountID,
			})
			return commons.ErrorResponseWithData(commons.MsgAccountLocked, data, "Too many failed attempts"), domain.ErrAccountLocked
		}

		logger.Info("session service login invalid pin", logger.Fields{
			"accountId":         accountID,
			"attemptsRemaining": remaining,
		})
		return commons.ErrorResponseWithData(commons.MsgInvalidPin, data, fmt.Sprintf("%d attempts remaining", remaining)), domain.ErrUnauthorized
	}

	started := s.now()
	s.active = &session{
		token:     uuid.NewString(),
		accountID: accountID,
		lastSeen:  started,
	}

	response := models.LoginResponse{
		SessionToken:      s.active.token,
		AccountID:         accountID,
		HolderName:        account.HolderName(),
		Balance:           account.Balance().String(),
		AttemptsRemaining: account.AttemptsRemaining(),
		ExpiresAt:         started.Add(s.idleTimeout).UTC().Format(time.RFC3339),
	}

	logger.Info("session service login success", logger.Fields{
		"accountId": accountID,
	})

	return commons.SuccessResponse("login successful", response), nil
}

func (s *SessionService) Logout(ctx context.Context, token string) (commons.Response[models.LogoutResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireIdleLocked()
	if !s.matchesLocked(token) {
		return commons.ErrorResponse[models.LogoutResponse](commons.MsgInvalidSession), ErrInvalidSession
	}

	accountID := s.active.accountID
	s.active = nil

	logger.Info("session service logout success", logger.Fields{
		"accountId": accountID,
	})

	return commons.SuccessResponse("logged out successfully", models.LogoutResponse{AccountID: accountID}), nil
}

func (s *SessionService) Balance(ctx context.Context, token string) (commons.Response[models.BalanceResponse], error) {
	account, release, err := s.authorize(token)
	if err != nil {
		return commons.ErrorResponse[models.BalanceResponse](commons.MsgInvalidSession), err
	}
	defer release()

	response := models.BalanceResponse{
		AccountID:  account.ID(),
		HolderName: account.HolderName(),
		Balance:    account.Balance().String(),
	}

	return commons.SuccessResponse("balance fetched successfully", response), nil
}

func (s *SessionService) Withdraw(ctx context.Context, token string, req models.AmountRequest) (commons.Response[models.CashResponse], error) {
	account, release, err := s.authorize(token)
	if err != nil {
		return commons.ErrorResponse[models.CashResponse](commons.MsgInvalidSession), err
	}
	defer release()

	logger.Info("session service withdraw request", logger.Fields{
		"accountId": account.ID(),
		"payload":   logger.SanitizePayload(req),
	})

	amount, err := parseAmountRequest(req)
	if err != nil {
		logger.Error("session service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.CashResponse](commons.MsgValidationFailed, err.Error()), err
	}

	if err := account.Withdraw(amount); err != nil {
		logger.Error("session service withdraw rejected", err, logger.Fields{
			"accountId": account.ID(),
			"amount":    amount.String(),
		})
		return commons.ErrorResponse[models.CashResponse](failureMessage(err), err.Error()), err
	}

	response := models.CashResponse{
		AccountID: account.ID(),
		Amount:    amount.String(),
		Balance:   account.Balance().String(),
	}

	logger.Info("session service withdraw success", logger.Fields{
		"accountId": response.AccountID,
		"amount":    response.Amount,
	})

	return commons.SuccessResponse("withdrawal successful", response), nil
}

func (s *SessionService) Deposit(ctx context.Context, token string, req models.AmountRequest) (commons.Response[models.CashResponse], error) {
	account, release, err := s.authorize(token)
	if err != nil {
		return commons.ErrorResponse[models.CashResponse](commons.MsgInvalidSession), err
	}
	defer release()

	logger.Info("session service deposit request", logger.Fields{
		"accountId": account.ID(),
		"payload":   logger.SanitizePayload(req),
	})

	amount, err := parseAmountRequest(req)
	if err != nil {
		logger.Error("session service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.CashResponse](commons.MsgValidationFailed, err.Error()), err
	}

	if err := account.Deposit(amount); err != nil {
		logger.Error("session service deposit rejected", err, logger.Fields{
			"accountId": account.ID(),
			"amount":    amount.String(),
		})
		return commons.ErrorResponse[models.CashResponse](failureMessage(err), err.Error()), err
	}

	response := models.CashResponse{
		AccountID: account.ID(),
		Amount:    amount.String(),
		Balance:   account.Balance().String(),
	}

	logger.Info("session service deposit success", logger.Fields{
		"accountId": response.AccountID,
		"amount":    response.Amount,
	})

	return commons.SuccessResponse("deposit successful", response), nil
}

func (s *SessionService) Transfer(ctx context.Context, token string, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	account, release, err := s.authorize(token)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse](commons.MsgInvalidSession), err
	}
	defer release()

	logger.Info("session service transfer request", logger.Fields{
		"accountId": account.ID(),
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("session service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse](commons.MsgValidationFailed, err.Error()), err
	}

	toID := strings.TrimSpace(req.ToAccountID)
	recipient, err := s.ledger.Lookup(toID)
	if err != nil {
		logger.Error("session service transfer recipient lookup failed", err, logger.Fields{
			"toAccountId": toID,
		})
		return commons.ErrorResponse[models.TransferResponse](commons.MsgRecipientNotFound), err
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		logger.Error("session service transfer parse amount failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse](commons.MsgValidationFailed, err.Error()), err
	}

	if err := s.ledger.Transfer(account.ID(), recipient.ID(), amount); err != nil {
		logger.Error("session service transfer rejected", err, logger.Fields{
			"fromAccountId": account.ID(),
			"toAccountId":   recipient.ID(),
			"amount":        amount.String(),
		})
		return commons.ErrorResponse[models.TransferResponse](failureMessage(err), err.Error()), err
	}

	response := models.TransferResponse{
		FromAccountID: account.ID(),
		ToAccountID:   recipient.ID(),
		RecipientName: recipient.HolderName(),
		Amount:        amount.String(),
		Balance:       account.Balance().String(),
	}

	logger.Info("session service transfer success", logger.Fields{
		"fromAccountId": response.FromAccountID,
		"toAccountId":   response.ToAccountID,
		"amount":        response.Amount,
	})

	return commons.SuccessResponse("transfer successful", response), nil
}

func (s *SessionService) History(ctx context.Context, token string) (commons.Response[models.HistoryResponse], error) {
	account, release, err := s.authorize(token)
	if err != nil {
		return commons.ErrorResponse[models.HistoryResponse](commons.MsgInvalidSession), err
	}
	defer release()

	history := account.History()
	response := models.HistoryResponse{
		AccountID:    account.ID(),
		Transactions: make([]models.TransactionResponse, 0, len(history)),
	}
	for _, tx := range history {
		response.Transactions = append(response.Transactions, models.TransactionResponse{
			ID:           tx.ID,
			Type:         string(tx.Kind),
			Amount:       tx.Amount.String(),
			Counterparty: tx.Counterparty,
			BalanceAfter: tx.BalanceAfter.String(),
			Timestamp:    tx.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	return commons.SuccessResponse("history fetched successfully", response), nil
}

// ChangePIN re-checks the current PIN first. A miss counts toward the lockout,
// and if it locks the account the session is closed.
func (s *SessionService) ChangePIN(ctx context.Context, token string, req models.ChangePinRequest) (commons.Response[models.ChangePinResponse], error) {
	account, release, err := s.authorize(token)
	if err != nil {
		return commons.ErrorResponse[models.ChangePinResponse](commons.MsgInvalidSession), err
	}
	defer release()

	logger.Info("session service change pin request", logger.Fields{
		"accountId": account.ID(),
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("session service change pin validation failed", err, nil)
		return commons.ErrorResponse[models.ChangePinResponse](commons.MsgValidationFailed, err.Error()), err
	}

	if !account.VerifyCredential(req.CurrentPin) {
		if account.IsLocked() {
			s.active = nil
			logger.Warn("session service account locked during pin change", logger.Fields{
				"accountId": account.ID(),
			})
			return commons.ErrorResponse[models.ChangePinResponse](commons.MsgAccountLocked, "Too many failed attempts"), domain.ErrAccountLocked
		}
		remaining := account.AttemptsRemaining()
		return commons.ErrorResponse[models.ChangePinResponse](commons.MsgInvalidPin, fmt.Sprintf("%d attempts remaining", remaining)), domain.ErrUnauthorized
	}

	if req.NewPin != req.ConfirmPin {
		return commons.ErrorResponse[models.ChangePinResponse](commons.MsgPinMismatch), ErrPinMismatch
	}

	if err := account.ChangeCredential(req.NewPin); err != nil {
		logger.Error("session service change pin rejected", err, logger.Fields{
			"accountId": account.ID(),
		})
		return commons.ErrorResponse[models.ChangePinResponse](failureMessage(err), err.Error()), err
	}

	logger.Info("session service change pin success", logger.Fields{
		"accountId": account.ID(),
	})

	return commons.SuccessResponse("PIN changed successfully", models.ChangePinResponse{AccountID: account.ID()}), nil
}

// authorize returns the session's account with s.mu held. The caller runs
// its operation and then calls release.
func (s *SessionService) authorize(token string) (*domain.Account, func(), error) {
	s.mu.Lock()

	s.expireIdleLocked()
	if !s.matchesLocked(token) {
		s.mu.Unlock()
		return nil, nil, ErrInvalidSession
	}
	s.active.lastSeen = s.now()

	account, err := s.ledger.Lookup(s.active.accountID)
	if err != nil {
		s.mu.Unlock()
		return nil, nil, err
	}
	return account, s.mu.Unlock, nil
}

func (s *SessionService) matchesLocked(token string) bool {
	if s.active == nil || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.active.token), []byte(token)) == 1
}

func (s *SessionService) expireIdleLocked() {
	if s.active == nil || s.idleTimeout <= 0 {
		return
	}
	if s.now().Sub(s.active.lastSeen) > s.idleTimeout {
		logger.Info("session service session expired", logger.Fields{
			"accountId": s.active.accountID,
		})
		s.active = nil
	}
}

func parseAmountRequest(req models.AmountRequest) (domain.Amount, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return domain.ParseAmount(req.Amount)
}
