package services

import (
	"context"
	"strings"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/models"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/commons"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/logger"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.AdminService = (*AdminService)(nil)

type AdminService struct {
	ledger *domain.Ledger
}

func NewAdminService(ledger *domain.Ledger) *AdminService {
	return &AdminService{ledger: ledger}
}

func (s *AdminService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummaryResponse], error) {
	accounts := s.ledger.Accounts()
	response := make([]models.AccountSummaryResponse, 0, len(accounts))
	for _, account := range accounts {
		snapshot := account.Snapshot()
		response = append(response, models.AccountSummaryResponse{
			AccountID:      snapshot.ID,
			HolderName:     snapshot.HolderName,
			Balance:        snapshot.Balance.String(),
			Locked:         snapshot.Locked,
			FailedAttempts: snapshot.FailedAttempts,
		})
	}

	logger.Info("admin service list accounts success", logger.Fields{
		"count": len(response),
	})

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}

func (s *AdminService) UnlockAccount(ctx context.Context, accountID string) (commons.Response[models.UnlockAccountResponse], error) {
	accountID = strings.TrimSpace(accountID)
	logger.Info("admin service unlock account request", logger.Fields{
		"accountId": accountID,
	})

	account, err := s.ledger.Lookup(accountID)
	if err != nil {
		logger.Error("admin service unlock account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.UnlockAccountResponse](commons.MsgAccountNotFound), err
	}

	wasLocked := account.IsLocked()
	account.Unlock()

	logger.Info("admin service unlock account success", logger.Fields{
		"accountId": accountID,
		"wasLocked": wasLocked,
	})

	return commons.SuccessResponse("account unlocked successfully", models.UnlockAccountResponse{
		AccountID: accountID,
		Locked:    account.IsLocked(),
	}), nil
}
