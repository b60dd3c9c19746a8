package service_interfaces

import (
	"context"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/models"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/commons"
)

type AdminService interface {
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummaryResponse], error)
	UnlockAccount(ctx context.Context, accountID string) (commons.Response[models.UnlockAccountResponse], error)
}
