package service_interfaces

import (
	"context"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/models"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/commons"
)

type SessionService interface {
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	Logout(ctx context.Context, token string) (commons.Response[models.LogoutResponse], error)
	Balance(ctx context.Context, token string) (commons.Response[models.BalanceResponse], error)
	Withdraw(ctx context.Context, token string, req models.AmountRequest) (commons.Response[models.CashResponse], error)
	Deposit(ctx context.Context, token string, req models.AmountRequest) (commons.Response[models.CashResponse], error)
	Transfer(ctx context.Context, token string, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	History(ctx context.Context, token string) (commons.Response[models.HistoryResponse], error)
	ChangePIN(ctx context.Context, token string, req models.ChangePinRequest) (commons.Response[models.ChangePinResponse], error)
}
