package memory

import (
	"context"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
)

var _ domain.AccountSeedRepository = (*AccountSeedRepository)(nil)

// AccountSeedRepository serves the fixed demo accounts the terminal starts with.
type AccountSeedRepository struct{}

func NewAccountSeedRepository() *AccountSeedRepository {
	return &AccountSeedRepository{}
}

func (r *AccountSeedRepository) GetAll(_ context.Context) ([]domain.AccountSeed, error) {
	seeds := []domain.AccountSeed{
		{ID: "1001", Credential: "1234", Balance: 1000_00, HolderName: "Dhoni"},
		{ID: "1002", Credential: "5678", Balance: 4500_00, HolderName: "Zarri"},
		{ID: "1003", Credential: "9988", Balance: 11500_00, HolderName: "Burak"},
		{ID: "1004", Credential: "0101", Balance: 15000_00, HolderName: "Virat"},
	}

	return seeds, nil
}
