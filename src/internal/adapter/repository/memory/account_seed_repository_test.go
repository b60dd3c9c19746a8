package memory

import (
	"context"
	"testing"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
)

func TestAccountSeedRepositorySeedsLedger(t *testing.T) {
	var repo domain.AccountSeedRepository = NewAccountSeedRepository()
	seeds, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(seeds) != 4 {
		t.Fatalf("expected 4 demo accounts, got %d", len(seeds))
	}

	ledger, err := domain.NewLedger(seeds...)
	if err != nil {
		t.Fatalf("expected seeds to build a ledger, got %v", err)
	}

	account, err := ledger.Lookup("1004")
	if err != nil {
		t.Fatalf("expected account 1004, got %v", err)
	}
	if account.HolderName() != "Virat" || account.Balance() != 15000_00 {
		t.Fatalf("unexpected account 1004: holder=%s balance=%s", account.HolderName(), account.Balance())
	}
	if !account.VerifyCredential("0101") {
		t.Fatal("expected leading-zero pin 0101 to verify")
	}
	if total := ledger.TotalBalance(); total != 32000_00 {
		t.Fatalf("expected total 32000.00, got %s", total)
	}
}
