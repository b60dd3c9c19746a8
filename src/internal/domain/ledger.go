package domain

import (
	"context"
	"fmt"
	"sort"
)

type AccountSeed struct {
	ID         string
	HolderName string
	Credential string
	Balance    Amount
}

type AccountSeedRepository interface {
	GetAll(ctx context.Context) ([]AccountSeed, error)
}

// Ledger owns every account. The account set is fixed at construction, so
// lookups need no locking; per-account state is guarded by each Account.
type Ledger struct {
	accounts map[string]*Account
	ids      []string
}

func NewLedger(seeds ...AccountSeed) (*Ledger, error) {
	l := &Ledger{accounts: make(map[string]*Account, len(seeds))}
	for _, seed := range seeds {
		account, err := NewAccount(seed.ID, seed.HolderName, seed.Credential, seed.Balance)
		if err != nil {
			return nil, fmt.Errorf("seed account %q: %w", seed.ID, err)
		}
		if _, exists := l.accounts[account.ID()]; exists {
			return nil, fmt.Errorf("seed account %q: %w", seed.ID, ErrDuplicateAccount)
		}
		l.accounts[account.ID()] = account
		l.ids = append(l.ids, account.ID())
	}
	sort.Strings(l.ids)
	return l, nil
}

func (l *Ledger) Lookup(id string) (*Account, error) {
	account, ok := l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return account, nil
}

// Accounts returns every account ordered by id.
func (l *Ledger) Accounts() []*Account {
	out := make([]*Account, 0, len(l.ids))
	for _, id := range l.ids {
		out = append(out, l.accounts[id])
	}
	return out
}

// Transfer moves amount from one account to another. Both account locks are
// taken in id order and held until the balances and both history records are
// written, so no reader observes a debit without its credit. Any failed
// precondition leaves both accounts untouched.
func (l *Ledger) Transfer(fromID, toID string, amount Amount) error {
	to, ok := l.accounts[toID]
	if !ok {
		return fmt.Errorf("recipient %w: %s", ErrNotFound, toID)
	}
	if fromID == toID {
		return ErrSameAccount
	}
	from, ok := l.accounts[fromID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, fromID)
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	unlock := lockPair(from, to)
	defer unlock()

	if amount > from.balance {
		return ErrInsufficientFunds
	}
	if !canAdd(to.balance, amount) {
		return fmt.Errorf("%w: balance overflow", ErrInvalidAmount)
	}

	from.balance -= amount
	to.balance += amount

	at := now()
	from.recordLocked(TransactionTransferOut, amount, to.id, at)
	to.recordLocked(TransactionTransferIn, amount, from.id, at)
	return nil
}

// TotalBalance sums every balance while holding all account locks.
func (l *Ledger) TotalBalance() Amount {
	accounts := l.Accounts()
	for _, a := range accounts {
		a.mu.Lock()
	}
	var total Amount
	for _, a := range accounts {
		total += a.balance
	}
	for i := len(accounts) - 1; i >= 0; i-- {
		accounts[i].mu.Unlock()
	}
	return total
}

func lockPair(a, b *Account) func() {
	first, second := a, b
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
