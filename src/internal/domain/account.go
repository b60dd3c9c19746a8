package domain

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/sasha-s/go-deadlock"
)

const (
	MaxFailedAttempts        = 3
	WithdrawalLimit   Amount = 5000_00
	CredentialLength         = 4
)

// now is swapped out by tests that need fixed timestamps.
var now = time.Now

// Account is a single ledger entry. All mutable state is guarded by mu;
// id and holderName never change after construction.
type Account struct {
	id         string
	holderName string

	mu             deadlock.Mutex
	credential     string
	balance        Amount
	failedAttempts int
	locked         bool
	history        transactionRing
}

// AccountSnapshot is a consistent copy of an account's state.
type AccountSnapshot struct {
	ID             string
	HolderName     string
	Balance        Amount
	Locked         bool
	FailedAttempts int
}

func NewAccount(id, holderName, credential string, balance Amount) (*Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("account id is required")
	}
	if balance < 0 {
		return nil, fmt.Errorf("%w: opening balance %s is negative", ErrInvalidAmount, balance)
	}
	if !validCredential(credential) {
		return nil, fmt.Errorf("account %s: %w", id, ErrInvalidFormat)
	}

	return &Account{
		id:         id,
		holderName: strings.TrimSpace(holderName),
		credential: credential,
		balance:    balance,
	}, nil
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) HolderName() string {
	return a.holderName
}

func (a *Account) Balance() Amount {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) IsLocked() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.locked
}

func (a *Account) FailedAttempts() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failedAttempts
}

// AttemptsRemaining is zero once the account is locked.
func (a *Account) AttemptsRemaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.locked {
		return 0
	}
	return MaxFailedAttempts - a.failedAttempts
}

func (a *Account) Snapshot() AccountSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AccountSnapshot{
		ID:             a.id,
		HolderName:     a.holderName,
		Balance:        a.balance,
		Locked:         a.locked,
		FailedAttempts: a.failedAttempts,
	}
}

// History returns up to HistoryLimit records, newest last.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.list()
}

// VerifyCredential checks input against the stored PIN. Every call on an
// unlocked account mutates the lockout counter: a match resets it, a
// mismatch increments it and the third consecutive mismatch locks the
// account. A locked account rejects every input without side effects.
func (a *Account) VerifyCredential(input string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.locked {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(a.credential), []byte(input)) == 1 {
		a.failedAttempts = 0
		return true
	}

	a.failedAttempts++
	if a.failedAttempts >= MaxFailedAttempts {
		a.locked = true
	}
	return false
}

func (a *Account) Withdraw(amount Amount) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return ErrInsufficientFunds
	}
	if amount > WithdrawalLimit {
		return ErrLimitExceeded
	}

	a.balance -= amount
	a.recordLocked(TransactionWithdrawal, amount, "", now())
	return nil
}

// Deposit leaves the account untouched for non-positive amounts and
// reports that as ErrInvalidAmount.
func (a *Account) Deposit(amount Amount) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !canAdd(a.balance, amount) {
		return fmt.Errorf("%w: balance overflow", ErrInvalidAmount)
	}

	a.balance += amount
	a.recordLocked(TransactionDeposit, amount, "", now())
	return nil
}

// ChangeCredential does not re-verify the current PIN; callers do that
// through VerifyCredential first.
func (a *Account) ChangeCredential(newValue string) error {
	if !validCredential(newValue) {
		return ErrInvalidFormat
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.credential = newValue
	a.recordLocked(TransactionPINChange, 0, "", now())
	return nil
}

func (a *Account) Unlock() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.locked = false
	a.failedAttempts = 0
}

// recordLocked must be called with mu held.
func (a *Account) recordLocked(kind TransactionKind, amount Amount, counterparty string, at time.Time) {
	a.history.push(newTransaction(kind, amount, counterparty, at, a.balance))
}

func validCredential(value string) bool {
	if len(value) != CredentialLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
