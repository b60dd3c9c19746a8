package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransactionKind string

const (
	TransactionWithdrawal  TransactionKind = "WITHDRAWAL"
	TransactionDeposit     TransactionKind = "DEPOSIT"
	TransactionTransferOut TransactionKind = "TRANSFER_OUT"
	TransactionTransferIn  TransactionKind = "TRANSFER_IN"
	TransactionPINChange   TransactionKind = "PIN_CHANGE"
)

// HistoryLimit is the number of records an account keeps.
const HistoryLimit = 10

// Transaction is a history record. BalanceAfter is the account balance at
// the moment the record was appended.
type Transaction struct {
	ID           string
	Kind         TransactionKind
	Amount       Amount
	Counterparty string
	Timestamp    time.Time
	BalanceAfter Amount
}

func newTransaction(kind TransactionKind, amount Amount, counterparty string, at time.Time, balanceAfter Amount) Transaction {
	return Transaction{
		ID:           uuid.New().String(),
		Kind:         kind,
		Amount:       amount,
		Counterparty: counterparty,
		Timestamp:    at,
		BalanceAfter: balanceAfter,
	}
}

// transactionRing holds the most recent HistoryLimit records; pushing onto
// a full ring overwrites the oldest one.
type transactionRing struct {
	entries [HistoryLimit]Transaction
	start   int
	size    int
}

func (r *transactionRing) push(t Transaction) {
	if r.size < HistoryLimit {
		r.entries[(r.start+r.size)%HistoryLimit] = t
		r.size++
		return
	}
	r.entries[r.start] = t
	r.start = (r.start + 1) % HistoryLimit
}

// list returns the records oldest first.
func (r *transactionRing) list() []Transaction {
	out := make([]Transaction, r.size)
	for i := range out {
		out[i] = r.entries[(r.start+i)%HistoryLimit]
	}
	return out
}
