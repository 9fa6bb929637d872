package models

import (
	// Go Internal Packages
	"fmt"
	"strings"

	// External Packages
	"github.com/shopspring/decimal"
)

// TxKind enumerates the supported transaction kinds.
type TxKind uint8

const (
	Deposit TxKind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

var kindNames = map[TxKind]string{
	Deposit:    "deposit",
	Withdrawal: "withdrawal",
	Dispute:    "dispute",
	Resolve:    "resolve",
	Chargeback: "chargeback",
}

var kindsByName = map[string]TxKind{
	"deposit":    Deposit,
	"withdrawal": Withdrawal,
	"dispute":    Dispute,
	"resolve":    Resolve,
	"chargeback": Chargeback,
}

func (k TxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Disputable reports whether events of this kind are recorded for later
// dispute resolution.
func (k TxKind) Disputable() bool {
	return k == Deposit || k == Withdrawal
}

// ParseTxKind parses a transaction kind token. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseTxKind(s string) (TxKind, error) {
	kind, ok := kindsByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown transaction kind %q", s)
	}
	return kind, nil
}

// Event is one validated transaction instruction. It is built once by the
// ingestion side and never mutated afterwards.
type Event struct {
	// ID is unique among deposits and withdrawals. Disputes, resolves and
	// chargebacks carry the id of the transaction they reference.
	ID       uint32
	Kind     TxKind
	ClientID uint16
	// Amount is meaningful only for deposits and withdrawals.
	Amount decimal.Decimal
}
