package ledger

import (
	// Local Packages
	errors "tx-ledger/errors"

	// External Packages
	"github.com/shopspring/decimal"
)

// Account holds the balance state of one client. At every observable point
// Total equals Available plus Held, and neither Available nor Held is
// negative. Every operation either commits fully or returns an error
// without touching any field.
type Account struct {
	ClientID  uint16
	Total     decimal.Decimal
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// NewAccount builds an unlocked account with zero balances.
func NewAccount(clientID uint16) *Account {
	return &Account{
		ClientID:  clientID,
		Total:     decimal.Zero,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Deposit credits the amount to the available balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if a.Locked {
		return errors.AccountLockedErr(a.ClientID)
	}
	a.Total = a.Total.Add(amount)
	a.Available = a.Available.Add(amount)
	return nil
}

// Withdraw debits the amount from the available balance. A withdrawal that
// would bring the available balance to exactly zero is rejected: the check
// is strictly greater-than, preserved from the reference behavior.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.Locked {
		return errors.AccountLockedErr(a.ClientID)
	}
	if a.Available.Sub(amount).Sign() <= 0 {
		return errors.InsufficientFundsErr(a.ClientID)
	}
	a.Total = a.Total.Sub(amount)
	a.Available = a.Available.Sub(amount)
	return nil
}

// HoldForDispute moves the amount from available to held. Unlike Withdraw
// the hold may bring the available balance to exactly zero: disputing a
// deposit in full is the common case.
func (a *Account) HoldForDispute(amount decimal.Decimal) error {
	if a.Locked {
		return errors.AccountLockedErr(a.ClientID)
	}
	if a.Available.Sub(amount).Sign() < 0 {
		return errors.InsufficientFundsErr(a.ClientID)
	}
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
	return nil
}

// ReleaseDispute moves the amount back from held to available.
func (a *Account) ReleaseDispute(amount decimal.Decimal) error {
	if a.Locked {
		return errors.AccountLockedErr(a.ClientID)
	}
	a.Available = a.Available.Add(amount)
	a.Held = a.Held.Sub(amount)
	return nil
}

// Chargeback removes the held amount from the account and locks it. A
// chargeback against an already locked account is rejected, not a no-op.
func (a *Account) Chargeback(amount decimal.Decimal) error {
	if a.Locked {
		return errors.AccountLockedErr(a.ClientID)
	}
	a.Total = a.Total.Sub(amount)
	a.Held = a.Held.Sub(amount)
	a.Locked = true
	return nil
}
