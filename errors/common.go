package errors

import "fmt"

// AccountLockedErr reports an operation attempted on a locked account.
func AccountLockedErr(clientID uint16) error {
	return E(Locked, fmt.Sprintf("account %d is locked", clientID), nil)
}

// InsufficientFundsErr reports a withdrawal or hold exceeding the available balance.
func InsufficientFundsErr(clientID uint16) error {
	return E(InsufficientFunds, fmt.Sprintf("account %d has insufficient available funds", clientID), nil)
}

// UnknownAccountErr reports a reference to a client with no account.
func UnknownAccountErr(clientID uint16) error {
	return E(NotFound, fmt.Sprintf("no account for client %d", clientID), nil)
}

// UnknownTransactionErr reports a reference to a transaction id absent from the log.
func UnknownTransactionErr(txID uint32) error {
	return E(NotFound, fmt.Sprintf("no recorded transaction %d", txID), nil)
}

// ClientMismatchErr reports a dispute whose client does not own the referenced transaction.
func ClientMismatchErr(txID uint32, clientID uint16) error {
	return E(Invalid, fmt.Sprintf("transaction %d does not belong to client %d", txID, clientID), nil)
}

// NotDisputedErr reports a resolve or chargeback against an undisputed transaction.
func NotDisputedErr(txID uint32) error {
	return E(Invalid, fmt.Sprintf("transaction %d is not under dispute", txID), nil)
}
