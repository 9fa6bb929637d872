package ledger

import (
	// Go Internal Packages
	"sort"

	// External Packages
	"github.com/shopspring/decimal"
)

// AccountTable owns every account, keyed by client id. It is handed to the
// processor at startup and must not be touched by anything else until the
// run is over; exclusivity is what makes it safe without locks.
type AccountTable struct {
	accounts map[uint16]*Account
}

func NewAccountTable() *AccountTable {
	return &AccountTable{accounts: make(map[uint16]*Account)}
}

// Get returns the account for the client, if one exists.
func (t *AccountTable) Get(clientID uint16) (*Account, bool) {
	account, ok := t.accounts[clientID]
	return account, ok
}

// GetOrCreate returns the account for the client, creating an empty one on
// first use. Accounts are never deleted during a run.
func (t *AccountTable) GetOrCreate(clientID uint16) *Account {
	if account, ok := t.accounts[clientID]; ok {
		return account
	}
	account := NewAccount(clientID)
	t.accounts[clientID] = account
	return account
}

// Len returns the number of accounts.
func (t *AccountTable) Len() int {
	return len(t.accounts)
}

// AccountView is a read-only copy of one account's final state.
type AccountView struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Snapshot returns copies of all accounts sorted by client id. Callers get
// no handle on the live state.
func (t *AccountTable) Snapshot() []AccountView {
	views := make([]AccountView, 0, len(t.accounts))
	for _, account := range t.accounts {
		views = append(views, AccountView{
			ClientID:  account.ClientID,
			Available: account.Available,
			Held:      account.Held,
			Total:     account.Total,
			Locked:    account.Locked,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ClientID < views[j].ClientID })
	return views
}
