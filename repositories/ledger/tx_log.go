package ledger

import (
	// Local Packages
	models "tx-ledger/models"
)

// Entry is one recorded deposit or withdrawal plus its dispute state.
type Entry struct {
	Tx       models.Event
	Disputed bool
}

// TxLog keeps every deposit and withdrawal seen so far, keyed by
// transaction id, so later disputes can be validated against them.
// Entries are never deleted during a run. Like the AccountTable it is
// owned exclusively by the processor.
type TxLog struct {
	entries map[uint32]*Entry
}

func NewTxLog() *TxLog {
	return &TxLog{entries: make(map[uint32]*Entry)}
}

// Record stores the event for later dispute resolution. Only deposits and
// withdrawals are kept. Ids are expected unique; a duplicate overwrites
// the previous entry rather than corrupting it.
func (l *TxLog) Record(tx models.Event) {
	if !tx.Kind.Disputable() {
		return
	}
	l.entries[tx.ID] = &Entry{Tx: tx}
}

// Lookup returns the entry recorded under the transaction id, if any.
func (l *TxLog) Lookup(txID uint32) (*Entry, bool) {
	entry, ok := l.entries[txID]
	return entry, ok
}

// MarkDisputed flags the entry as under dispute. No-op if the id is absent.
func (l *TxLog) MarkDisputed(txID uint32) {
	if entry, ok := l.entries[txID]; ok {
		entry.Disputed = true
	}
}

// MarkResolved clears the dispute flag. No-op if the id is absent.
func (l *TxLog) MarkResolved(txID uint32) {
	if entry, ok := l.entries[txID]; ok {
		entry.Disputed = false
	}
}

// Len returns the number of recorded transactions.
func (l *TxLog) Len() int {
	return len(l.entries)
}
