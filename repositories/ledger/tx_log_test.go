package ledger

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	models "tx-ledger/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxLog_RecordAndLookup(t *testing.T) {
	log := NewTxLog()

	log.Record(models.Event{ID: 1, Kind: models.Deposit, ClientID: 1, Amount: dec("10")})
	log.Record(models.Event{ID: 2, Kind: models.Withdrawal, ClientID: 1, Amount: dec("4")})

	entry, ok := log.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, models.Deposit, entry.Tx.Kind)
	assert.True(t, entry.Tx.Amount.Equal(dec("10")))
	assert.False(t, entry.Disputed)

	_, ok = log.Lookup(99)
	assert.False(t, ok)
	assert.Equal(t, 2, log.Len())
}

func TestTxLog_OnlyDisputableKindsRecorded(t *testing.T) {
	log := NewTxLog()

	log.Record(models.Event{ID: 3, Kind: models.Dispute, ClientID: 1})
	log.Record(models.Event{ID: 3, Kind: models.Resolve, ClientID: 1})
	log.Record(models.Event{ID: 3, Kind: models.Chargeback, ClientID: 1})

	_, ok := log.Lookup(3)
	assert.False(t, ok)
	assert.Equal(t, 0, log.Len())
}

func TestTxLog_DuplicateIDOverwrites(t *testing.T) {
	// Duplicate ids are not expected input, but must not corrupt state:
	// last write wins.
	log := NewTxLog()
	log.Record(models.Event{ID: 1, Kind: models.Deposit, ClientID: 1, Amount: dec("10")})
	log.Record(models.Event{ID: 1, Kind: models.Deposit, ClientID: 2, Amount: dec("7")})

	entry, ok := log.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, uint16(2), entry.Tx.ClientID)
	assert.True(t, entry.Tx.Amount.Equal(dec("7")))
	assert.Equal(t, 1, log.Len())
}

func TestTxLog_DisputeFlags(t *testing.T) {
	log := NewTxLog()
	log.Record(models.Event{ID: 1, Kind: models.Deposit, ClientID: 1, Amount: dec("10")})

	log.MarkDisputed(1)
	entry, _ := log.Lookup(1)
	assert.True(t, entry.Disputed)

	log.MarkResolved(1)
	entry, _ = log.Lookup(1)
	assert.False(t, entry.Disputed)

	// Absent ids are a no-op, not a panic.
	log.MarkDisputed(42)
	log.MarkResolved(42)
	assert.Equal(t, 1, log.Len())
}
