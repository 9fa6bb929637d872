package models

import (
	// Go Internal Packages
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTxKind(t *testing.T) {
	cases := []struct {
		in   string
		want TxKind
	}{
		{"deposit", Deposit},
		{"withdrawal", Withdrawal},
		{"dispute", Dispute},
		{"resolve", Resolve},
		{"chargeback", Chargeback},
		{"  Deposit  ", Deposit},
		{"CHARGEBACK", Chargeback},
	}
	for _, tc := range cases {
		kind, err := ParseTxKind(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, kind, "input %q", tc.in)
	}

	for _, bad := range []string{"", "transfer", "deposits", "with drawal"} {
		_, err := ParseTxKind(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTxKindString(t *testing.T) {
	assert.Equal(t, "deposit", Deposit.String())
	assert.Equal(t, "withdrawal", Withdrawal.String())
	assert.Equal(t, "unknown", TxKind(42).String())
}

func TestDisputable(t *testing.T) {
	assert.True(t, Deposit.Disputable())
	assert.True(t, Withdrawal.Disputable())
	assert.False(t, Dispute.Disputable())
	assert.False(t, Resolve.Disputable())
	assert.False(t, Chargeback.Disputable())
}
