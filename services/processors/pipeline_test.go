package processors

import (
	// Go Internal Packages
	"bytes"
	"context"
	"strings"
	"testing"

	// Local Packages
	feed "tx-ledger/feed"
	metrics "tx-ledger/metrics"
	models "tx-ledger/models"
	dlq "tx-ledger/repositories/dlq"
	ledger "tx-ledger/repositories/ledger"
	reports "tx-ledger/services/reports"

	// External Packages
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestPipeline_EndToEnd runs the full feeder → channel → processor →
// report chain over an in-memory CSV, the way main wires it.
func TestPipeline_EndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,10.0",
		"deposit,2,2,5.5",
		"withdrawal,1,3,2.5",
		"dispute,2,2,",
		"chargeback,2,2,",
		"withdrawal,1,4,100.0",
	}, "\n")

	logger := zap.NewNop()
	accounts := ledger.NewAccountTable()
	txLog := ledger.NewTxLog()
	dlQueue := dlq.NewDeadLetterQueue(logger)
	p := NewTxProcessor(logger, accounts, txLog, dlQueue, metrics.New(prometheus.NewRegistry()))
	feeder := feed.NewCSVFeeder(logger, 4)

	commands := make(chan models.Command, 2)
	go func() {
		_ = feeder.Run(context.Background(), strings.NewReader(input), commands)
	}()
	require.NoError(t, p.Run(commands))

	var out bytes.Buffer
	require.NoError(t, reports.NewWriter(4).Write(&out, accounts.Snapshot()))

	want := strings.Join([]string{
		"client,available,held,total,locked",
		"1,7.5000,0.0000,7.5000,false",
		"2,0.0000,0.0000,0.0000,true",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, dlQueue.Len())
}
