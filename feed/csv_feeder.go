package feed

import (
	// Go Internal Packages
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	// Local Packages
	models "tx-ledger/models"

	// External Packages
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Column layout of one input row.
const (
	kindIndex   = 0
	clientIndex = 1
	txIndex     = 2
	amountIndex = 3
)

// CSVFeeder is the producer side of the pipeline. It reads rows lazily,
// turns each into at most one event and pushes the events onto the bounded
// channel in source order. The channel's capacity provides backpressure;
// any positive capacity is correct, only throughput differs.
type CSVFeeder struct {
	Logger    *zap.Logger
	Precision int32
}

func NewCSVFeeder(logger *zap.Logger, precision int32) *CSVFeeder {
	return &CSVFeeder{Logger: logger, Precision: precision}
}

// Run feeds the channel until the input is exhausted, then sends exactly
// one exit command. The exit command is also sent after a read error or a
// canceled context, so the consumer always gets its terminal signal and
// drains whatever was queued.
func (f *CSVFeeder) Run(ctx context.Context, r io.Reader, commands chan<- models.Command) error {
	defer func() {
		commands <- models.ExitCommand()
	}()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for {
		if ctx.Err() != nil {
			f.Logger.Warn("feed stopped: context canceled")
			return ctx.Err()
		}

		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			f.Logger.Error("cannot read csv row", zap.Error(err))
			return err
		}

		tx, ok := f.parseRow(record)
		if !ok {
			continue
		}
		commands <- models.TxCommand(tx)
	}
}

// parseRow maps one raw row to an event. A row whose kind, client id or
// transaction id does not parse is skipped entirely; a header row falls
// out the same way since its id fields are not numeric.
func (f *CSVFeeder) parseRow(record []string) (models.Event, bool) {
	if len(record) <= txIndex {
		return models.Event{}, false
	}

	kind, err := models.ParseTxKind(record[kindIndex])
	if err != nil {
		return models.Event{}, false
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(record[clientIndex]), 10, 16)
	if err != nil {
		return models.Event{}, false
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(record[txIndex]), 10, 32)
	if err != nil {
		return models.Event{}, false
	}

	return models.Event{
		ID:       uint32(txID),
		Kind:     kind,
		ClientID: uint16(clientID),
		Amount:   f.parseAmount(record),
	}, true
}

// parseAmount rounds the amount to the configured precision. A missing,
// unparsable or negative amount yields zero instead of dropping the row,
// preserved reference behavior.
func (f *CSVFeeder) parseAmount(record []string) decimal.Decimal {
	if len(record) <= amountIndex {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(record[amountIndex]))
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount.Round(f.Precision)
}
