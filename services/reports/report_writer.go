package reports

import (
	// Go Internal Packages
	"encoding/csv"
	"io"
	"strconv"

	// Local Packages
	ledger "tx-ledger/repositories/ledger"
)

// Writer renders the final account snapshot as CSV, one row per account.
type Writer struct {
	Precision int32
}

func NewWriter(precision int32) *Writer {
	return &Writer{Precision: precision}
}

// Write emits a header followed by one row per account. The snapshot is
// already sorted by client id, which keeps the output stable.
func (w *Writer) Write(out io.Writer, accounts []ledger.AccountView) error {
	cw := csv.NewWriter(out)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, account := range accounts {
		row := []string{
			strconv.FormatUint(uint64(account.ClientID), 10),
			account.Available.StringFixed(w.Precision),
			account.Held.StringFixed(w.Precision),
			account.Total.StringFixed(w.Precision),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
