package dlq

import (
	// Local Packages
	models "tx-ledger/models"

	// External Packages
	"go.uber.org/zap"
)

// RejectedTx is one event the processor refused to apply, with the reason.
type RejectedTx struct {
	Tx     models.Event
	Reason string
}

// DeadLetterQueue collects rejected events for the duration of one run.
// Rejections are expected input, never fatal; keeping them makes the run
// auditable after the fact.
type DeadLetterQueue struct {
	logger  *zap.Logger
	entries []RejectedTx
}

func NewDeadLetterQueue(logger *zap.Logger) *DeadLetterQueue {
	return &DeadLetterQueue{logger: logger}
}

// Send stores one rejected event together with the rejection reason.
func (q *DeadLetterQueue) Send(tx models.Event, reason string) {
	q.entries = append(q.entries, RejectedTx{Tx: tx, Reason: reason})
	q.logger.Debug("transaction sent to dead letter queue",
		zap.Uint32("tx", tx.ID),
		zap.Uint16("client", tx.ClientID),
		zap.String("kind", tx.Kind.String()),
		zap.String("reason", reason))
}

// Len returns the number of rejected events so far.
func (q *DeadLetterQueue) Len() int {
	return len(q.entries)
}

// Entries returns a copy of the rejected events in rejection order.
func (q *DeadLetterQueue) Entries() []RejectedTx {
	out := make([]RejectedTx, len(q.entries))
	copy(out, q.entries)
	return out
}
