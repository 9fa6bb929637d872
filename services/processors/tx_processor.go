package processors

import (
	// Local Packages
	errors "tx-ledger/errors"
	metrics "tx-ledger/metrics"
	models "tx-ledger/models"
	ledger "tx-ledger/repositories/ledger"

	// External Packages
	"go.uber.org/zap"
)

// DeadLetter receives the events the processor refuses to apply.
type DeadLetter interface {
	Send(tx models.Event, reason string)
}

// TxProcessor is the single consumer of the ingestion channel. It applies
// events strictly in arrival order: disputes, resolves and chargebacks
// reference earlier deposits and withdrawals by id, so reordering would be
// a correctness bug. The AccountTable and TxLog are owned by the processor
// for the whole run and must not be read until Run has returned.
type TxProcessor struct {
	Logger   *zap.Logger
	Accounts *ledger.AccountTable
	TxLog    *ledger.TxLog
	DLQ      DeadLetter
	Metrics  *metrics.Metrics
}

func NewTxProcessor(logger *zap.Logger, accounts *ledger.AccountTable, txLog *ledger.TxLog, dlq DeadLetter, m *metrics.Metrics) *TxProcessor {
	return &TxProcessor{Logger: logger, Accounts: accounts, TxLog: txLog, DLQ: dlq, Metrics: m}
}

// Run consumes commands until the exit command arrives. Channel emptiness
// only suspends the consumer; channel closure without an exit command is
// reported as an error so a broken producer cannot pass for a clean run.
// A rejected event never stops the stream.
func (p *TxProcessor) Run(commands <-chan models.Command) error {
	for cmd := range commands {
		if cmd.Type == models.CommandExit {
			p.Logger.Info("exit signal received, stopping processor")
			return nil
		}
		p.apply(cmd.Tx)
	}
	return errors.E(errors.Other, "command channel closed without exit signal", nil)
}

func (p *TxProcessor) apply(tx models.Event) {
	var err error
	switch tx.Kind {
	case models.Deposit:
		err = p.applyDeposit(tx)
	case models.Withdrawal:
		err = p.applyWithdrawal(tx)
	case models.Dispute:
		err = p.applyDispute(tx)
	case models.Resolve:
		err = p.applyResolve(tx)
	case models.Chargeback:
		err = p.applyChargeback(tx)
	}
	if err != nil {
		p.reject(tx, err)
		return
	}
	p.Metrics.Processed.WithLabelValues(tx.Kind.String()).Inc()
}

func (p *TxProcessor) reject(tx models.Event, err error) {
	p.Logger.Info("transaction rejected",
		zap.Uint32("tx", tx.ID),
		zap.Uint16("client", tx.ClientID),
		zap.String("kind", tx.Kind.String()),
		zap.Error(err))
	p.DLQ.Send(tx, err.Error())
	p.Metrics.Rejected.WithLabelValues(tx.Kind.String(), errors.KindOf(err).String()).Inc()
}

// applyDeposit credits the client's account, creating it on first deposit,
// and records the event for later dispute resolution. Nothing is recorded
// when a locked account rejects the deposit.
func (p *TxProcessor) applyDeposit(tx models.Event) error {
	account := p.Accounts.GetOrCreate(tx.ClientID)
	if err := account.Deposit(tx.Amount); err != nil {
		return err
	}
	p.TxLog.Record(tx)
	return nil
}

func (p *TxProcessor) applyWithdrawal(tx models.Event) error {
	account, ok := p.Accounts.Get(tx.ClientID)
	if !ok {
		return errors.UnknownAccountErr(tx.ClientID)
	}
	if err := account.Withdraw(tx.Amount); err != nil {
		return err
	}
	p.TxLog.Record(tx)
	return nil
}

// applyDispute holds the referenced transaction's amount. The referenced
// transaction must exist, belong to the disputing client, and the client
// must have an account with enough available funds.
func (p *TxProcessor) applyDispute(tx models.Event) error {
	entry, ok := p.TxLog.Lookup(tx.ID)
	if !ok {
		return errors.UnknownTransactionErr(tx.ID)
	}
	if entry.Tx.ClientID != tx.ClientID {
		return errors.ClientMismatchErr(tx.ID, tx.ClientID)
	}
	account, ok := p.Accounts.Get(tx.ClientID)
	if !ok {
		return errors.UnknownAccountErr(tx.ClientID)
	}
	if err := account.HoldForDispute(entry.Tx.Amount); err != nil {
		return err
	}
	p.TxLog.MarkDisputed(tx.ID)
	return nil
}

// applyResolve releases a previously held amount. Only a transaction
// currently under dispute can be resolved.
func (p *TxProcessor) applyResolve(tx models.Event) error {
	entry, ok := p.TxLog.Lookup(tx.ID)
	if !ok {
		return errors.UnknownTransactionErr(tx.ID)
	}
	if !entry.Disputed {
		return errors.NotDisputedErr(tx.ID)
	}
	account, ok := p.Accounts.Get(entry.Tx.ClientID)
	if !ok {
		return errors.UnknownAccountErr(entry.Tx.ClientID)
	}
	if err := account.ReleaseDispute(entry.Tx.Amount); err != nil {
		return err
	}
	p.TxLog.MarkResolved(tx.ID)
	return nil
}

// applyChargeback withdraws the disputed amount and locks the account for
// good. The entry keeps its disputed flag; no further resolve can touch a
// locked account anyway.
func (p *TxProcessor) applyChargeback(tx models.Event) error {
	entry, ok := p.TxLog.Lookup(tx.ID)
	if !ok {
		return errors.UnknownTransactionErr(tx.ID)
	}
	if !entry.Disputed {
		return errors.NotDisputedErr(tx.ID)
	}
	account, ok := p.Accounts.Get(entry.Tx.ClientID)
	if !ok {
		return errors.UnknownAccountErr(entry.Tx.ClientID)
	}
	return account.Chargeback(entry.Tx.Amount)
}
