package models

// CommandType tells the processor what to do with a received command.
type CommandType uint8

const (
	// CommandTx carries one transaction event to apply.
	CommandTx CommandType = iota
	// CommandExit is the terminal signal. The processor stops only on it,
	// never on channel emptiness, so shutdown is an observable transition.
	CommandExit
)

// Command is the envelope sent over the ingestion channel.
type Command struct {
	Type CommandType
	Tx   Event
}

func TxCommand(tx Event) Command {
	return Command{Type: CommandTx, Tx: tx}
}

func ExitCommand() Command {
	return Command{Type: CommandExit}
}
