package main

import (
	// Go Internal Packages
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "tx-ledger/config"
	feed "tx-ledger/feed"
	metrics "tx-ledger/metrics"
	models "tx-ledger/models"
	dlq "tx-ledger/repositories/dlq"
	ledger "tx-ledger/repositories/ledger"
	txpsr "tx-ledger/services/processors"
	reports "tx-ledger/services/reports"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// LoadConfig loads the default configuration and overrides it with the config file
// specified by the path defined in the config flag. It also returns the path of
// the transactions CSV file, the one required argument.
func LoadConfig() (*koanf.Koanf, string) {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("").String()
	csvPath := kingpin.Arg("transactions", "Path to the transactions CSV file").Required().String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k, *csvPath
}

func main() {
	k, csvPath := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Validate the config loaded
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Logs go to stderr: stdout carries the final report.
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(k.String("logger.level")))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.InitialFields["run_id"] = uuid.NewString()
	cfg.OutputPaths = []string{"stderr"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	input, err := os.Open(csvPath)
	if err != nil {
		logger.Fatal("cannot open transactions file", zap.String("path", csvPath), zap.Error(err))
	}
	defer func() {
		_ = input.Close()
	}()

	accounts := ledger.NewAccountTable()
	txLog := ledger.NewTxLog()
	dlQueue := dlq.NewDeadLetterQueue(logger)
	m := metrics.New(prometheus.DefaultRegisterer)

	txProcessor := txpsr.NewTxProcessor(logger, accounts, txLog, dlQueue, m)
	feeder := feed.NewCSVFeeder(logger, appKonf.Ledger.AmountPrecision)

	// The feeder is the only producer, the processor the only consumer.
	// Accounts and the transaction log belong to the processor from here
	// until Run returns; main reads a snapshot only afterwards.
	commands := make(chan models.Command, appKonf.Stream.ChannelSize)
	go func() {
		// Feed errors are logged inside Run; the exit command still gets
		// sent so the processor terminates cleanly.
		_ = feeder.Run(ctx, input, commands)
	}()

	if err = txProcessor.Run(commands); err != nil {
		logger.Fatal("processor stopped abnormally", zap.Error(err))
	}

	writer := reports.NewWriter(appKonf.Ledger.AmountPrecision)
	if err = writer.Write(os.Stdout, accounts.Snapshot()); err != nil {
		logger.Fatal("cannot write account report", zap.Error(err))
	}

	logger.Info("run complete",
		zap.Int("accounts", accounts.Len()),
		zap.Int("recorded_transactions", txLog.Len()),
		zap.Int("rejected", dlQueue.Len()))
}
