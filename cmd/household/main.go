package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"household/internal/cli"
	"household/internal/log"
)

func main() {
	cli.LoadEnvFile()

	// Bootstrap logger until the configured one is ready
	cfg := cli.LoadAndValidateConfig(log.New(log.DefaultConfig()))
	logger := cli.SetupLogger(cfg)
	logger.Debug("starting",
		log.FieldOperation, log.OpStartup,
		log.FieldFormat, cfg.Output,
		log.FieldCurrency, cfg.ReportCurrency)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(cfg)
	if err := cmd.ExecuteContext(log.NewContext(ctx, logger)); err != nil {
		logger.WithComponent(log.ComponentCLI).Error("command failed", log.NewFields().WithError(err).ToSlice()...)
		stop()
		os.Exit(1)
	}
}
