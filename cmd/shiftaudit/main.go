package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexanderramin/shiftaudit/internal/cli"
	"github.com/alexanderramin/shiftaudit/internal/config"
	"github.com/alexanderramin/shiftaudit/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Use-case logging goes to stderr so report output stays clean.
	var logOut io.Writer
	if cfg.Log.UseCases {
		logOut = os.Stderr
	}
	auditSvc := service.NewAuditService(service.FileSource{}, service.NewLogUseCaseObserver(logOut))

	app := &cli.App{
		Audit:  auditSvc,
		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
