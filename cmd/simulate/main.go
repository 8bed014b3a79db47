// Command simulate plays three card poker rounds with the basic strategy
// and prints how the bankroll fared.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/three-card-poker/application"
	"github.com/luca-patrignani/three-card-poker/domain/poker"
	"github.com/luca-patrignani/three-card-poker/ledger"
)

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("3", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("CP", pterm.FgDarkGray.ToStyle()),
	).Render()

	chain := ledger.NewBlockchain()
	table := poker.NewTable(poker.WithHistory(chain), poker.WithLogger(logger))
	player := application.NewAutoplayer(table, cfg.Policy(), logger)

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d rounds ...", cfg.Rounds))
	report, err := player.Run(ctx, cfg.Rounds)
	switch {
	case errors.Is(err, context.Canceled):
		spinner.Warning("Interrupted")
	case err != nil:
		spinner.Fail()
		return err
	default:
		spinner.Success()
	}

	if err := chain.Verify(); err != nil {
		return fmt.Errorf("ledger verification failed: %w", err)
	}
	return printReport(report, chain)
}
