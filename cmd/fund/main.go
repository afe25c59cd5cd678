// Command fund credits an account wallet in the configured store. It
// bootstraps balances on deployments without an external funding source.
//
// Usage:
//
//	fund --account=5b0c8f0e-... --amount=1.5
//
// The amount is in whole native units.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/app"
	"github.com/heartmarshall/bullion-registry/internal/config"
	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
)

func main() {
	account := flag.String("account", "", "account id to credit")
	amount := flag.String("amount", "", "amount in whole native units")
	flag.Parse()

	if *account == "" || *amount == "" {
		fmt.Fprintln(os.Stderr, "Usage: fund --account=<uuid> --amount=<units>")
		os.Exit(1)
	}

	id, err := uuid.Parse(*account)
	if err != nil {
		log.Fatalf("parse account: %v", err)
	}
	units, err := valuation.ParseNative(*amount)
	if err != nil {
		log.Fatalf("parse amount: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Driver == config.StorageMemory {
		log.Fatal("fund needs a persistent store; storage.driver is memory")
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	wallet := domain.WalletAccount(id)
	var balance uint64
	err = st.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := st.Ledger.Credit(txCtx, wallet, units); err != nil {
			return err
		}
		balance, err = st.Ledger.Balance(txCtx, wallet)
		return err
	})
	if err != nil {
		logger.Error("credit wallet", slog.String("account", id.String()), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("wallet funded",
		slog.String("account", id.String()),
		slog.String("amount", valuation.FormatNative(units)),
		slog.String("balance", valuation.FormatNative(balance)),
	)
}
