// Package cmd provides the cfcsctl commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cfcs/internal/database"
	"cfcs/internal/importer"
	"cfcs/internal/ledger"
	"cfcs/internal/logger"
	"cfcs/internal/models"
)

var (
	ledgerFile string
	debug      bool

	// now is the report clock.
	now = time.Now
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cfcsctl",
	Short: "Inspect and share church financial records",
	Long: `cfcsctl renders CFCS reports and share messages from a ledger file or
from the configured database.

Records come from --file (YAML or JSON) when given, otherwise from the
database selected by STORAGE_DRIVER.

Example:
  cfcsctl summary --file ledger.yaml
  cfcsctl share --file ledger.yaml --target telegram --url https://example.org/viewer
  cfcsctl import --file ledger.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if debug {
			level = "debug"
		}
		logger.InitWithLevel(os.Getenv("ENV"), level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	defer logger.Sync()
	err := rootCmd.Execute()
	if err != nil {
		logger.Named("cfcsctl").Errorw("command failed", "error", err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&ledgerFile, "file", "f", "", "ledger file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(importCmd)
}

var errNoSource = errors.New("no --file given and STORAGE_DRIVER is none")

// loadLedger returns the records of the selected source, validated and in
// entry order.
func loadLedger() ([]models.Transaction, error) {
	log := logger.Named("cfcsctl")

	var (
		ts  []models.Transaction
		err error
	)
	if ledgerFile != "" {
		log.Debugw("Reading ledger file", "path", ledgerFile)
		ts, err = importer.ReadFile(ledgerFile, 0)
	} else {
		ts, err = loadFromDatabase()
	}
	if err != nil {
		return nil, err
	}

	store := ledger.NewStore()
	if err := store.Restore(ts); err != nil {
		return nil, fmt.Errorf("invalid ledger: %w", err)
	}
	log.Debugw("Ledger loaded", "records", store.Len())
	return store.All(), nil
}

func loadFromDatabase() ([]models.Transaction, error) {
	store, closeFn, err := openStore()
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return store.Load()
}

// openStore opens the configured database with migrations applied.
func openStore() (*database.TransactionStore, func(), error) {
	cfg, err := database.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.Enabled() {
		return nil, nil, errNoSource
	}
	mgr, err := database.NewManager(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := mgr.Close(); err != nil {
			logger.Named("cfcsctl").Warnw("database close error", "error", err)
		}
	}
	if err := mgr.RunMigrations(); err != nil {
		closeFn()
		return nil, nil, err
	}
	return database.NewTransactionStore(mgr.DB()), closeFn, nil
}
