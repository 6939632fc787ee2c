package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cfcs/internal/importer"
	"cfcs/internal/ledger"
	"cfcs/internal/logger"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Append a ledger file to the database",
	Long: `Validate the records of --file and append them to the database selected
by STORAGE_DRIVER. Records without an id are numbered after the largest stored id; records
whose id is already stored are rejected so an import never rewrites history.`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	if ledgerFile == "" {
		return errors.New("import needs --file")
	}
	log := logger.Named("cfcsctl")

	store, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	existing, err := store.Load()
	if err != nil {
		return err
	}

	var lastID int64
	for _, tx := range existing {
		if tx.ID > lastID {
			lastID = tx.ID
		}
	}
	incoming, err := importer.ReadFile(ledgerFile, lastID)
	if err != nil {
		return err
	}

	combined := ledger.NewStore()
	if err := combined.Restore(append(existing, incoming...)); err != nil {
		return fmt.Errorf("cannot import %s: %w", ledgerFile, err)
	}
	if err := store.Save(combined.All()); err != nil {
		return err
	}

	log.Infow("Ledger imported", "file", ledgerFile, "records", len(incoming), "total", combined.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transaction(s); %d stored\n", len(incoming), combined.Len())
	return nil
}
