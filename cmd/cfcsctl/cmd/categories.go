package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cfcs/internal/models"
	"cfcs/internal/services"
)

var categoriesFlow string

// categoriesCmd represents the categories command.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the transaction types",
	Long: `List every transaction type in form order: income types, the
separator, then expense types. --flow keeps a single flow.`,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesFlow, "flow", "", "Income or Expense")
}

func runCategories(cmd *cobra.Command, args []string) error {
	var flow *models.Flow
	if categoriesFlow != "" {
		f := models.Flow(categoriesFlow)
		if !f.Valid() {
			return fmt.Errorf("--flow must be Income or Expense, got %q", categoriesFlow)
		}
		flow = &f
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tFLOW")
	for _, c := range services.NewCategoryService().ListCategories(flow) {
		if c.Disabled {
			fmt.Fprintf(w, "%s\t\n", c.Name)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Flow)
	}
	return w.Flush()
}
