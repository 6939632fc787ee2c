package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cfcs/internal/money"
	"cfcs/internal/report"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print totals and the category breakdown",
	RunE:  runSummary,
}

// detailsCmd represents the details command.
var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Print every record, newest first",
	RunE:  runDetails,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ts, err := loadLedger()
	if err != nil {
		return err
	}
	s := report.BuildSummary(ts, now())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated: %s\n", s.GeneratedLabel)
	fmt.Fprintf(out, "Records: %d\n\n", s.RecordCount)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total Income\t%s\n", s.IncomeDisplay)
	fmt.Fprintf(w, "Total Expense\t%s\n", s.ExpenseDisplay)
	fmt.Fprintf(w, "Net Balance\t%s\n", s.NetBalanceDisplay)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(s.Categories) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tFLOW\tAMOUNT")
	for _, c := range s.Categories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Type, c.Flow, money.Format(c.Total))
	}
	return w.Flush()
}

func runDetails(cmd *cobra.Command, args []string) error {
	ts, err := loadLedger()
	if err != nil {
		return err
	}
	d := report.BuildDetails(ts, now())

	out := cmd.OutOrStdout()
	if len(d.Rows) == 0 {
		fmt.Fprintln(out, report.EmptyPlaceholder)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tFLOW\tTYPE\tAMOUNT\tSHARE")
	for _, r := range d.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f%%\n", r.Date, r.Flow, r.Type, r.AmountDisplay, r.Share)
	}
	return w.Flush()
}
