package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the persisted play log",
	RunE:  runHistoryShow,
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted play log, most recent first",
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the persisted play log",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	log, closeStore, err := openHistory()
	if err != nil {
		return err
	}
	defer closeStore()

	entries := log.Entries()
	if len(entries) == 0 {
		fmt.Println("History is empty.")
		if cfg.Storage.Path == "" {
			fmt.Println("Note: no storage.path configured, history is memory-only.")
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tVARIANT\tSEED\tINTENSITY\tTIER\tCOMPLETED\tSAFE MODE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%t\t%t\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.VariantID, e.Seed, e.Intensity, e.QualityTier, e.Completed, e.WasSafeMode)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	log, closeStore, err := openHistory()
	if err != nil {
		return err
	}
	defer closeStore()

	n := log.Len()
	log.Clear()
	fmt.Printf("Cleared %d entries.\n", n)
	return nil
}
