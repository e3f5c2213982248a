package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/history"
)

var (
	historyDB    string
	historyLimit int
)

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "", "Path to the export ledger (default from config)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show; 0 shows all")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded export runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := historyDB
		if path == "" {
			path = cfg.HistoryDB
		}
		if path == "" {
			return errors.New("no history database: pass --db or set history_db")
		}
		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		runs, err := store.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, dimStyle.Render("no exports recorded"))
			return nil
		}
		for _, r := range runs {
			status := okStyle.Render("ok  ")
			if !r.OK {
				status = errorStyle.Render("fail")
			}
			fmt.Fprintf(out, "%s %s %s %s %s\n",
				dimStyle.Render(r.StartedAt.Local().Format(time.DateTime)),
				status,
				titleStyle.Render(r.Project),
				strings.Join(r.Windows, ","),
				dimStyle.Render(string(r.Delivery)+" "+r.Location))
			if !r.OK {
				fmt.Fprintln(out, "    "+errorStyle.Render(firstLine(r.Message)))
			}
		}
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
