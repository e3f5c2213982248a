package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/bundle"
	"github.com/agentic-research/faceplate/internal/history"
	"github.com/agentic-research/faceplate/internal/model"
)

var (
	exportWindow     string
	exportOut        string
	exportName       string
	exportFolder     bool
	exportNoOptimize bool
	exportNoResp     bool
	exportIncludeDev bool
	exportMockRelay  bool
	exportHistory    string
)

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportWindow, "window", "w", "", "Export only this window id")
	f.StringVarP(&exportOut, "out", "o", "", "Output directory (default from config)")
	f.StringVar(&exportName, "name", "", "Project name used for the archive file")
	f.BoolVar(&exportFolder, "folder", false, "Write a folder instead of a zip archive")
	f.BoolVar(&exportNoOptimize, "no-optimize", false, "Ship SVG assets unoptimized")
	f.BoolVar(&exportNoResp, "no-responsive", false, "Omit the responsive scaling script")
	f.BoolVar(&exportIncludeDev, "include-dev", false, "Include developer windows")
	f.BoolVar(&exportMockRelay, "mock-relay", false, "Ship the standalone mock relay script")
	f.StringVar(&exportHistory, "history", "", "Record the run in this SQLite ledger")
	rootCmd.AddCommand(exportCmd)
}

// exportOptions layers the command line over the configured defaults.
func exportOptions() (bundle.Options, error) {
	opts, err := cfg.ExportOptions()
	if err != nil {
		return opts, err
	}
	if exportFolder {
		opts.Delivery = bundle.DeliveryFolder
	}
	if exportNoOptimize {
		opts.Optimize = false
	}
	if exportNoResp {
		opts.Responsive = false
	}
	if exportIncludeDev {
		opts.IncludeDeveloperWindows = true
	}
	if exportMockRelay {
		opts.IncludeMockRelay = true
	}
	opts.ProjectName = exportName
	return opts, nil
}

var exportCmd = &cobra.Command{
	Use:   "export [project.json]",
	Short: "Export a project as a zip archive or folder of web assets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := model.Load(args[0])
		if err != nil {
			return err
		}
		opts, err := exportOptions()
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = cfg.OutDir
		}
		e := &bundle.Exporter{
			Logger:    logger,
			Archive:   bundle.NewOSArchiveSink(out),
			Directory: bundle.OSDirectory(out),
		}

		ledger := exportHistory
		if ledger == "" {
			ledger = cfg.HistoryDB
		}
		if ledger != "" {
			store, err := history.Open(ledger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			e.History = store
		}

		var res bundle.Result
		if exportWindow != "" {
			res = e.ExportWindow(cmd.Context(), snap, exportWindow, opts)
		} else {
			res = e.ExportProject(cmd.Context(), snap, opts)
		}

		var verr *bundle.ValidationError
		if errors.As(res.Err, &verr) {
			fmt.Fprint(cmd.OutOrStdout(), renderValidation(snap.Name, verr.Result))
			return errors.New("export blocked by validation errors")
		}
		fmt.Fprint(cmd.OutOrStdout(), renderExport(res))
		if !res.OK {
			return fmt.Errorf("export failed: %w", res.Err)
		}
		return nil
	},
}
