package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/model"
	"github.com/agentic-research/faceplate/internal/preview"
)

var (
	previewWindow     string
	previewNoOpen     bool
	previewGrace      time.Duration
	previewIncludeDev bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewWindow, "window", "w", "", "Preview only this window id")
	previewCmd.Flags().BoolVar(&previewNoOpen, "no-open", false, "Print the URL instead of opening a browser")
	previewCmd.Flags().DurationVar(&previewGrace, "grace", 0, "Revoke the preview this long after opening (default from config; never with --no-open)")
	previewCmd.Flags().BoolVar(&previewIncludeDev, "include-dev", false, "Include developer windows")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [project.json]",
	Short: "Render a live preview and serve it until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := model.Load(args[0])
		if err != nil {
			return err
		}

		opts := cfg.PreviewOptions()
		if previewIncludeDev {
			opts.IncludeDeveloperWindows = true
		}

		grace := cfg.PreviewGrace
		switch {
		case cmd.Flags().Changed("grace"):
			grace = previewGrace
		case previewNoOpen:
			grace = -1
		}

		server := preview.NewBlobServer(logger)
		server.Addr = cfg.PreviewAddr
		p := &preview.Previewer{
			Publisher: server,
			Opener:    preview.BrowserOpener{Command: cfg.Browser},
			Grace:     grace,
			Logger:    logger,
		}
		if previewNoOpen {
			p.Opener = preview.NoOpener{}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var res preview.Result
		if previewWindow != "" {
			res = p.PreviewWindow(ctx, snap, previewWindow, opts)
		} else {
			res = p.PreviewProject(ctx, snap, opts)
		}
		out := cmd.OutOrStdout()
		switch {
		case res.OK:
			fmt.Fprintln(out, okStyle.Render(res.Message))
		case res.Blocked:
			fmt.Fprintln(out, warnStyle.Render(res.Message))
		default:
			return fmt.Errorf("preview failed: %w", res.Err)
		}
		fmt.Fprintln(out, dimStyle.Render("Serving "+res.URL+", press Ctrl+C to stop."))

		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Close(shutdown)
	},
}
