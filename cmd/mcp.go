package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/history"
	"github.com/agentic-research/faceplate/internal/mcpserver"
	"github.com/agentic-research/faceplate/internal/preview"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve faceplate tools to MCP clients on stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.ExportOptions()
		if err != nil {
			return err
		}

		blobs := preview.NewBlobServer(logger)
		blobs.Addr = cfg.PreviewAddr
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = blobs.Close(ctx)
		}()

		mc := mcpserver.Config{
			Logger:  logger,
			Export:  opts,
			Preview: cfg.PreviewOptions(),
			OutDir:  cfg.OutDir,
			Previewer: &preview.Previewer{
				Publisher: blobs,
				Opener:    preview.NoOpener{},
				Grace:     cfg.PreviewGrace,
				Logger:    logger,
			},
		}
		if cfg.HistoryDB != "" {
			store, err := history.Open(cfg.HistoryDB)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			mc.History = store
		}

		logger.Info("serving MCP on stdio", "version", Version)
		return mcpserver.New(Version, mc).ServeStdio()
	},
}
