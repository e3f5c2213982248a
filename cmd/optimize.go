package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/bundle"
	"github.com/agentic-research/faceplate/internal/svgopt"
)

var optimizeWrite bool

func init() {
	optimizeCmd.Flags().BoolVar(&optimizeWrite, "write", false, "Overwrite each file with its optimized form")
	rootCmd.AddCommand(optimizeCmd)
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file.svg...]",
	Short: "Losslessly shrink SVG files and report the savings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			rows    []optimized
			results []svgopt.Result
			failed  int
		)
		for _, path := range args {
			row := optimized{file: path}
			raw, err := os.ReadFile(path)
			if err != nil {
				row.err = err
			} else {
				row.result, row.err = svgopt.Optimize(string(raw))
			}
			if row.err == nil && optimizeWrite && row.result.OptimizedBytes < row.result.OriginalBytes {
				row.err = bundle.WriteAtomic(osfs.New(filepath.Dir(path)), filepath.Base(path), []byte(row.result.SVG))
			}
			if row.err != nil {
				failed++
				logger.Debug("svg not optimized", "file", path, "error", row.err)
			} else {
				results = append(results, row.result)
			}
			rows = append(rows, row)
		}

		fmt.Fprint(cmd.OutOrStdout(), renderOptimize(rows, svgopt.Aggregate(results)))
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) could not be optimized", failed, len(args))
		}
		return nil
	},
}
