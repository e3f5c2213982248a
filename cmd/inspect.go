package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/inspect"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [project.json] [jsonpath]",
	Short: "Query a project with JSONPath, or summarize its element types",
	Example: `  faceplate inspect synth.json '$.windows[*].name'
  faceplate inspect synth.json "$.elements[?(@.type == 'knob')].parameterId"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := inspect.Load(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			counts, err := inspect.Types(doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, titleStyle.Render("element types"))
			for _, c := range counts {
				fmt.Fprintf(out, "%-22s %d\n", c.Type, c.Count)
			}
			return nil
		}

		got, err := inspect.Query(doc, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, inspect.Format(got))
		return nil
	},
}
