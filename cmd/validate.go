package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/model"
	"github.com/agentic-research/faceplate/internal/validate"
)

var validateIncludeDev bool

func init() {
	validateCmd.Flags().BoolVar(&validateIncludeDev, "include-dev", false, "Also check developer windows")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [project.json]",
	Short: "Run the pre-export checks on a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := model.Load(args[0])
		if err != nil {
			return err
		}
		includeDev := validateIncludeDev || cfg.IncludeDeveloperWindows
		res := validate.Windows(model.NewIndex(snap.Elements), snap.ExportWindows(includeDev))

		name := snap.Name
		if name == "" {
			name = args[0]
		}
		fmt.Fprint(cmd.OutOrStdout(), renderValidation(name, res))
		if !res.Valid {
			return fmt.Errorf("validation failed with %d error(s)", len(res.Errors))
		}
		return nil
	},
}
