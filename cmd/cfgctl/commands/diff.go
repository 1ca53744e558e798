package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/cfgctl/internal/diff"
	"github.com/thoreinstein/cfgctl/internal/errors"
	"github.com/thoreinstein/cfgctl/internal/pipeline"
)

func init() {
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <environment> <environment>",
	Short: "Show the difference between two environments",
	Long: `Diff merges both environments' configurations and reports their
structural differences. List comparison ignores ordering: named items
pair up by their 'name' field and other items by structural equality,
so reordering a list is not a difference.

Examples:
  # Compare staging against production
  cfgctl diff staging prod`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiff(cmd, args[0], args[1], cmd.OutOrStdout())
	},
}

func runDiff(cmd *cobra.Command, left, right string, w io.Writer) error {
	p := pipeline.New(toolConfig)

	changes, err := p.Diff(cmd.Context(), left, right)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	diff.Render(w, left, right, changes)
	return nil
}
