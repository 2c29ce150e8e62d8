package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relcut/relcut/internal/release"
)

var nextTagFlag bool

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next version without releasing",
	Long: `Print the version the commits since the last release tag resolve to,
without changing anything.

Prints nothing and exits successfully when no commit justifies a release,
so the output is safe to feed into scripts:

  VERSION=$(relcut next)
  TAG=$(relcut next --tag)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := buildRunner(cmd)
		if err != nil {
			return err
		}

		plan, err := runner.ComputePlan(release.Options{Force: forceFlag})
		if err != nil {
			return err
		}
		if !plan.Released {
			return nil
		}

		if nextTagFlag {
			fmt.Fprintln(cmd.OutOrStdout(), plan.NextTag)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), plan.Next.String())
		}
		return nil
	},
}

func init() {
	nextCmd.GroupID = GroupUtility
	rootCmd.AddCommand(nextCmd)

	nextCmd.Flags().BoolVar(&nextTagFlag, "tag", false, "Print the tag name instead of the bare version")
	nextCmd.Flags().BoolVar(&forceFlag, "force", false, "Resolve a patch version even when no commit justifies one")
}
