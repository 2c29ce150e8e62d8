package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relcut/relcut/internal/release"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Print the pending changelog section",
	Long: `Render the changelog section for the commits since the last release tag
and print it to stdout, without writing the changelog file or releasing.

The output is exactly what a release would prepend to the changelog file.`,
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
			fmt.Fprintf(cmd.ErrOrStderr(), "nothing to release\n")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), plan.Changelog)
		return nil
	},
}

func init() {
	changelogCmd.GroupID = GroupUtility
	rootCmd.AddCommand(changelogCmd)
}
