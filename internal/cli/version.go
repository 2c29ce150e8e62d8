package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relcut/relcut/internal/version"
)

var versionShortFlag bool

var versionCmd = &cobra.Command{
	Use:          "version",
	Short:        "Print the relcut version",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShortFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "relcut %s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	versionCmd.GroupID = GroupUtility
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShortFlag, "short", false, "Print only the version number")
}
