// Package cli wires the release engine into a cobra command tree. The root
// command runs the full release workflow; subcommands expose the read-only
// pieces of it.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/relcut/relcut/internal/errors"
	"github.com/relcut/relcut/internal/gitrepo"
)

// Command group IDs shown in help output.
const (
	GroupRelease = "release"
	GroupUtility = "utility"
)

var (
	configFlag  string
	verboseFlag bool
	debugFlag   bool
	plainFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "relcut",
	Short: "Cut releases from conventional commit history",
	Long: `relcut reads the conventional commits made since the last release tag,
decides the next semantic version, writes the changelog section, rewrites
manifest version fields, and commits and tags the release.

Running relcut with no subcommand performs the full release workflow.

More information: https://github.com/relcut/relcut`,
	Example: `  relcut                  # cut a release from the commits since the last tag
  relcut --dry-run        # show what would be released without touching anything
  relcut release --push   # release, then push the commit and tag to the remote
  relcut next             # print only the next version
  relcut changelog        # print only the pending changelog section`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if plainFlag {
			color.NoColor = true
		}
		if debugFlag {
			gitrepo.SetDebugLogger(func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, format+"\n", args...)
			})
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the project config file (default .relcut.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Log git operations to stderr")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain output (no colors or symbols)")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// The bare root command runs the release workflow, so it carries the
	// same flags as the release subcommand.
	addReleaseFlags(rootCmd)
}

// Execute runs the CLI. Structured errors are rendered with their category
// and remediation steps; everything else gets a plain error line.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			if plainFlag {
				fmt.Fprint(os.Stderr, errors.FormatErrorPlain(cliErr))
			} else {
				errors.PrintError(cliErr)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}
