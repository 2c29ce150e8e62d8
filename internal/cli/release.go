package cli

import (
	"github.com/spf13/cobra"

	"github.com/relcut/relcut/internal/config"
	"github.com/relcut/relcut/internal/errors"
	"github.com/relcut/relcut/internal/gitrepo"
	"github.com/relcut/relcut/internal/release"
)

var (
	forceFlag  bool
	pushFlag   bool
	dryRunFlag bool
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Cut a release from the commits since the last tag",
	Long: `Cut a release from the conventional commits made since the last release
tag.

The commits are classified to decide the bump (breaking change: major,
feat: minor, fix/perf: patch), the changelog section is prepended to the
changelog file, configured manifest version fields are rewritten, and the
result is committed and tagged. When no commit justifies a release,
nothing happens and the command succeeds.

Examples:
  relcut release              # full release workflow
  relcut release --dry-run    # print the plan without touching the tree
  relcut release --force      # cut a patch release even with no qualifying commits
  relcut release --push       # push the release commit and tag afterwards`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd)
	},
}

func init() {
	releaseCmd.GroupID = GroupRelease
	rootCmd.AddCommand(releaseCmd)

	addReleaseFlags(releaseCmd)
}

// addReleaseFlags registers the release workflow flags. The root command
// registers them too since bare `relcut` runs the same workflow.
func addReleaseFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Release a patch version even when no commit justifies one")
	cmd.Flags().BoolVar(&pushFlag, "push", false, "Push the release commit and tag to the remote")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Compute and print the release without changing anything")
}

func runRelease(cmd *cobra.Command) error {
	runner, err := buildRunner(cmd)
	if err != nil {
		return err
	}

	_, err = runner.Run(cmd.Context(), release.Options{
		Force:   forceFlag,
		Push:    pushFlag,
		DryRun:  dryRunFlag,
		Verbose: verboseFlag,
	})
	return err
}

// buildRunner loads the configuration, opens the enclosing repository, and
// assembles the release runner around them.
func buildRunner(cmd *cobra.Command) (*release.Runner, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	repo, err := gitrepo.Open("")
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Repository, "opening repository",
			"Run relcut from inside a git repository")
	}

	return &release.Runner{
		Config:    cfg,
		History:   repo,
		Publisher: repo,
		Out:       cmd.OutOrStdout(),
	}, nil
}

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path := configFlag
	if path == "" {
		path = config.ProjectConfigPath()
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: path,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			return nil, cliErr
		}
		return nil, errors.WrapWithMessage(err, errors.Configuration, "loading configuration",
			"Check the syntax of "+path)
	}
	return cfg, nil
}
