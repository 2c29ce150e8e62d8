package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/internal/errors"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "relcut", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName     string
		wantShortcut string
	}{
		"config has shortcut c": {
			flagName:     "config",
			wantShortcut: "c",
		},
		"verbose has shortcut v": {
			flagName:     "verbose",
			wantShortcut: "v",
		},
		"debug has shortcut d": {
			flagName:     "debug",
			wantShortcut: "d",
		},
		"plain has no shortcut": {
			flagName:     "plain",
			wantShortcut: "",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flag := rootCmd.PersistentFlags().Lookup(tt.flagName)
			require.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			assert.Equal(t, tt.wantShortcut, flag.Shorthand)
		})
	}
}

func TestRootCmd_ReleaseFlagsOnRoot(t *testing.T) {
	t.Parallel()

	// Bare `relcut` runs the release workflow, so it carries its flags.
	for _, name := range []string{"force", "push", "dry-run"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "Flag %s should exist on root", name)
		assert.NotNil(t, releaseCmd.Flags().Lookup(name), "Flag %s should exist on release", name)
	}
}

func TestRootCmd_SubcommandGroups(t *testing.T) {
	t.Parallel()

	groupIDs := make(map[string]bool)
	for _, g := range rootCmd.Groups() {
		groupIDs[g.ID] = true
	}

	assert.True(t, groupIDs[GroupRelease], "Should have release group")
	assert.True(t, groupIDs[GroupUtility], "Should have utility group")
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	commandNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		commandNames[cmd.Name()] = true
	}

	assert.True(t, commandNames["release"], "Should have release command")
	assert.True(t, commandNames["next"], "Should have next command")
	assert.True(t, commandNames["changelog"], "Should have changelog command")
	assert.True(t, commandNames["version"], "Should have version command")
}

func TestVersionCmd_Output(t *testing.T) {
	var buf bytes.Buffer
	originalOut := versionCmd.OutOrStdout()
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(originalOut)

	versionCmd.Run(versionCmd, []string{})

	assert.Contains(t, buf.String(), "relcut dev")
	assert.Contains(t, buf.String(), "commit:")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error": {
			err:  nil,
			want: ExitSuccess,
		},
		"plain error": {
			err:  assert.AnError,
			want: ExitRuntimeError,
		},
		"argument error": {
			err:  errors.NewArgumentError("bad flag"),
			want: ExitInvalidArguments,
		},
		"configuration error": {
			err:  errors.NewConfigError("bad config"),
			want: ExitConfigurationError,
		},
		"repository error": {
			err:  errors.NewRepositoryError("not a repo"),
			want: ExitRepositoryError,
		},
		"version error": {
			err:  errors.NewVersionError("bad tag"),
			want: ExitVersionError,
		},
		"runtime error": {
			err:  errors.NewRuntimeError("boom"),
			want: ExitRuntimeError,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
