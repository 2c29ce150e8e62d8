package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/internal/commit"
	"github.com/relcut/relcut/internal/semver"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commits []commit.Parsed
		want    Decision
	}{
		"empty history": {
			commits: nil,
			want:    None,
		},
		"single fix": {
			commits: []commit.Parsed{{Type: commit.TypeFix}},
			want:    Patch,
		},
		"perf counts as patch": {
			commits: []commit.Parsed{{Type: commit.TypePerf}},
			want:    Patch,
		},
		"single feature": {
			commits: []commit.Parsed{{Type: commit.TypeFeat}},
			want:    Minor,
		},
		"breaking dominates feature": {
			commits: []commit.Parsed{
				{Type: commit.TypeFeat},
				{Type: commit.TypeFix, Breaking: true},
			},
			want: Major,
		},
		"feature dominates fix": {
			commits: []commit.Parsed{
				{Type: commit.TypeFix},
				{Type: commit.TypeFeat},
				{Type: commit.TypeFix},
			},
			want: Minor,
		},
		"chore and docs only": {
			commits: []commit.Parsed{
				{Type: commit.TypeChore},
				{Type: commit.TypeDocs},
			},
			want: None,
		},
		"unrecognized commits have no effect": {
			commits: []commit.Parsed{
				{Type: commit.TypeOther},
				{Type: commit.TypeOther},
			},
			want: None,
		},
		"breaking chore still major": {
			commits: []commit.Parsed{{Type: commit.TypeChore, Breaking: true}},
			want:    Major,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Classify(tt.commits))
		})
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		current  semver.Version
		decision Decision
		want     semver.Version
		released bool
	}{
		"patch bump": {
			current:  semver.Version{Major: 1, Minor: 2, Patch: 3},
			decision: Patch,
			want:     semver.Version{Major: 1, Minor: 2, Patch: 4},
			released: true,
		},
		"minor bump resets patch": {
			current:  semver.Version{Major: 1, Minor: 2, Patch: 3},
			decision: Minor,
			want:     semver.Version{Major: 1, Minor: 3},
			released: true,
		},
		"major bump resets minor and patch": {
			current:  semver.Version{Major: 1, Minor: 2, Patch: 3},
			decision: Major,
			want:     semver.Version{Major: 2},
			released: true,
		},
		"pre-1.0 breaking bumps minor not major": {
			current:  semver.Version{Minor: 4, Patch: 1},
			decision: Major,
			want:     semver.Version{Minor: 5},
			released: true,
		},
		"none produces no version": {
			current:  semver.Version{Major: 1},
			decision: None,
			released: false,
		},
		"prerelease label dropped on bump": {
			current:  semver.Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "rc.1"},
			decision: Patch,
			want:     semver.Version{Major: 1, Minor: 2, Patch: 4},
			released: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, released := Next(tt.current, tt.decision)
			require.Equal(t, tt.released, released)
			if released {
				assert.Equal(t, tt.want, got)
				assert.Empty(t, got.Prerelease)
			}
		})
	}
}

func TestClassifyThenNext_SpecExamples(t *testing.T) {
	t.Parallel()

	// End-to-end over the documented bump rules.
	current := semver.Version{Major: 1, Minor: 2, Patch: 3}

	d := Classify([]commit.Parsed{{Type: commit.TypeFix}})
	v, ok := Next(current, d)
	require.True(t, ok)
	assert.Equal(t, "1.2.4", v.String())

	d = Classify([]commit.Parsed{{Type: commit.TypeFeat}})
	v, ok = Next(current, d)
	require.True(t, ok)
	assert.Equal(t, "1.3.0", v.String())

	d = Classify([]commit.Parsed{
		{Type: commit.TypeFeat},
		{Type: commit.TypeFix, Breaking: true},
	})
	v, ok = Next(current, d)
	require.True(t, ok)
	assert.Equal(t, "2.0.0", v.String())
}
