// Package release sequences one release run: read history since the last
// tag, compute the next version and changelog, rewrite manifests, commit,
// tag, and optionally push. The core computation lives in BuildPlan; the
// Runner owns the side effects around it and skips all of them when there
// is nothing to release.
package release

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/relcut/relcut/internal/changelog"
	"github.com/relcut/relcut/internal/commit"
	"github.com/relcut/relcut/internal/config"
	"github.com/relcut/relcut/internal/errors"
	"github.com/relcut/relcut/internal/gitrepo"
	"github.com/relcut/relcut/internal/patch"
	"github.com/relcut/relcut/internal/semver"
)

// HistorySource supplies the raw material of a release: the latest release
// tag and the commits made since it. gitrepo.Repo is the production
// implementation.
type HistorySource interface {
	LatestReleaseTag(prefix string) (gitrepo.Tag, bool, error)
	CommitsSince(tag gitrepo.Tag) ([]commit.Raw, error)
}

// Publisher performs the version-control writes that publish a release.
type Publisher interface {
	CommitFiles(paths []string, message string) (string, error)
	CreateTag(name, message string) error
	Push(ctx context.Context, remote string) error
}

// Options are the per-run switches of a release.
type Options struct {
	// Force releases a patch version even when no commit justifies one.
	Force bool
	// DryRun computes and prints the plan without touching the tree.
	DryRun bool
	// Push pushes the release commit and tag after tagging, in addition
	// to the configured push setting.
	Push bool
	// Verbose reports skipped manifests in addition to patched ones.
	Verbose bool
}

// Result reports what a run did.
type Result struct {
	Plan         *Plan
	ChangedFiles []string
}

// Runner wires the engine to its collaborators.
type Runner struct {
	Config    *config.Configuration
	History   HistorySource
	Publisher Publisher
	// Out receives user-facing progress output. Defaults to os.Stdout.
	Out io.Writer
	// Now supplies the release timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Run executes one release. A None decision is a clean no-op: the Runner
// reports "nothing to release" and skips every downstream step.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	plan, err := r.plan(now(), opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Plan: plan}

	if !plan.Released {
		fmt.Fprintf(out, "%s nothing to release since %s\n", infoMark(), baselineName(plan))
		fmt.Fprintf(out, "%s use --force to cut an empty patch release\n", infoMark())
		return result, nil
	}

	if opts.DryRun {
		fmt.Fprintf(out, "%s would release %s (%s bump from %s)\n\n", infoMark(), plan.NextTag, plan.Decision, baselineName(plan))
		fmt.Fprint(out, plan.Changelog)
		return result, nil
	}

	if err := changelog.Prepend(r.Config.Changelog.Path, plan.Section); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "updating changelog")
	}
	fmt.Fprintf(out, "%s writing changes to %s\n", successMark(), r.Config.Changelog.Path)
	result.ChangedFiles = append(result.ChangedFiles, r.Config.Changelog.Path)

	patchResults, err := r.patchManifests(ctx, plan.Next.String())
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "patching manifests")
	}
	var patched []string
	for _, res := range patchResults {
		if res.Changed {
			fmt.Fprintf(out, "%s changing version in %s\n", successMark(), res.Target.Path)
			patched = append(patched, res.Target.Path)
		} else if opts.Verbose {
			fmt.Fprintf(out, "%s skipping %s (missing or no version field)\n", warnMark(), res.Target.Path)
		}
	}
	if len(patchResults) > 0 && len(patched) == 0 {
		fmt.Fprintf(out, "%s no manifest contained a version field to rewrite\n", warnMark())
	}
	result.ChangedFiles = append(result.ChangedFiles, patched...)

	message := "chore(release): " + plan.NextTag
	if _, err := r.Publisher.CommitFiles(result.ChangedFiles, message); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Repository, "committing release",
			"Check that user.name and user.email are set in your git configuration")
	}
	fmt.Fprintf(out, "%s committing %s\n", successMark(), joinFiles(result.ChangedFiles))

	if err := r.Publisher.CreateTag(plan.NextTag, "Release"); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Repository, "tagging release")
	}
	fmt.Fprintf(out, "%s tagging release %s\n", successMark(), plan.NextTag)

	if opts.Push || r.Config.Push {
		if err := r.push(ctx, out); err != nil {
			return nil, err
		}
	} else {
		fmt.Fprintf(out, "%s to publish, run: git push --follow-tags %s\n", infoMark(), r.Config.Remote)
	}

	return result, nil
}

// ComputePlan computes the release plan without performing any writes.
// It is the read-only entry point for commands that only inspect the
// pending release.
func (r *Runner) ComputePlan(opts Options) (*Plan, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	return r.plan(now(), opts)
}

// plan reads history and computes the release plan, translating failures
// into categorized errors the CLI can render with remediation.
func (r *Runner) plan(now time.Time, opts Options) (*Plan, error) {
	tag, found, err := r.History.LatestReleaseTag(r.Config.TagPrefix)
	if err != nil {
		var invalid *semver.InvalidVersionError
		if stderrors.As(err, &invalid) {
			return nil, errors.Wrap(err, errors.Version,
				"Fix or delete the malformed release tag",
				"relcut only parses tags shaped like "+r.Config.TagPrefix+"<major>.<minor>.<patch>")
		}
		return nil, errors.Wrap(err, errors.Repository)
	}

	// No prior release tag is a normal 0.0.0 baseline, not an error.
	baseline := semver.Version{}
	baselineTag := ""
	if found {
		baseline = tag.Version
		baselineTag = tag.Name
	}

	raws, err := r.History.CommitsSince(tag)
	if err != nil {
		return nil, errors.Wrap(err, errors.Repository)
	}

	plan, err := BuildPlan(baseline, baselineTag, raws, now, PlanOptions{
		TagPrefix:   r.Config.TagPrefix,
		ExtraTypes:  r.Config.ExtraCommitTypes(),
		NewestFirst: r.Config.Changelog.NewestFirst,
		Force:       opts.Force,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.Runtime)
	}
	return plan, nil
}

// patchManifests rewrites the version field in every configured manifest.
func (r *Runner) patchManifests(ctx context.Context, version string) ([]patch.Result, error) {
	var targets []patch.Target
	for _, family := range config.ManifestFamilies() {
		patcher, ok := patchers[family]
		if !ok {
			continue
		}
		for _, path := range r.Config.Manifests[family] {
			targets = append(targets, patch.Target{Patcher: patcher, Path: path})
		}
	}

	return patch.ApplyAll(ctx, targets, version)
}

// patchers maps each manifest family to its format-aware patcher.
var patchers = map[string]patch.Patcher{
	"helm":     patch.NewHelmChart(),
	"npm":      patch.NewNPMPackage(),
	"composer": patch.NewComposer(),
}

func baselineName(plan *Plan) string {
	if plan.BaselineTag == "" {
		return "the beginning of history"
	}
	return plan.BaselineTag
}

func joinFiles(files []string) string {
	return strings.Join(files, ", ")
}
