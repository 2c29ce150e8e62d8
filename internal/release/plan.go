package release

import (
	"time"

	"github.com/relcut/relcut/internal/changelog"
	"github.com/relcut/relcut/internal/commit"
	"github.com/relcut/relcut/internal/resolve"
	"github.com/relcut/relcut/internal/semver"
)

// PlanOptions controls how a release plan is computed.
type PlanOptions struct {
	// TagPrefix shapes the next tag name and the changelog heading.
	TagPrefix string
	// ExtraTypes are the additional commit types rendered in the
	// changelog after the fixed categories.
	ExtraTypes []commit.Type
	// NewestFirst reverses changelog entry order within categories.
	NewestFirst bool
	// Force upgrades a None decision to Patch, releasing even when no
	// commit alone would justify it.
	Force bool
}

// Plan is the computed outcome of one engine run: the bump decision, the
// next version, and the rendered changelog section. It is a pure value;
// nothing has touched the repository yet.
type Plan struct {
	Baseline    semver.Version
	BaselineTag string
	Commits     []commit.Parsed
	Decision    resolve.Decision
	Released    bool
	Next        semver.Version
	NextTag     string
	Section     *changelog.Section
	Changelog   string
}

// BuildPlan runs the core pipeline over an already-fetched commit list:
// parse, classify, resolve the next version, and render the changelog
// section. The baseline version is threaded through as a parameter, so the
// whole computation is a pure function of its inputs.
func BuildPlan(baseline semver.Version, baselineTag string, raws []commit.Raw, now time.Time, opts PlanOptions) (*Plan, error) {
	parsed := commit.ParseAll(raws)
	decision := resolve.Classify(parsed)

	if decision == resolve.None && opts.Force {
		decision = resolve.Patch
	}

	plan := &Plan{
		Baseline:    baseline,
		BaselineTag: baselineTag,
		Commits:     parsed,
		Decision:    decision,
	}

	next, released := resolve.Next(baseline, decision)
	if !released {
		return plan, nil
	}

	plan.Released = true
	plan.Next = next
	plan.NextTag = opts.TagPrefix + next.String()
	plan.Section = changelog.Build(next, now, decision, parsed, changelog.Options{
		TagPrefix:   opts.TagPrefix,
		ExtraTypes:  opts.ExtraTypes,
		NewestFirst: opts.NewestFirst,
	})

	rendered, err := changelog.RenderString(plan.Section)
	if err != nil {
		return nil, err
	}
	plan.Changelog = rendered

	return plan, nil
}
