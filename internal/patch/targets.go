package patch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Target pairs a patcher with a concrete manifest path.
type Target struct {
	Patcher Patcher
	Path    string
}

// Result reports the outcome of patching one target.
type Result struct {
	Target  Target
	Changed bool
}

// ApplyAll patches every target with the same version string. Targets are
// independent files, so they are patched concurrently; results come back
// in target order. The first error cancels the remaining work.
func ApplyAll(ctx context.Context, targets []Target, version string) ([]Result, error) {
	results := make([]Result, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			changed, err := target.Patcher.Patch(target.Path, version)
			if err != nil {
				return err
			}
			results[i] = Result{Target: target, Changed: changed}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
