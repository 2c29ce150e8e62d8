package release

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/relcut/relcut/internal/errors"
)

// Progress marks in the style of the classic release tools. The color
// package disables itself on non-terminal writers, so plain pipes get the
// bare symbols.
var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgBlue)
	warnColor    = color.New(color.FgYellow)
)

func successMark() string { return successColor.Sprint("✔") }
func infoMark() string    { return infoColor.Sprint("ℹ") }
func warnMark() string    { return warnColor.Sprint("⚠") }

// push sends the release commit and tag to the configured remote, with a
// spinner when stderr is a terminal since this is the one network call in
// a run.
func (r *Runner) push(ctx context.Context, out io.Writer) error {
	var spin *spinner.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr),
			spinner.WithSuffix(" pushing to "+r.Config.Remote))
		spin.Start()
	}

	err := r.Publisher.Push(ctx, r.Config.Remote)

	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		return errors.WrapWithMessage(err, errors.Repository, "pushing release",
			"Check that the remote '"+r.Config.Remote+"' exists and you have push access")
	}

	fmt.Fprintf(out, "%s pushed to %s\n", successMark(), r.Config.Remote)
	return nil
}
