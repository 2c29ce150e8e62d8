// Package gitrepo supplies the release engine's view of the underlying git
// repository: release-tag discovery, commit history since the last release,
// and the write operations (stage, commit, tag, push) that publish one.
// It uses the go-git library throughout, so no git CLI is required.
package gitrepo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/relcut/relcut/internal/commit"
	"github.com/relcut/relcut/internal/semver"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it is a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo wraps an opened git repository.
type Repo struct {
	repo *git.Repository
}

// Open opens the git repository at path, traversing up the directory tree
// to find the repository root. An empty path means the current working
// directory.
func Open(path string) (*Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repo{repo: repo}, nil
}

// Root returns the absolute path of the repository worktree root.
func (r *Repo) Root() (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}

// Tag is a release tag together with its parsed version.
type Tag struct {
	Name    string
	Version semver.Version
	Hash    plumbing.Hash
}

// LatestReleaseTag finds the highest-versioned release tag whose name is
// the given prefix followed by a version string. found is false when the
// repository has no release tags at all, which callers treat as a 0.0.0
// baseline. A tag that looks like a release tag but does not parse as a
// version is an error, not a silent fallback.
func (r *Repo) LatestReleaseTag(prefix string) (Tag, bool, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return Tag{}, false, fmt.Errorf("listing tags: %w", err)
	}

	var latest Tag
	found := false

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !isReleaseTagName(name, prefix) {
			return nil
		}

		version, parseErr := semver.Parse(strings.TrimPrefix(name, prefix))
		if parseErr != nil {
			return fmt.Errorf("release tag %q: %w", name, parseErr)
		}

		if !found || semver.Less(latest.Version, version) {
			latest = Tag{Name: name, Version: version, Hash: ref.Hash()}
			found = true
		}
		return nil
	})
	if err != nil {
		return Tag{}, false, err
	}

	if found {
		logDebug("[git] latest release tag: %s", latest.Name)
	} else {
		logDebug("[git] no release tags found")
	}
	return latest, found, nil
}

// isReleaseTagName reports whether name has the release-tag shape:
// the configured prefix followed by a digit.
func isReleaseTagName(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return false
	}
	return unicode.IsDigit(rune(rest[0]))
}

// CommitsSince lists the commits from the given tag (exclusive) up to HEAD
// (inclusive), oldest first. A zero-value tag hash means no prior release:
// the whole history is returned.
func (r *Repo) CommitsSince(tag Tag) ([]commit.Raw, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	stop := plumbing.ZeroHash
	if !tag.Hash.IsZero() {
		stop, err = r.peelToCommit(tag.Hash)
		if err != nil {
			return nil, fmt.Errorf("resolving tag %s: %w", tag.Name, err)
		}
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	var raws []commit.Raw
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == stop {
			return storer.ErrStop
		}
		raws = append(raws, commit.Raw{
			Hash:    c.Hash.String(),
			Message: c.Message,
			Parents: c.NumParents(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	// git log yields newest first; the engine wants history order.
	for i, j := 0, len(raws)-1; i < j; i, j = i+1, j-1 {
		raws[i], raws[j] = raws[j], raws[i]
	}

	logDebug("[git] %d commits since %s", len(raws), tag.Name)
	return raws, nil
}

// peelToCommit resolves a tag hash to the commit it points at, peeling
// annotated tag objects.
func (r *Repo) peelToCommit(hash plumbing.Hash) (plumbing.Hash, error) {
	if tagObj, err := r.repo.TagObject(hash); err == nil {
		return tagObj.Target, nil
	}
	if _, err := r.repo.CommitObject(hash); err != nil {
		return plumbing.ZeroHash, err
	}
	return hash, nil
}

// CommitFiles stages the given paths (relative to the worktree root) and
// commits them with the given message. Author identity comes from the
// repository's git configuration.
func (r *Repo) CommitFiles(paths []string, message string) (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	for _, path := range paths {
		if _, err := worktree.Add(path); err != nil {
			return "", fmt.Errorf("staging %s: %w", path, err)
		}
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("committing release: %w", err)
	}

	logDebug("[git] committed %s: %s", hash, message)
	return hash.String(), nil
}

// CreateTag creates an annotated tag pointing at HEAD.
func (r *Repo) CreateTag(name, message string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD reference: %w", err)
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}

	logDebug("[git] created tag %s", name)
	return nil
}

// Push pushes the current branch and all tags to the named remote.
// SSH remotes authenticate via the SSH agent, HTTPS remotes via
// GIT_USERNAME/GIT_PASSWORD or GITHUB_TOKEN environment credentials.
func (r *Repo) Push(ctx context.Context, remoteName string) error {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return fmt.Errorf("remote %q not found: %w", remoteName, err)
	}

	var auth transport.AuthMethod
	if urls := remote.Config().URLs; len(urls) > 0 {
		auth = getAuthForURL(urls[0])
	}

	err = r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remoteName,
		Auth:       auth,
		RefSpecs: []gitconfig.RefSpec{
			"refs/heads/*:refs/heads/*",
			"refs/tags/*:refs/tags/*",
		},
	})
	if err == git.NoErrAlreadyUpToDate {
		return nil
	}
	if err != nil {
		return fmt.Errorf("pushing to %s: %w", remoteName, err)
	}

	logDebug("[git] pushed to %s", remoteName)
	return nil
}

// getAuthForURL returns the authentication method for a remote URL.
// SSH URLs use SSH agent auth, HTTPS URLs use environment credentials.
func getAuthForURL(url string) transport.AuthMethod {
	if isSSHURL(url) {
		auth, err := ssh.NewSSHAgentAuth("git")
		if err != nil {
			logDebug("[git] SSH agent auth failed: %v", err)
			return nil
		}
		return auth
	}

	username := os.Getenv("GIT_USERNAME")
	password := os.Getenv("GIT_PASSWORD")
	if username == "" {
		username = os.Getenv("GITHUB_TOKEN")
		if username != "" {
			password = ""
		}
	}

	if username != "" {
		return &http.BasicAuth{Username: username, Password: password}
	}
	return nil
}

// isSSHURL checks if a URL is an SSH URL.
// Detects git@ (SCP-style), ssh://, and git+ssh:// schemes.
func isSSHURL(url string) bool {
	return strings.HasPrefix(url, "git@") ||
		strings.HasPrefix(url, "ssh://") ||
		strings.HasPrefix(url, "git+ssh://")
}
