package gitinfo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrUncommitted is returned when the bank file is missing from HEAD or
// differs from it, so the commit hash would not identify its content.
var ErrUncommitted = errors.New("bank file has uncommitted changes")

// GitInfoAdapter implements domain.BankVersioner using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// CommitHash returns the HEAD commit of the repository holding path. The
// repository is found by walking up from the file's directory.
func (g *GitInfoAdapter) CommitHash(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("opening worktree: %w", err)
	}
	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return "", fmt.Errorf("locating %s in worktree: %w", path, err)
	}
	slashRel := filepath.ToSlash(rel)

	// Ignored files never show up in the status, so check HEAD's tree first.
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("reading HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("reading HEAD tree: %w", err)
	}
	if _, err := tree.File(slashRel); err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", ErrUncommitted
		}
		return "", fmt.Errorf("looking up %s in HEAD: %w", path, err)
	}

	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("reading worktree status: %w", err)
	}
	if fs, ok := status[slashRel]; ok && (fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified) {
		return "", ErrUncommitted
	}

	return head.Hash().String(), nil
}
