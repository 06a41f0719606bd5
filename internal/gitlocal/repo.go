// Package gitlocal lists commit history from a repository on disk using
// go-git, so a changelog can be generated without network access or a
// GitHub token.
package gitlocal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	cerrors "github.com/evanhall-dev/shiplog/internal/errors"
	"github.com/evanhall-dev/shiplog/internal/model"
)

// Repo wraps an opened on-disk repository.
type Repo struct {
	path string
	repo *git.Repository
}

// Open opens the repository at path. DetectDotGit lets callers point at
// any directory inside the working tree.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, cerrors.LocalRepoNotFound(path, err)
		}
		return nil, cerrors.WrapWithMessage(err, cerrors.Fetch,
			fmt.Sprintf("opening repository at %s", path))
	}
	return &Repo{path: path, repo: repo}, nil
}

// Name returns the directory name of the repository, used where a
// remote repository would supply owner/repo.
func (r *Repo) Name() string {
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return filepath.Base(r.path)
	}
	return filepath.Base(abs)
}

// Describe builds repository metadata for the local checkout.
func (r *Repo) Describe(ctx context.Context) (model.Repo, error) {
	name := r.Name()
	branch := ""
	if head, err := r.repo.Head(); err == nil && head.Name().IsBranch() {
		branch = head.Name().Short()
	}
	return model.Repo{
		Name:          name,
		FullName:      name,
		DefaultBranch: branch,
	}, nil
}

// ResolveBranch checks that an explicitly requested branch exists.
// Empty means HEAD, which always resolves.
func (r *Repo) ResolveBranch(ctx context.Context, repo model.Repo, custom string) (string, error) {
	if custom == "" {
		return "", nil
	}
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(custom), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", cerrors.BranchNotFound(custom, repo.FullName)
		}
		return "", cerrors.WrapWithMessage(err, cerrors.Fetch,
			fmt.Sprintf("resolving branch %s", custom))
	}
	return custom, nil
}

// ListCommits walks the history newest first from the requested branch,
// or HEAD when no branch is given, honoring the same Since and Limit
// semantics as the remote source.
func (r *Repo) ListCommits(ctx context.Context, repo model.Repo, opts model.ListOptions) ([]model.Commit, error) {
	from, err := r.startHash(opts.Branch)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return nil, cerrors.WrapWithMessage(err, cerrors.Fetch,
			fmt.Sprintf("reading history of %s", repo.FullName))
	}
	defer iter.Close()

	var commits []model.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !opts.Since.IsZero() && c.Author.When.Before(opts.Since) {
			return storer.ErrStop
		}
		commits = append(commits, model.Commit{
			SHA:       c.Hash.String(),
			Message:   c.Message,
			Author:    c.Author.Name,
			Timestamp: c.Author.When,
		})
		if opts.Limit > 0 && len(commits) >= opts.Limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, cerrors.WrapWithMessage(err, cerrors.Fetch,
			fmt.Sprintf("walking commits of %s", repo.FullName))
	}
	return commits, nil
}

// startHash resolves the commit the walk begins from.
func (r *Repo) startHash(branch string) (plumbing.Hash, error) {
	if branch == "" {
		head, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, cerrors.WrapWithMessage(err, cerrors.Fetch,
				"resolving HEAD", "Make sure the repository has at least one commit")
		}
		return head.Hash(), nil
	}

	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, cerrors.BranchNotFound(branch, r.Name())
		}
		return plumbing.ZeroHash, cerrors.WrapWithMessage(err, cerrors.Fetch,
			fmt.Sprintf("resolving branch %s", branch))
	}
	return ref.Hash(), nil
}
