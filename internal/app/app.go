// Package app wires the changelog pipeline together: fetch commits,
// group them by period, format each group through a provider, merge
// into the existing document, and write the result atomically.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/evanhall-dev/shiplog/internal/changelog"
	cerrors "github.com/evanhall-dev/shiplog/internal/errors"
	"github.com/evanhall-dev/shiplog/internal/model"
	"github.com/evanhall-dev/shiplog/internal/output"
	"github.com/evanhall-dev/shiplog/internal/progress"
	"github.com/evanhall-dev/shiplog/internal/provider"
)

// CommitSource lists commit history for a repository. The GitHub API
// client and the local go-git source both satisfy it.
type CommitSource interface {
	ResolveBranch(ctx context.Context, repo model.Repo, custom string) (string, error)
	ListCommits(ctx context.Context, repo model.Repo, opts model.ListOptions) ([]model.Commit, error)
}

// Options is one run's worth of resolved settings.
type Options struct {
	Repo       model.Repo
	Branch     string
	NumCommits int // 0 means all
	AfterDate  time.Time
	GroupBy    changelog.GroupMode
	Style      provider.Style
	OutputPath string
	Summary    bool
}

// App holds the pipeline's collaborators.
type App struct {
	Source   CommitSource
	Provider provider.Provider
	Out      io.Writer
	Reporter *progress.Reporter
}

// Run executes the full pipeline. It never leaves a partially formatted
// document behind: the output file is only touched after every group
// has been formatted.
func (a *App) Run(ctx context.Context, opts Options) error {
	existing, err := changelog.Load(opts.OutputPath)
	if err != nil {
		return cerrors.ChangelogNotReadable(opts.OutputPath, err)
	}

	since := opts.AfterDate
	if since.IsZero() {
		// incremental mode: refetch from the newest section's period start.
		// The cutoff is inclusive, so the full boundary period is
		// regenerated and whole-section replacement dedups it.
		since = existing.LatestSectionStart()
	}

	a.Reporter.Start(fmt.Sprintf("Fetching commits from %s", opts.Repo.FullName))
	branch, err := a.Source.ResolveBranch(ctx, opts.Repo, opts.Branch)
	if err != nil {
		a.Reporter.Fail("Could not resolve branch")
		return err
	}

	commits, err := a.Source.ListCommits(ctx, opts.Repo, model.ListOptions{
		Branch: branch,
		Since:  since,
		Limit:  opts.NumCommits,
	})
	if err != nil {
		a.Reporter.Fail("Fetch failed")
		return err
	}
	if len(commits) == 0 {
		a.Reporter.Stop()
		output.PrintInfo(a.Out, "No new commits found; changelog is up to date")
		return nil
	}
	a.Reporter.Done(fmt.Sprintf("Fetched %d commits", len(commits)))

	groups := changelog.Group(commits, opts.GroupBy)

	fresh := make([]changelog.Section, 0, len(groups))
	for i, group := range groups {
		a.Reporter.Start(fmt.Sprintf("Formatting %s (%d/%d)", group.Label, i+1, len(groups)))

		bullets, err := a.Provider.FormatGroup(ctx, provider.Request{
			Label:    group.Label,
			Style:    opts.Style,
			Messages: subjects(group.Commits),
		})
		if err != nil {
			a.Reporter.Fail(fmt.Sprintf("Formatting %s failed", group.Label))
			return cerrors.ProviderCallFailed(a.Provider.Name(), err)
		}

		fresh = append(fresh, changelog.Section{
			Key:     group.Key,
			Label:   group.Label,
			Start:   group.Start,
			Bullets: bullets,
		})
	}
	a.Reporter.Done(fmt.Sprintf("Formatted %d sections", len(fresh)))

	merged := changelog.Merge(existing, fresh)

	if opts.Summary {
		a.Reporter.Start("Summarizing")
		summary, err := a.summarize(ctx, fresh, opts.Style)
		if err != nil {
			a.Reporter.Fail("Summary failed")
			return cerrors.ProviderCallFailed(a.Provider.Name(), err)
		}
		merged.Summary = summary
		a.Reporter.Done("Summary generated")
	}

	if err := changelog.WriteFile(&merged, opts.OutputPath); err != nil {
		return cerrors.ChangelogNotWritable(opts.OutputPath, err)
	}

	output.PrintSuccess(a.Out, fmt.Sprintf("Wrote %d section(s) to %s", len(fresh), opts.OutputPath))
	return nil
}

// summarize feeds the freshly formatted sections back through the
// provider for the top-of-file summary paragraph.
func (a *App) summarize(ctx context.Context, fresh []changelog.Section, style provider.Style) (string, error) {
	content, err := changelog.RenderString(&changelog.Document{Sections: fresh})
	if err != nil {
		return "", err
	}
	return a.Provider.Summarize(ctx, content, style)
}

func subjects(commits []model.Commit) []string {
	out := make([]string, len(commits))
	for i, c := range commits {
		out[i] = c.Subject()
	}
	return out
}
