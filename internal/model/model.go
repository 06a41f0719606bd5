// Package model defines the value types shared between commit sources
// and the changelog pipeline.
package model

import "time"

// Commit is a single commit as returned by a commit source.
// Immutable once fetched; the pipeline never mutates commits.
type Commit struct {
	SHA       string
	Message   string
	Author    string
	Timestamp time.Time
	URL       string
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	for i := 0; i < len(c.Message); i++ {
		if c.Message[i] == '\n' {
			return c.Message[:i]
		}
	}
	return c.Message
}

// ListOptions narrows a commit listing, shared by all commit sources.
type ListOptions struct {
	// Branch is the branch to walk. Empty means the source's default
	// (HEAD for local repositories).
	Branch string
	// Since excludes commits authored before this instant; a commit at
	// exactly this instant is included. Zero means no cutoff.
	Since time.Time
	// Limit caps the number of commits returned; 0 means all.
	Limit int
}

// Repo describes the repository a changelog is generated for.
type Repo struct {
	Owner         string
	Name          string
	FullName      string
	Description   string
	DefaultBranch string
}
