package entities

import (
	"time"
)

// UserProfile is what the user command prints for one account.
type UserProfile struct {
	Login         string
	Name          string
	Company       string
	Location      string
	Email         string
	Blog          string
	Followers     int
	Following     int
	PublicRepos   int
	Authenticated bool
	// DiskUsage and Plan are only known for the authenticated user.
	DiskUsage int
	Plan      string
}

// RepoSummary is one row of the repos command.
type RepoSummary struct {
	Repository  Repository
	Description string
	Watchers    int
	Forks       int
	Private     bool
	Fork        bool
}

// CollaboratorChange reports what a collaborator sync did, or would do.
type CollaboratorChange struct {
	Repo    string
	Removed []string
	Added   []string
	DryRun  bool
}

// CommitSummary is one row of the commits command.
type CommitSummary struct {
	ID      string
	Author  string
	Message string
	// Date is zero when the record carried no parseable date.
	Date time.Time
}
