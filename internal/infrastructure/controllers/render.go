package controllers

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

const (
	shortIDLength = 7
	// diskUsageUnit is the size of one disk_usage unit, reported in kilobytes.
	diskUsageUnit = 1024
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func renderProfile(w io.Writer, profile *entities.UserProfile) {
	table := newTable(w, "Field", "Value")
	table.AppendBulk([][]string{
		{"Login", profile.Login},
		{"Name", profile.Name},
		{"Company", profile.Company},
		{"Location", profile.Location},
		{"Email", profile.Email},
		{"Blog", profile.Blog},
		{"Followers", humanize.Comma(int64(profile.Followers))},
		{"Following", humanize.Comma(int64(profile.Following))},
		{"Public repos", humanize.Comma(int64(profile.PublicRepos))},
	})
	if profile.Authenticated {
		table.Append([]string{"Disk usage", humanize.IBytes(uint64(profile.DiskUsage) * diskUsageUnit)})
		table.Append([]string{"Plan", profile.Plan})
	}
	table.Render()
}

func renderRepos(w io.Writer, summaries []entities.RepoSummary) {
	table := newTable(w, "Name", "Description", "Watchers", "Forks", "Visibility", "SSH URL")
	for _, s := range summaries {
		visibility := "public"
		if s.Private {
			visibility = "private"
		}
		if s.Fork {
			visibility += " fork"
		}
		table.Append([]string{
			s.Repository.Name,
			s.Description,
			humanize.Comma(int64(s.Watchers)),
			humanize.Comma(int64(s.Forks)),
			visibility,
			s.Repository.SSHURL,
		})
	}
	table.Render()
}

func renderChange(w io.Writer, change *entities.CollaboratorChange) {
	prefix := ""
	if change.DryRun {
		prefix = "[DRY RUN] "
	}
	if len(change.Removed) == 0 && len(change.Added) == 0 {
		_, _ = fmt.Fprintf(w, "%s%s: collaborators already up to date\n", prefix, change.Repo)
		return
	}
	for _, login := range change.Removed {
		_, _ = fmt.Fprintf(w, "%s- %s\n", prefix, login)
	}
	for _, login := range change.Added {
		_, _ = fmt.Fprintf(w, "%s+ %s\n", prefix, login)
	}
}

func renderCommits(w io.Writer, summaries []entities.CommitSummary) {
	table := newTable(w, "Commit", "Author", "When", "Message")
	for _, s := range summaries {
		id := s.ID
		if len(id) > shortIDLength {
			id = id[:shortIDLength]
		}
		when := ""
		if !s.Date.IsZero() {
			when = humanize.Time(s.Date)
		}
		table.Append([]string{id, s.Author, when, s.Message})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "%d commits\n", len(summaries))
}
