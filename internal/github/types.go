package github

import gh "github.com/google/go-github/v68/github"

// RepoSummary is the reduced view of a repository published as output.
type RepoSummary struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
	Fork          bool   `json:"fork"`
	Archived      bool   `json:"archived"`
	Disabled      bool   `json:"disabled"`
	IsTemplate    bool   `json:"is_template"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
}

// Summarize projects a search result record onto a RepoSummary.
func Summarize(r *gh.Repository) RepoSummary {
	return RepoSummary{
		Owner:         r.GetOwner().GetLogin(),
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Private:       r.GetPrivate(),
		HTMLURL:       r.GetHTMLURL(),
		Fork:          r.GetFork(),
		Archived:      r.GetArchived(),
		Disabled:      r.GetDisabled(),
		IsTemplate:    r.GetIsTemplate(),
		Visibility:    r.GetVisibility(),
		DefaultBranch: r.GetDefaultBranch(),
	}
}

// SummarizeAll projects each record in order.
func SummarizeAll(repos []*gh.Repository) []RepoSummary {
	summaries := make([]RepoSummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, Summarize(r))
	}
	return summaries
}
