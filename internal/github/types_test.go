package github

import (
	"encoding/json"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	r := &gh.Repository{
		Owner:         &gh.User{Login: gh.Ptr("acme")},
		Name:          gh.Ptr("widget"),
		FullName:      gh.Ptr("acme/widget"),
		Private:       gh.Ptr(true),
		HTMLURL:       gh.Ptr("https://github.com/acme/widget"),
		Fork:          gh.Ptr(false),
		Archived:      gh.Ptr(true),
		Disabled:      gh.Ptr(false),
		IsTemplate:    gh.Ptr(true),
		Visibility:    gh.Ptr("private"),
		DefaultBranch: gh.Ptr("main"),
		Description:   gh.Ptr("dropped"),
	}

	want := RepoSummary{
		Owner:         "acme",
		Name:          "widget",
		FullName:      "acme/widget",
		Private:       true,
		HTMLURL:       "https://github.com/acme/widget",
		Fork:          false,
		Archived:      true,
		Disabled:      false,
		IsTemplate:    true,
		Visibility:    "private",
		DefaultBranch: "main",
	}
	assert.Equal(t, want, Summarize(r))
}

func TestSummarize_MissingFields(t *testing.T) {
	got := Summarize(&gh.Repository{Name: gh.Ptr("bare")})
	assert.Equal(t, RepoSummary{Name: "bare"}, got)
}

func TestSummarizeAll_PreservesOrder(t *testing.T) {
	got := SummarizeAll([]*gh.Repository{makeRepo("b", "two"), makeRepo("a", "one")})
	require.Len(t, got, 2)
	assert.Equal(t, "b/two", got[0].FullName)
	assert.Equal(t, "a/one", got[1].FullName)
}

func TestSummarizeAll_Empty(t *testing.T) {
	got := SummarizeAll(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepoSummary_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(RepoSummary{Owner: "acme", FullName: "acme/widget"})
	require.NoError(t, err)

	want := `{"owner":"acme","name":"","full_name":"acme/widget","private":false,"html_url":"","fork":false,` +
		`"archived":false,"disabled":false,"is_template":false,"visibility":"","default_branch":""}`
	assert.JSONEq(t, want, string(data))
}
