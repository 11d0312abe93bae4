package github

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- CountRepos ---

func TestCountRepos(t *testing.T) {
	var gotQuery string
	var gotOpts *gh.SearchOptions
	client := &mockClient{
		searchRepositoriesFn: func(_ context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			gotQuery, gotOpts = query, opts
			return &gh.RepositoriesSearchResult{
				Total:        gh.Ptr(42),
				Repositories: []*gh.Repository{makeRepo("acme", "one")},
			}, emptyResponse(), nil
		},
	}

	count, err := CountRepos(context.Background(), client, "user:acme")
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.Equal(t, "user:acme", gotQuery)
	assert.Equal(t, 1, gotOpts.PerPage)
	assert.Equal(t, 1, gotOpts.Page)
}

func TestCountRepos_Error(t *testing.T) {
	apiErr := errors.New("api error")
	client := &mockClient{
		searchRepositoriesFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return nil, nil, apiErr
		},
	}

	_, err := CountRepos(context.Background(), client, "user:acme")
	assert.Same(t, apiErr, err)
}

// --- SearchAllRepos ---

func TestSearchAllRepos_SinglePage(t *testing.T) {
	var gotOpts *gh.SearchOptions
	client := &mockClient{
		searchRepositoriesFn: func(_ context.Context, _ string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			gotOpts = opts
			return &gh.RepositoriesSearchResult{
				Total:        gh.Ptr(2),
				Repositories: []*gh.Repository{makeRepo("acme", "one"), makeRepo("acme", "two")},
			}, emptyResponse(), nil
		},
	}

	repos, err := SearchAllRepos(context.Background(), client, "user:acme")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "acme/one", repos[0].GetFullName())
	assert.Equal(t, "acme/two", repos[1].GetFullName())
	assert.Equal(t, PageSize, gotOpts.PerPage)
	assert.Equal(t, "desc", gotOpts.Order)
}

func TestSearchAllRepos_Pagination(t *testing.T) {
	var pages []int
	client := &mockClient{
		searchRepositoriesFn: func(_ context.Context, _ string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			pages = append(pages, opts.Page)
			resp := emptyResponse()
			var results []*gh.Repository
			switch len(pages) {
			case 1:
				results = []*gh.Repository{makeRepo("acme", "one")}
				resp.NextPage = 2
			case 2:
				results = []*gh.Repository{makeRepo("acme", "two")}
				resp.NextPage = 3
			default:
				// NextPage = 0 (default) signals last page.
				results = []*gh.Repository{makeRepo("acme", "three")}
			}
			return &gh.RepositoriesSearchResult{Total: gh.Ptr(3), Repositories: results}, resp, nil
		},
	}

	repos, err := SearchAllRepos(context.Background(), client, "user:acme")
	require.NoError(t, err)
	require.Len(t, repos, 3)
	assert.Equal(t, []int{0, 2, 3}, pages)
	assert.Equal(t, "acme/three", repos[2].GetFullName())
}

func TestSearchAllRepos_Empty(t *testing.T) {
	client := &mockClient{
		searchRepositoriesFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return &gh.RepositoriesSearchResult{Total: gh.Ptr(0)}, emptyResponse(), nil
		},
	}

	repos, err := SearchAllRepos(context.Background(), client, "user:nobody")
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestSearchAllRepos_ErrorOnLaterPage(t *testing.T) {
	calls := 0
	client := &mockClient{
		searchRepositoriesFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			calls++
			if calls == 2 {
				return nil, nil, errors.New("page 2 failed")
			}
			resp := emptyResponse()
			resp.NextPage = 2
			return &gh.RepositoriesSearchResult{Repositories: []*gh.Repository{makeRepo("acme", "one")}}, resp, nil
		},
	}

	repos, err := SearchAllRepos(context.Background(), client, "user:acme")
	require.EqualError(t, err, "page 2 failed")
	assert.Nil(t, repos, "no partial results on failure")
}
