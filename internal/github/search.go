package github

import (
	"context"

	gh "github.com/google/go-github/v68/github"
)

// PageSize is the number of repositories requested per search page.
const PageSize = 100

// CountRepos returns the total number of repositories matching query.
// Only a single record is requested.
func CountRepos(ctx context.Context, client Client, query string) (int, error) {
	options := &gh.SearchOptions{ListOptions: gh.ListOptions{Page: 1, PerPage: 1}}
	result, _, err := client.SearchRepositories(ctx, query, options)
	if err != nil {
		return 0, err
	}
	return result.GetTotal(), nil
}

// SearchAllRepos returns every repository matching query, following
// pagination until the last page.
func SearchAllRepos(ctx context.Context, client Client, query string) ([]*gh.Repository, error) {
	var repositories []*gh.Repository

	options := &gh.SearchOptions{
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: PageSize},
	}

	for {
		result, response, err := client.SearchRepositories(ctx, query, options)
		if err != nil {
			return nil, err
		}
		repositories = append(repositories, result.Repositories...)

		if response.NextPage == 0 {
			break
		}
		options.Page = response.NextPage
	}

	return repositories, nil
}
