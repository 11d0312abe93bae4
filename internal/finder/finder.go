// Package finder runs the repository search pipeline: validate, build the
// query, count the matches, enforce the result ceilings, fetch every
// page and project the records.
package finder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stahnma/gh-repo-search/internal/format"
	ghub "github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/query"
)

const (
	// MatrixLimit is the largest job matrix a workflow can expand.
	MatrixLimit = 256
	// SearchLimit is the most results the search API returns for a query.
	SearchLimit = 1000

	matrixDocsURL = "https://docs.github.com/en/actions/writing-workflows/choosing-what-your-workflow-does/running-variations-of-jobs-in-a-workflow"
)

var (
	ErrMatrixLimit = errors.New("256 repos is a hard limit for a matrix job")
	ErrSearchLimit = errors.New("1000 repos is a hard limit for a GitHub API search query")
)

// Logger receives progress messages.
type Logger interface {
	Infof(msg string, args ...any)
}

// LoggerFunc adapts a printf-style function to Logger.
type LoggerFunc func(msg string, args ...any)

func (f LoggerFunc) Infof(msg string, args ...any) { f(msg, args...) }

// Result is the outcome of a successful run.
type Result struct {
	// Count is the total reported by the search API, not len(Repos).
	Count     int
	Format    string
	Delimiter string
	Repos     []ghub.RepoSummary
}

// ReposOutput renders the repos value for the result's format.
func (r Result) ReposOutput() (string, error) {
	return format.Repos(r.Repos, r.Format, r.Delimiter)
}

// Document is the serialisable form of a Result. Repos holds the summary
// list for json and the joined full names for flat.
type Document struct {
	Count  int    `json:"count"`
	Repos  any    `json:"repos"`
	Format string `json:"format"`
}

// Document returns the result as a Document.
func (r Result) Document() Document {
	doc := Document{Count: r.Count, Format: r.Format}
	if r.Format == query.FormatFlat {
		doc.Repos = format.JoinFullNames(r.Repos, r.Delimiter)
	} else if r.Repos == nil {
		doc.Repos = []ghub.RepoSummary{}
	} else {
		doc.Repos = r.Repos
	}
	return doc
}

// Run validates in and runs the search.
func Run(ctx context.Context, client ghub.Client, in query.Inputs, log Logger) (Result, error) {
	opts, err := in.Validate()
	if err != nil {
		return Result{}, err
	}
	return Find(ctx, client, opts, log)
}

// Find searches for the repositories selected by opts.
func Find(ctx context.Context, client ghub.Client, opts query.Options, log Logger) (Result, error) {
	logOptions(log, opts)

	q := opts.Query()
	log.Infof("Search query: %s", q)

	count, err := ghub.CountRepos(ctx, client, q)
	if err != nil {
		return Result{}, err
	}
	log.Infof("Found repo(s): %d", count)

	if err := checkLimits(opts, count); err != nil {
		return Result{}, err
	}

	raw, err := ghub.SearchAllRepos(ctx, client, q)
	if err != nil {
		return Result{}, err
	}

	repos := []ghub.RepoSummary{}
	if count > 0 {
		repos = ghub.SummarizeAll(raw)
	}

	return Result{
		Count:     count,
		Format:    opts.Format,
		Delimiter: opts.Delimiter,
		Repos:     repos,
	}, nil
}

func checkLimits(opts query.Options, count int) error {
	if opts.Format == query.FormatJSON && opts.MatrixUse && count > MatrixLimit {
		return fmt.Errorf("found %d repos, more than %d, adjust the filter: %w (docs: %s)", count, MatrixLimit, ErrMatrixLimit, matrixDocsURL)
	}
	if count > SearchLimit {
		return fmt.Errorf("found %d repos, more than %d, adjust the filter: %w", count, SearchLimit, ErrSearchLimit)
	}
	return nil
}

func logOptions(log Logger, opts query.Options) {
	topics, _ := json.Marshal(opts.Topics)
	delimiter := opts.Delimiter
	if delimiter == "\n" {
		delimiter = `\n`
	}

	log.Infof("Owner: %s", opts.Owner)
	log.Infof("Topics: %s", topics)
	log.Infof("Operator: %s", opts.Operator)
	log.Infof("Matrix Use: %t", opts.MatrixUse)
	log.Infof("Format: %s", opts.Format)
	log.Infof("Delimiter: %s", delimiter)
}
