package commands

import (
	"context"
	"strconv"

	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"

	"github.com/stahnma/gh-repo-search/internal/config"
	"github.com/stahnma/gh-repo-search/internal/finder"
	"github.com/stahnma/gh-repo-search/internal/format"
)

func (a *App) runSearch(cmd *cobra.Command) error {
	in, err := config.LoadInputs(a.Inputs)
	if err != nil {
		return err
	}
	opts, err := in.Validate()
	if err != nil {
		return err
	}

	// Stdout carries the result document outside a workflow run, so
	// progress and warnings go to stderr.
	if a.Action.Getenv("GITHUB_OUTPUT") == "" {
		a.Action = githubactions.New(
			githubactions.WithWriter(cmd.ErrOrStderr()),
			githubactions.WithGetenv(a.Action.Getenv),
		)
	}
	if err := a.ensureClient(); err != nil {
		return err
	}

	res, err := finder.Find(context.Background(), a.GHClient, opts, a.Action)
	if err != nil {
		return err
	}

	// Outside a workflow run there is no output file; print the result instead.
	if a.Action.Getenv("GITHUB_OUTPUT") == "" {
		return format.WriteJSON(cmd.OutOrStdout(), res.Document())
	}

	repos, err := res.ReposOutput()
	if err != nil {
		return err
	}
	a.Action.SetOutput("count", strconv.Itoa(res.Count))
	a.Action.SetOutput("repos", repos)
	a.Action.SetOutput("format", res.Format)
	return nil
}
