package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stahnma/gh-repo-search/internal/config"
	ghub "github.com/stahnma/gh-repo-search/internal/github"
)

// App holds shared application state.
type App struct {
	Config   config.Config
	GHClient ghub.Client
	Action   *githubactions.Action
	Inputs   *viper.Viper
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	action := githubactions.New()
	if action.Getenv("GITHUB_OUTPUT") == "" {
		action = githubactions.New(githubactions.WithWriter(os.Stderr))
	}
	return &App{
		Config:   cfg,
		Action:   action,
		Inputs:   config.NewViper(),
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

// ensureClient creates the GitHub client if it doesn't exist.
func (a *App) ensureClient() error {
	if a.GHClient != nil {
		return nil
	}
	if a.Config.GitHubToken == "" {
		a.Action.Warningf("GITHUB_TOKEN is not set, searching without authentication")
	}
	if a.Config.DebugMode {
		log.Printf("Creating GitHub client for API URL %q", a.Config.APIURL)
	}
	client, err := ghub.NewClient(a.Config.GitHubToken, a.Config.APIURL)
	if err != nil {
		return fmt.Errorf("creating GitHub client: %w", err)
	}
	a.GHClient = client
	return nil
}

// NewRootCommand creates the root cobra command with all subcommands.
// The root command itself runs the search.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gh-repo-search [flags]",
		Short: "Search an owner's repositories by topic and publish them as workflow outputs.",
		Long: `Search an owner's repositories by topic and publish them as workflow outputs.

Every flag can also be supplied as an action input through the environment:
INPUT_OWNER, INPUT_TOPICS, INPUT_OPERATOR, INPUT_MATRIX_USE, INPUT_FORMAT
and INPUT_DELIMITER. Flags take precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	flags := rootCmd.PersistentFlags()
	flags.String("owner", "", "Account whose repositories are searched (required)")
	flags.String("topics", "", "Comma or space separated topics to filter on")
	flags.String("operator", "", "Operator between topics: AND or OR (default OR)")
	flags.Bool("matrix-use", true, "Fail when a json result would exceed the 256 job matrix limit")
	flags.String("format", "", "Output format: json or flat (default json)")
	flags.String("delimiter", "", "Delimiter between repositories in flat format (default newline)")
	if err := config.BindFlags(a.Inputs, flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(a.newQueryCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
