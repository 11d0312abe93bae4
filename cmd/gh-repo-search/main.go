package main

import (
	"log"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/stahnma/gh-repo-search/internal/commands"
	"github.com/stahnma/gh-repo-search/internal/config"
	ghub "github.com/stahnma/gh-repo-search/internal/github"
	lambdapkg "github.com/stahnma/gh-repo-search/internal/lambda"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.FromEnvironment()

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		client, err := ghub.NewClient(cfg.GitHubToken, cfg.APIURL)
		if err != nil {
			log.Fatalf("Error initializing GitHub client: %v", err)
		}
		awslambda.Start(lambdapkg.NewHandler(cfg, client))
		return
	}

	app := commands.NewApp(cfg, GitSHA, GitDirty)
	if err := app.NewRootCommand().Execute(); err != nil {
		// Reports the failure to the workflow and exits non-zero.
		app.Action.Fatalf("%v", err)
	}
}
