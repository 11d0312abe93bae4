package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stahnma/gh-repo-search/internal/config"
)

func (a *App) newQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query [flags]",
		Short: "Print the search query without calling the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := config.LoadInputs(a.Inputs)
			if err != nil {
				return err
			}
			opts, err := in.Validate()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.Query())
			return nil
		},
	}
}
