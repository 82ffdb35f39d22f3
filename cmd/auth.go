package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tmdb-cli/tmdb/color"
	"github.com/tmdb-cli/tmdb/icon"
	"github.com/tmdb-cli/tmdb/style"
	"github.com/tmdb-cli/tmdb/where"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Prompt for a TMDB API key and replace the stored one",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := newResolver(cmd.OutOrStdout()).Replace()
		handleErr(err)

		fmt.Printf(
			"%s API key saved to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Key)),
			where.Credentials(),
		)
	},
}
