// Package cmd implements the command-line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tmdb-cli/tmdb/color"
	"github.com/tmdb-cli/tmdb/constant"
	"github.com/tmdb-cli/tmdb/credential"
	"github.com/tmdb-cli/tmdb/icon"
	"github.com/tmdb-cli/tmdb/key"
	"github.com/tmdb-cli/tmdb/listing"
	"github.com/tmdb-cli/tmdb/log"
	"github.com/tmdb-cli/tmdb/present"
	"github.com/tmdb-cli/tmdb/style"
	"github.com/tmdb-cli/tmdb/tmdb"
	"github.com/tmdb-cli/tmdb/util"
	"github.com/tmdb-cli/tmdb/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("type", "t", tmdb.DefaultKey, "Type of movies to fetch")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("type", completionTypes))

	rootCmd.Flags().StringP("limit", "l", strconv.Itoa(tmdb.DefaultLimit), "Limit the number of results")
	rootCmd.Flags().BoolP("json", "j", false, "Print the listing as a JSON document")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd fetches one movie list.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A CLI tool to fetch movie details from TMDB",
	Long: constant.Logo + "\n" +
		style.Italic(style.Fg(color.Yellow)("    - A CLI tool to fetch movie details from TMDB")) + "\n\n" +
		"Available Types:\n  - " + strings.Join(tmdb.Describe(), "\n  - "),
	Example: fmt.Sprintf("  $ %[1]s --type popular\n  $ %[1]s -t upcoming -l 5", constant.App),
	Args:    cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			return nil
		}

		c, err := newResolver(cmd.OutOrStdout()).Resolve()
		if err != nil {
			return err
		}
		cmd.SetContext(withCredential(cmd.Context(), c))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return nil
		}

		return listing.Run(cmd.Context(), &listing.Options{
			Type:       flagOrSetting(cmd, "type", key.CatalogDefaultType),
			Limit:      flagOrSetting(cmd, "limit", key.CatalogDefaultLimit),
			Credential: credentialFrom(cmd.Context()).String(),
			Fetcher:    newFetcher(),
			Presenter:  newPresenter(cmd.OutOrStdout(), cmd.ErrOrStderr()),
			JSON:       lo.Must(cmd.Flags().GetBool("json")),
		})
	},
}

// Execute processes the command line and exits non-zero on failure.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	handleErr(rootCmd.Execute())
}

type credentialKey struct{}

func withCredential(ctx context.Context, c credential.Credential) context.Context {
	return context.WithValue(ctx, credentialKey{}, c)
}

func credentialFrom(ctx context.Context) credential.Credential {
	c, _ := ctx.Value(credentialKey{}).(credential.Credential)
	return c
}

// newResolver and newFetcher are variables so the command tree can run against a scripted prompt and a fake catalog.
var (
	newResolver = func(out io.Writer) *credential.Resolver {
		return credential.NewResolver(
			credential.NewStore(where.Credentials()),
			credential.NewPrompter(),
			out,
		)
	}

	newFetcher = func() listing.Fetcher {
		return tmdb.New(
			tmdb.WithBaseURL(viper.GetString(key.CatalogBaseURL)),
			tmdb.WithLanguage(viper.GetString(key.CatalogLanguage)),
		)
	}
)

func newPresenter(out, status io.Writer) *present.Presenter {
	var opts []present.Option
	if viper.GetBool(key.CliTruncate) {
		opts = append(opts, present.WithWidth(util.TerminalWidth()))
	}
	return present.New(out, status, opts...)
}

// flagOrSetting returns the flag value when given on the command line, the configured setting otherwise.
// The raw string is kept so that validation sees exactly what the user typed.
func flagOrSetting(cmd *cobra.Command, flag, setting string) string {
	if cmd.Flags().Changed(flag) {
		return lo.Must(cmd.Flags().GetString(flag))
	}
	return viper.GetString(setting)
}

func completionTypes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if toComplete == "" {
		return tmdb.Keys(), cobra.ShellCompDirectiveNoFileComp
	}
	return fuzzy.FindFold(toComplete, tmdb.Keys()), cobra.ShellCompDirectiveNoFileComp
}

// report logs err and prints the single user-facing error line.
func report(status io.Writer, err error) {
	log.Error(err)
	present.New(io.Discard, status).Error(err)
}

func handleErr(err error) {
	if err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}
