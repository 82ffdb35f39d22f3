package cmd

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/tmdb-cli/tmdb/config"
	"github.com/tmdb-cli/tmdb/credential"
	"github.com/tmdb-cli/tmdb/filesystem"
	"github.com/tmdb-cli/tmdb/key"
	"github.com/tmdb-cli/tmdb/tmdb"
	"github.com/tmdb-cli/tmdb/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestFlagOrSetting(t *testing.T) {
	Convey("Given the listing flags", t, func() {
		So(config.Setup(), ShouldBeNil)

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("limit", "10", "")
		cmd.Flags().String("type", "popular", "")

		Convey("When no flag is given the configured default is used", func() {
			So(flagOrSetting(cmd, "limit", key.CatalogDefaultLimit), ShouldEqual, "10")
			So(flagOrSetting(cmd, "type", key.CatalogDefaultType), ShouldEqual, "popular")
		})

		Convey("When a flag is given its raw text is kept", func() {
			So(cmd.Flags().Set("limit", "abc"), ShouldBeNil)
			So(cmd.Flags().Set("type", "Top"), ShouldBeNil)
			So(flagOrSetting(cmd, "limit", key.CatalogDefaultLimit), ShouldEqual, "abc")
			So(flagOrSetting(cmd, "type", key.CatalogDefaultType), ShouldEqual, "Top")
		})
	})
}

func TestParseSetting(t *testing.T) {
	Convey("Given config set values", t, func() {
		Convey("The default type must be a known key", func() {
			v, err := parseSetting(key.CatalogDefaultType, "upcoming")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "upcoming")

			_, err = parseSetting(key.CatalogDefaultType, "trending")
			So(errors.Is(err, tmdb.ErrUnknownCategory), ShouldBeTrue)
		})

		Convey("The default limit must be within range", func() {
			v, err := parseSetting(key.CatalogDefaultLimit, "20")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 20)

			_, err = parseSetting(key.CatalogDefaultLimit, "21")
			So(errors.Is(err, tmdb.ErrLimitOutOfRange), ShouldBeTrue)
		})

		Convey("The icons variant must be registered", func() {
			v, err := parseSetting(key.IconsVariant, "emoji")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "emoji")

			_, err = parseSetting(key.IconsVariant, "bogus")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "plain")
		})

		Convey("Booleans are parsed", func() {
			v, err := parseSetting(key.LogsWrite, "true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = parseSetting(key.LogsWrite, "maybe")
			So(err, ShouldNotBeNil)
		})

		Convey("Strings pass through", func() {
			v, err := parseSetting(key.CatalogLanguage, "de-DE")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "de-DE")
		})
	})
}

func TestCompletionTypes(t *testing.T) {
	Convey("Type completion", t, func() {
		Convey("Offers every key for empty input", func() {
			keys, _ := completionTypes(nil, nil, "")
			So(keys, ShouldResemble, tmdb.Keys())
		})

		Convey("Matches fuzzily", func() {
			keys, _ := completionTypes(nil, nil, "upc")
			So(keys, ShouldResemble, []string{"upcoming"})
		})
	})
}

func TestCredentialContext(t *testing.T) {
	Convey("A resolved credential travels through the command context", t, func() {
		ctx := withCredential(context.Background(), credential.Credential("abc123"))
		So(credentialFrom(ctx), ShouldEqual, credential.Credential("abc123"))
		So(credentialFrom(context.Background()), ShouldEqual, credential.Credential(""))
	})
}

func TestExposedEnv(t *testing.T) {
	Convey("Exposed environment variables", t, func() {
		names := exposedEnv()

		So(names, ShouldContain, "TMDB_CATALOG_DEFAULT_TYPE")
		So(names, ShouldContain, "TMDB_LOGS_WRITE")
		So(names, ShouldContain, where.EnvConfigPath)
		So(len(names), ShouldEqual, len(config.EnvExposed)+1)
	})
}

func TestSubcommands(t *testing.T) {
	Convey("The root command registers its subcommands", t, func() {
		for _, name := range []string{"auth", "config", "env", "where", "clear", "schema", "version"} {
			c, _, err := rootCmd.Find([]string{name})
			So(err, ShouldBeNil)
			So(c.Name(), ShouldEqual, name)
		}
	})
}
