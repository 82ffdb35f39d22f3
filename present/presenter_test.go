package present

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tmdb-cli/tmdb/key"
	"github.com/tmdb-cli/tmdb/tmdb"
)

func init() {
	viper.Set(key.IconsVariant, "plain")
}

func movies(n int) []*tmdb.Movie {
	list := make([]*tmdb.Movie, n)
	for i := range list {
		list[i] = &tmdb.Movie{
			ID:          i + 1,
			Title:       fmt.Sprintf("Movie %d", i+1),
			VoteAverage: 8.125,
			ReleaseDate: "2024-05-17",
		}
	}
	return list
}

func TestPresent(t *testing.T) {
	Convey("Given a presenter", t, func() {
		var out, status bytes.Buffer
		p := New(&out, &status)

		Convey("With more results than the limit", func() {
			n := p.Present(tmdb.Popular, movies(15), 10)

			Convey("Exactly limit lines are printed", func() {
				So(n, ShouldEqual, 10)
				So(strings.Count(out.String(), "\n"), ShouldEqual, 3+10)
				So(out.String(), ShouldContainSubstring, "10. ")
				So(out.String(), ShouldNotContainSubstring, "Movie 11")
			})
		})

		Convey("With fewer results than the limit", func() {
			n := p.Present(tmdb.Popular, movies(3), 10)

			So(n, ShouldEqual, 3)
			So(strings.Count(out.String(), "\n"), ShouldEqual, 3+3)
		})

		Convey("With no results", func() {
			So(p.Present(tmdb.Upcoming, nil, 10), ShouldEqual, 0)
			So(out.String(), ShouldContainSubstring, "UPCOMING")
		})

		Convey("The heading names the category", func() {
			p.Present(tmdb.TopRated, movies(5), 5)
			So(out.String(), ShouldContainSubstring, "TOP RATED")
			So(out.String(), ShouldContainSubstring, " Movies:")
		})

		Convey("Progress and errors go to the status writer", func() {
			p.Error(errors.New("Invalid API key"))
			So(out.Len(), ShouldEqual, 0)
			So(status.String(), ShouldContainSubstring, "Error:")
			So(status.String(), ShouldContainSubstring, "Invalid API key")
		})
	})
}

func TestLine(t *testing.T) {
	Convey("Line", t, func() {
		line := Line(2, &tmdb.Movie{Title: "Dune: Part Two", VoteAverage: 8.2, ReleaseDate: "2024-02-27"})

		So(line, ShouldContainSubstring, "2.")
		So(line, ShouldContainSubstring, "Dune: Part Two")
		So(line, ShouldContainSubstring, "★")
		So(line, ShouldContainSubstring, "8.2")
		So(line, ShouldContainSubstring, "2024-02-27")

		Convey("Keeps the rating and date as provided", func() {
			line := Line(1, &tmdb.Movie{Title: "X", VoteAverage: 7, ReleaseDate: ""})
			So(line, ShouldContainSubstring, " 7)")
			So(line, ShouldNotContainSubstring, "7.0")
		})

		Convey("Keeps the star under an unknown icon variant", func() {
			viper.Set(key.IconsVariant, "bogus")
			defer viper.Set(key.IconsVariant, "plain")

			line := Line(1, &tmdb.Movie{Title: "X", VoteAverage: 7.5, ReleaseDate: "2024-01-01"})
			So(line, ShouldContainSubstring, "★ 7.5")
		})
	})
}

func TestWidth(t *testing.T) {
	Convey("Given a narrow terminal", t, func() {
		var out bytes.Buffer
		p := New(&out, &bytes.Buffer{}, WithWidth(12))

		p.Present(tmdb.Popular, []*tmdb.Movie{{Title: "An Extremely Long Title", VoteAverage: 6.5, ReleaseDate: "2023-01-01"}}, 1)

		So(out.String(), ShouldNotContainSubstring, "2023-01-01")
		So(out.String(), ShouldContainSubstring, "…")
	})
}

func TestJSON(t *testing.T) {
	Convey("JSON", t, func() {
		var out bytes.Buffer
		p := New(&out, &bytes.Buffer{})

		Convey("Writes the truncated listing", func() {
			So(p.JSON(tmdb.TopRated, movies(15), 5), ShouldBeNil)

			var doc Output
			So(json.Unmarshal(out.Bytes(), &doc), ShouldBeNil)
			So(doc.Category, ShouldEqual, "top_rated")
			So(doc.Results, ShouldHaveLength, 5)
			So(doc.Results[0].Title, ShouldEqual, "Movie 1")
		})

		Convey("Writes an empty array for no results", func() {
			So(p.JSON(tmdb.Popular, nil, 5), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `"results": []`)
		})
	})
}

func TestProgress(t *testing.T) {
	Convey("Given a started progress indicator", t, func() {
		var status bytes.Buffer
		progress := New(&bytes.Buffer{}, &status).Start("Fetching movies...")

		So(status.String(), ShouldContainSubstring, "Fetching movies...")
		So(progress.Done(), ShouldBeFalse)

		Convey("It settles exactly once", func() {
			progress.Succeed("Movies fetched successfully!")
			progress.Fail("Failed to fetch movies")

			So(progress.Done(), ShouldBeTrue)
			So(status.String(), ShouldContainSubstring, "Movies fetched successfully!")
			So(status.String(), ShouldNotContainSubstring, "Failed to fetch movies")
		})

		Convey("It can fail", func() {
			progress.Fail("Failed to fetch movies")
			So(status.String(), ShouldContainSubstring, "Failed to fetch movies")
			So(strings.Count(status.String(), "\n"), ShouldEqual, 1)
		})
	})
}
