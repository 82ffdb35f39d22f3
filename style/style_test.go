package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tmdb-cli/tmdb/color"
)

func TestRenderers(t *testing.T) {
	Convey("Given a plain string", t, func() {
		s := "Dune: Part Two"

		Convey("Every renderer keeps the text intact", func() {
			for _, render := range []func(string) string{
				Faint, Bold, Italic, Heading, ErrorLabel, Fg(color.Green),
			} {
				So(render(s), ShouldContainSubstring, s)
			}
		})
	})
}
