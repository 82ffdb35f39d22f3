// Package present renders movie listings and request feedback to the terminal.
package present

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/reflow/truncate"
	"github.com/tmdb-cli/tmdb/color"
	"github.com/tmdb-cli/tmdb/icon"
	"github.com/tmdb-cli/tmdb/style"
	"github.com/tmdb-cli/tmdb/tmdb"
	"github.com/tmdb-cli/tmdb/util"
)

// Presenter writes listings to out and progress and errors to status.
type Presenter struct {
	out    io.Writer
	status io.Writer
	width  int
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithWidth truncates listing lines to the given number of columns; 0 disables truncation.
func WithWidth(width int) Option {
	return func(p *Presenter) {
		p.width = width
	}
}

// New creates a presenter.
func New(out, status io.Writer, opts ...Option) *Presenter {
	p := &Presenter{out: out, status: status}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start shows the in-flight indicator.
func (p *Presenter) Start(message string) *Progress {
	return &Progress{
		w:     p.status,
		erase: util.PrintErasable(p.status, fmt.Sprintf("%s %s", icon.Get(icon.Progress), message)),
	}
}

// Present prints the heading and at most limit ranked lines, returning how many lines were printed.
func (p *Presenter) Present(category tmdb.Category, movies []*tmdb.Movie, limit int) int {
	shown := truncated(movies, limit)

	_, _ = fmt.Fprintf(p.out, "\n%s Movies:\n\n", style.Heading(category.Heading()))
	for i, movie := range shown {
		_, _ = fmt.Fprintln(p.out, p.fit(Line(i+1, movie)))
	}
	return len(shown)
}

// Line renders one ranked entry: rank, title, star, rating and release date.
func Line(rank int, movie *tmdb.Movie) string {
	return fmt.Sprintf("%s %s (%s %s) - %s",
		style.Fg(color.Rank)(fmt.Sprintf("%d.", rank)),
		style.Bold(movie.Title),
		style.Fg(color.Star)(icon.Get(icon.Star)),
		movie.Rating(),
		style.Faint(movie.ReleaseDate),
	)
}

// Output is the document written by JSON.
type Output struct {
	Category string        `json:"category" jsonschema:"description=Provider list name, e.g. top_rated."`
	Results  []*tmdb.Movie `json:"results" jsonschema:"description=Movies in provider order, truncated to the requested limit."`
}

// JSON writes the truncated listing as a JSON document.
func (p *Presenter) JSON(category tmdb.Category, movies []*tmdb.Movie, limit int) error {
	shown := truncated(movies, limit)
	if shown == nil {
		shown = []*tmdb.Movie{}
	}

	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&Output{Category: category.String(), Results: shown})
}

// Error prints a single error line.
func (p *Presenter) Error(err error) {
	_, _ = fmt.Fprintf(p.status, "%s %s\n", style.ErrorLabel("Error:"), err)
}

func (p *Presenter) fit(line string) string {
	if p.width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(p.width), "…")
}

func truncated(movies []*tmdb.Movie, limit int) []*tmdb.Movie {
	n := util.Min(limit, len(movies))
	if n < 0 {
		n = 0
	}
	return movies[:n]
}
