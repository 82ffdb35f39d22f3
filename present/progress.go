package present

import (
	"fmt"
	"io"

	"github.com/tmdb-cli/tmdb/color"
	"github.com/tmdb-cli/tmdb/icon"
	"github.com/tmdb-cli/tmdb/style"
)

// Progress is a one-shot in-flight indicator that settles into exactly one terminal state.
type Progress struct {
	w     io.Writer
	erase func()
	done  bool
}

// Succeed replaces the indicator with a success line.
func (p *Progress) Succeed(message string) {
	p.settle(style.Fg(color.Rank)(icon.Get(icon.Success)), message)
}

// Fail replaces the indicator with a failure line.
func (p *Progress) Fail(message string) {
	p.settle(style.Fg(color.Failure)(icon.Get(icon.Fail)), message)
}

// Done reports whether the indicator has settled.
func (p *Progress) Done() bool {
	return p.done
}

func (p *Progress) settle(symbol, message string) {
	if p.done {
		return
	}
	p.done = true
	p.erase()
	_, _ = fmt.Fprintf(p.w, "%s %s\n", symbol, message)
}
