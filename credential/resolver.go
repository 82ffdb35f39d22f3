package credential

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/mo"
	"github.com/tmdb-cli/tmdb/color"
	"github.com/tmdb-cli/tmdb/log"
	"github.com/tmdb-cli/tmdb/style"
)

const (
	advisory = "No API key found. Please enter your TMDB API key:"
	question = "API Key:"
)

// Resolver produces the credential, prompting only when none is stored.
type Resolver struct {
	store    *Store
	prompter Prompter
	out      io.Writer
	resolved mo.Option[Credential]
}

// NewResolver wires a resolver; the advisory line is written to out.
func NewResolver(store *Store, prompter Prompter, out io.Writer) *Resolver {
	return &Resolver{
		store:    store,
		prompter: prompter,
		out:      out,
		resolved: mo.None[Credential](),
	}
}

// Resolve returns the stored credential, or prompts for one and stores it.
// After the first success it returns the same value without any I/O.
func (r *Resolver) Resolve() (Credential, error) {
	if c, ok := r.resolved.Get(); ok {
		return c, nil
	}

	stored, err := r.store.Load()
	if err != nil {
		return "", err
	}

	if c, ok := stored.Get(); ok {
		r.resolved = mo.Some(c)
		return c, nil
	}

	_, _ = fmt.Fprintln(r.out, style.Fg(color.Warning)(advisory))
	return r.ask()
}

// Replace always prompts and overwrites the stored credential.
func (r *Resolver) Replace() (Credential, error) {
	return r.ask()
}

func (r *Resolver) ask() (Credential, error) {
	answer, err := r.prompter.Ask(question)
	if err != nil {
		return "", fmt.Errorf("prompt for API key: %w", err)
	}

	c := Credential(strings.TrimSpace(answer))
	if c == "" {
		return "", ErrEmptyCredential
	}

	if err := r.store.Save(c); err != nil {
		return "", err
	}
	log.Infof("API key saved to %s", r.store.Path())

	r.resolved = mo.Some(c)
	return c, nil
}
