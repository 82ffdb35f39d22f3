// Package listing runs one movie list request from raw input to rendered output.
package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmdb-cli/tmdb/log"
	"github.com/tmdb-cli/tmdb/present"
	"github.com/tmdb-cli/tmdb/tmdb"
	"github.com/tmdb-cli/tmdb/util"
)

// Fetcher retrieves one movie list.
type Fetcher interface {
	Movies(ctx context.Context, category tmdb.Category, credential string) ([]*tmdb.Movie, error)
}

// Options describes a single invocation.
type Options struct {
	// Type is the raw type key, e.g. "top".
	Type string
	// Limit is the raw limit, e.g. "5".
	Limit string
	// Credential is the resolved API key.
	Credential string
	Fetcher    Fetcher
	Presenter  *present.Presenter
	// JSON switches the output to a JSON document.
	JSON bool
}

// Run validates the input, fetches the list and renders it.
// Invalid input is rejected before anything is fetched.
func Run(ctx context.Context, options *Options) error {
	if options.Credential == "" {
		return tmdb.ErrNoCredential
	}

	params, err := tmdb.Validate(options.Type, options.Limit)
	if err != nil {
		return err
	}

	log.Infof("listing %s, limit %d", params.Category, params.Limit)

	progress := options.Presenter.Start("Fetching movies...")
	movies, err := options.Fetcher.Movies(ctx, params.Category, options.Credential)
	if err != nil {
		progress.Fail("Failed to fetch movies")
		log.Errorf("fetch %s: %v", params.Category, err)

		var unavailable *tmdb.UnavailableError
		if errors.As(err, &unavailable) && unavailable.IsUnauthorized() {
			return fmt.Errorf("%w (run `tmdb auth` to replace the stored key)", err)
		}
		return err
	}
	progress.Succeed("Movies fetched successfully!")

	if options.JSON {
		return options.Presenter.JSON(params.Category, movies, params.Limit)
	}

	shown := options.Presenter.Present(params.Category, movies, params.Limit)
	log.Infof("listed %s of %d", util.Quantify(shown, "movie", "movies"), len(movies))
	return nil
}
