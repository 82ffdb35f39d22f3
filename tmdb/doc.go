// Package tmdb queries the movie lists of The Movie Database v3 API.
//
// A listing request is described by Params, which only Validate builds:
//
//	params, err := tmdb.Validate("top", "5")
//	if err != nil {
//		return err // *CategoryError or *LimitError
//	}
//
//	movies, err := tmdb.New().Movies(ctx, params.Category, apiKey)
//	if errors.Is(err, tmdb.ErrUnavailable) {
//		// transport failure or non-success provider status
//	}
//
// The client performs exactly one GET per call. It does not retry, page or cache.
package tmdb
