package constant

// Catalog provider defaults.
const (
	// ProviderBaseURL is the movie collection root of the TMDB v3 API.
	ProviderBaseURL = "https://api.themoviedb.org/3/movie"

	// ProviderLanguage is the locale tag sent with every catalog request.
	ProviderLanguage = "en-US"
)
