package tmdb

import "strconv"

// Movie is one record of a movie list, decoded as the provider returns it.
type Movie struct {
	ID            int     `json:"id" jsonschema:"description=TMDB identifier of the movie."`
	Title         string  `json:"title" jsonschema:"description=Localized title."`
	OriginalTitle string  `json:"original_title,omitempty" jsonschema:"description=Title in the original language."`
	Overview      string  `json:"overview,omitempty" jsonschema:"description=Plot summary."`
	ReleaseDate   string  `json:"release_date" jsonschema:"description=Release date as YYYY-MM-DD or empty."`
	VoteAverage   float64 `json:"vote_average" jsonschema:"description=Average user rating from 0 to 10."`
	VoteCount     int     `json:"vote_count,omitempty" jsonschema:"description=Number of votes behind the average."`
	Popularity    float64 `json:"popularity,omitempty" jsonschema:"description=Provider popularity score."`
}

// Rating formats the vote average in its shortest exact form, without rounding.
func (m *Movie) Rating() string {
	return strconv.FormatFloat(m.VoteAverage, 'f', -1, 64)
}

// listResponse is the body of a movie list endpoint, including the error fields.
// Results is nil when the body has no results array.
type listResponse struct {
	Page          int       `json:"page"`
	Results       *[]*Movie `json:"results"`
	StatusCode    int       `json:"status_code"`
	StatusMessage string    `json:"status_message"`
}
