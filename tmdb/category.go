package tmdb

import (
	"strings"
)

// Category is the provider endpoint segment of a movie list.
type Category string

const (
	NowPlaying Category = "now_playing"
	Popular    Category = "popular"
	TopRated   Category = "top_rated"
	Upcoming   Category = "upcoming"
)

// categoryKey pairs a user-facing type key with its provider segment.
type categoryKey struct {
	key         string
	category    Category
	description string
}

// categoryKeys is ordered as listed in help and error text.
var categoryKeys = []categoryKey{
	{"playing", NowPlaying, "Now Playing"},
	{"popular", Popular, "Popular Movies"},
	{"top", TopRated, "Top Rated"},
	{"upcoming", Upcoming, "Upcoming Movies"},
}

// Keys returns the accepted type keys.
func Keys() []string {
	keys := make([]string, len(categoryKeys))
	for i, c := range categoryKeys {
		keys[i] = c.key
	}
	return keys
}

// Describe returns the help line of every type key, e.g. "playing   (Now Playing)".
func Describe() []string {
	lines := make([]string, len(categoryKeys))
	for i, c := range categoryKeys {
		lines[i] = c.key + strings.Repeat(" ", 10-len(c.key)) + "(" + c.description + ")"
	}
	return lines
}

// Lookup maps a type key to its category, ignoring case.
func Lookup(key string) (Category, bool) {
	for _, c := range categoryKeys {
		if strings.EqualFold(c.key, key) {
			return c.category, true
		}
	}
	return "", false
}

// Heading is the human-readable list name, e.g. "TOP RATED".
func (c Category) Heading() string {
	return strings.ToUpper(strings.ReplaceAll(string(c), "_", " "))
}

func (c Category) String() string {
	return string(c)
}
