package tmdb

import (
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Limit bounds and the limit used when none is given.
const (
	MinLimit     = 1
	MaxLimit     = 20
	DefaultLimit = 10
)

// DefaultKey is the type key used when none is given.
const DefaultKey = "popular"

// Params is a validated listing request.
type Params struct {
	Category Category
	Limit    int
}

// Validate turns raw user input into Params.
// The type key is checked first; a limit that does not parse as an integer is rejected rather than defaulted.
func Validate(rawType, rawLimit string) (Params, error) {
	category, ok := Lookup(strings.TrimSpace(rawType))
	if !ok {
		return Params{}, &CategoryError{Input: rawType, Closest: closestKey(rawType)}
	}

	limit, err := ParseLimit(rawLimit)
	if err != nil {
		return Params{}, err
	}

	return Params{Category: category, Limit: limit}, nil
}

// ParseLimit parses a limit and checks it lies within [MinLimit, MaxLimit].
func ParseLimit(raw string) (int, error) {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < MinLimit || limit > MaxLimit {
		return 0, &LimitError{Input: raw}
	}
	return limit, nil
}

// closestKey suggests a type key for typos; inputs too far from every key get no suggestion.
func closestKey(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	closest := lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(input, a) < levenshtein.Distance(input, b)
	})

	if levenshtein.Distance(input, closest) > len(closest)/2 {
		return ""
	}
	return closest
}
