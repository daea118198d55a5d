package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/deepnoodle-ai/except/exception"
)

// MaxSuggestionDistance is the largest edit distance at which a kind name is
// still offered as a correction.
const MaxSuggestionDistance = 3

// MaxSuggestions caps the number of kinds named in one hint.
const MaxSuggestions = 3

// Suggestion is a kind whose name is close to a misspelled one.
type Suggestion struct {
	Kind     exception.Kind
	Distance int
}

// SuggestKinds ranks the kinds whose names are within editing distance of
// name, closest first and then in declaration order. The name is normalized
// as exception.ParseKind does, so an exact match is never suggested. The
// catch-all kind is only a candidate when catchAll is set.
func SuggestKinds(name string, catchAll bool) []Suggestion {
	name = exception.Normalize(name)
	if name == "" {
		return nil
	}
	candidates := exception.Kinds()
	if catchAll {
		candidates = append(candidates, exception.Any)
	}

	limit := distanceLimit(name)
	var suggestions []Suggestion
	for _, k := range candidates {
		d := levenshtein.ComputeDistance(name, k.String())
		if d == 0 || d > limit {
			continue
		}
		suggestions = append(suggestions, Suggestion{Kind: k, Distance: d})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Distance < suggestions[j].Distance
	})
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// Short names tolerate fewer edits, otherwise "any" would match every
// three letter typo.
func distanceLimit(name string) int {
	switch n := len(name); {
	case n <= 3:
		return 1
	case n <= 5:
		return 2
	}
	return MaxSuggestionDistance
}

// SuggestKind returns a hint naming the kinds closest to a misspelled name,
// or an empty string if none are close enough.
func SuggestKind(name string, catchAll bool) string {
	suggestions := SuggestKinds(name, catchAll)
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("did you mean %s?", suggestions[0].Kind)
	}
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Kind.String()
	}
	return "did you mean one of " + strings.Join(names, ", ") + "?"
}
