package sema

import (
	"sort"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
)

// suggestAsciiShorthand reports whether name is a close misspelling of one
// of the ascii_* class shorthands (e.g. a stray capital or missing
// underscore sends it down the Unicode-property path instead of being
// recognized as a shorthand in the parser), returning the shorthand's name
// and its human-readable gloss from ast.AsciiShorthandDescriptions.
func suggestAsciiShorthand(name string) (kind ast.AsciiShorthandKind, desc string, ok bool) {
	names := make([]string, 0, len(ast.AsciiShorthandDescriptions))
	for k := range ast.AsciiShorthandDescriptions {
		names = append(names, string(k))
	}
	sort.Strings(names)
	guess := suggestClosest(name, names)
	if guess == "" {
		return "", "", false
	}
	k := ast.AsciiShorthandKind(guess)
	return k, ast.AsciiShorthandDescriptions[k], true
}

// suggestClosest returns the candidate closest to name by Levenshtein
// distance, for the "did you mean ...?" help text on an unrecognized
// Unicode property name. An empty string means nothing in candidates is
// close enough to be useful.
func suggestClosest(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein(name, c)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	maxUseful := len(name)/2 + 1
	if bestDist < 0 || bestDist > maxUseful {
		return ""
	}
	return best
}

func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	prev := make([]int, len(br)+1)
	cur := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		cur[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(br)]
}
