// Package phrase derives natural-language phrases from test identifiers.
//
// Identifiers are split on camel-case boundaries and underscores, acronym
// runs are preserved verbatim, function words are lowercased, and object
// phrases receive an indefinite article: "DescribeCar" becomes "a Car",
// "WhenTheUserIsLoggedIn" becomes "when the User is Logged In".
package phrase

import (
	"errors"
	"strings"
	"unicode"

	"github.com/abdul-hamid-achik/respec/packages/core/classify"
)

// ErrEmptyPhrase means an identifier produced no words at all. Callers are
// expected to fall back to a cruder rendering rather than surface it.
var ErrEmptyPhrase = errors.New("phrase: identifier yields no words")

// commonWords are the function words forced to lowercase wherever the
// positional rule allows. Short particles such as "in", "out", "up" and "on"
// are deliberately absent so phrases like "Logged In" keep their casing.
var commonWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "nor": true,
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"has": true, "have": true, "had": true,
	"do": true, "does": true, "did": true,
	"will": true, "would": true, "shall": true, "should": true,
	"may": true, "might": true, "must": true,
	"can": true, "could": true,
	"of": true, "to": true, "for": true, "from": true,
	"by": true, "at": true, "with": true, "without": true,
}

// Formatter renders stripped identifiers as display phrases. The zero value
// uses the built-in common-word set; extra words may be added per instance.
type Formatter struct {
	extraCommon map[string]bool
}

// NewFormatter returns a Formatter that lowercases the built-in common words
// plus any extra words supplied by configuration.
func NewFormatter(extraCommonWords ...string) *Formatter {
	f := &Formatter{}
	if len(extraCommonWords) > 0 {
		f.extraCommon = make(map[string]bool, len(extraCommonWords))
		for _, w := range extraCommonWords {
			f.extraCommon[strings.ToLower(w)] = true
		}
	}
	return f
}

// Format turns a stripped identifier into the display phrase for its role.
// Object phrases are prefixed with "a" or "an", context roles with their
// fixed keyword. It returns ErrEmptyPhrase when no words can be derived.
func (f *Formatter) Format(stripped string, role classify.Role) (string, error) {
	words := SplitWords(stripped)
	if len(words) == 0 {
		return "", ErrEmptyPhrase
	}

	for i := range words {
		words[i] = renderWord(words[i])
	}

	// The leading article or context keyword counts as the first word of
	// the phrase, so every identifier word is eligible for common-word
	// lowercasing. Without a leading word the first identifier word keeps
	// its casing even when it is a common word.
	start := 0
	if role.Keyword() == "" && role != classify.RoleObject {
		start = 1
	}
	for i := start; i < len(words); i++ {
		if f.isCommon(words[i]) {
			words[i] = strings.ToLower(words[i])
		}
	}

	body := strings.Join(words, " ")
	switch {
	case role == classify.RoleObject:
		return article(words[0]) + " " + body, nil
	case role.Keyword() != "":
		return role.Keyword() + " " + body, nil
	}
	return body, nil
}

func (f *Formatter) isCommon(word string) bool {
	lower := strings.ToLower(word)
	return commonWords[lower] || f.extraCommon[lower]
}

// Legible is the last-resort rendering used when no role-aware phrase can be
// derived: word splitting and default capitalization only, no article and no
// common-word lowercasing.
func Legible(identifier string) string {
	words := SplitWords(identifier)
	for i := range words {
		words[i] = renderWord(words[i])
	}
	return strings.Join(words, " ")
}

// SplitWords breaks an identifier into words. Underscores separate words the
// way snake_case intends; within each run, a lowercase-to-uppercase
// transition starts a new word, as does the last capital of an uppercase run
// followed by lowercase ("HTTPSConnection" splits into "HTTPS" and
// "Connection"). Digit transitions never split.
func SplitWords(identifier string) []string {
	var words []string
	for _, chunk := range strings.FieldsFunc(identifier, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	}) {
		words = append(words, splitCamel(chunk)...)
	}
	return words
}

func splitCamel(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			words = append(words, string(runes[start:i]))
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// Boundary between an acronym run and the word it abuts.
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

// renderWord normalizes one word's casing. All-uppercase runs of two or more
// letters are acronyms and stay verbatim; words starting with a capital are
// title-cased; lowercase words are kept as written.
func renderWord(word string) string {
	if isAcronym(word) {
		return word
	}
	runes := []rune(word)
	if !unicode.IsUpper(runes[0]) {
		return word
	}
	return string(runes[0]) + strings.ToLower(string(runes[1:]))
}

func isAcronym(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// article selects the indefinite article for an object phrase by the first
// letter of its first rendered word. The article is always lowercase.
func article(firstWord string) string {
	r := unicode.ToLower([]rune(firstWord)[0])
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
