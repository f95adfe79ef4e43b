// README: Turkish case-suffix stripping; ablative marks origin, dative marks destination.
package nlp

import "strings"

// minStemLen is the shortest stem stripping may leave. Anything shorter can
// never match a dictionary entry ("van" is the shortest province).
const minStemLen = 3

// SuffixResult is the outcome of one stripping attempt. When neither flag is
// set the token carried no recognizable directional suffix.
type SuffixResult struct {
	Stem          string
	IsOrigin      bool
	IsDestination bool
}

// Longest suffix first: "-ndan" must win over "-dan", "-dan" over "-a".
// Ablative (from): origin. Dative (to): destination.
var ablativeSuffixes = []string{"ndan", "nden", "dan", "den", "tan", "ten"}
var dativeSuffixes = []string{"ya", "ye", "na", "ne", "a", "e"}

// StripSuffix returns the first viable split. Stripping is a heuristic:
// callers that can resolve stems should walk SplitCandidates instead of
// trusting the single best guess.
func StripSuffix(token string) SuffixResult {
	return SplitCandidates(token)[0]
}

// SplitCandidates returns every viable suffix split for a token, longest
// suffix first, ending with the whole token unmarked. Only resolution can
// decide which split was right: "mardinden" is "mardi"+"nden" by length but
// "mardin"+"den" in fact, and "bursa" carries no suffix at all despite
// ending in a dative vowel.
func SplitCandidates(token string) []SuffixResult {
	var out []SuffixResult
	for _, suf := range ablativeSuffixes {
		if stem, ok := strip(token, suf); ok {
			out = append(out, SuffixResult{Stem: stem, IsOrigin: true})
		}
	}
	for _, suf := range dativeSuffixes {
		if stem, ok := strip(token, suf); ok {
			out = append(out, SuffixResult{Stem: stem, IsDestination: true})
		}
	}
	return append(out, SuffixResult{Stem: token})
}

func strip(token, suffix string) (string, bool) {
	if !strings.HasSuffix(token, suffix) {
		return "", false
	}
	stem := token[:len(token)-len(suffix)]
	if len(stem) < minStemLen {
		return "", false
	}
	return stem, true
}

var turkishASCII = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "I", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Normalize lowercases and folds Turkish letters to ASCII for dictionary
// matching. Display strings elsewhere keep their original spelling.
// Dotted/dotless i must be folded before ToLower: strings.ToLower("İ")
// produces a combining mark, not "i".
func Normalize(s string) string {
	return strings.ToLower(turkishASCII.Replace(s))
}

// CleanToken strips punctuation drivers type around place names, including
// the apostrophe in "kayseri'den".
func CleanToken(tok string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '’', '`', '"', '.', ',', '!', '?', ';', ':', '(', ')', '-', '*', '>', '<':
			return -1
		}
		return r
	}, tok)
}
