package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const tokenTrimCutset = `"'.,!?;:()[]{}<>¿।`

// normalizeQuery is the single entry normalization: trim and lowercase.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func containsAny(query string, cues []string) bool {
	for _, cue := range cues {
		cue = strings.ToLower(strings.TrimSpace(cue))
		if cue == "" {
			continue
		}
		if strings.Contains(query, cue) {
			return true
		}
	}
	return false
}

// stripPhrases removes every occurrence of the given phrases from the query,
// leaving whitespace so the remaining words still tokenize cleanly.
func stripPhrases(query string, phrases []string) string {
	out := query
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		out = strings.ReplaceAll(out, phrase, " ")
	}
	return out
}

// tokenize splits on whitespace, trims stray punctuation, and keeps tokens
// of at least minRunes runes that are not in the stop set. Tokens are
// deduplicated preserving first occurrence. Rune counting matters here:
// Devanagari tokens are multi-byte and must not be dropped by byte length.
func tokenize(query string, minRunes int, stop map[string]struct{}) []string {
	parts := strings.FieldsFunc(query, unicode.IsSpace)
	out := make([]string, 0, len(parts))
	seen := map[string]struct{}{}
	for _, part := range parts {
		token := strings.Trim(strings.TrimSpace(part), tokenTrimCutset)
		if utf8.RuneCountInString(token) < minRunes {
			continue
		}
		if stop != nil {
			if _, blocked := stop[token]; blocked {
				continue
			}
		}
		if _, exists := seen[token]; exists {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

func stopSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}
