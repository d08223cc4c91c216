package safety

import "regexp"

type redactionRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Queries that fall through to the remote assistant can carry personal
// details ("email me at ...", "call 555-0100 when it's back"). Those never
// matter to a catalog question, so they are scrubbed before the prompt
// leaves the machine. The local rule engine sees the original text.
var personalDataRules = []redactionRule{
	{
		pattern:     regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`),
		replacement: `<email>`,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\+?\d[\d\s().-]{7,}\d`),
		replacement: `<phone>`,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(order|invoice|customer)\s*(number|no\.?|#)\s*[:#]?\s*\d+`),
		replacement: `$1 $2 <redacted>`,
	},
}

// RedactPrompt scrubs personal contact details from free-form text bound for
// the remote assistant.
func RedactPrompt(input string) string {
	redacted := input
	for _, rule := range personalDataRules {
		redacted = rule.pattern.ReplaceAllString(redacted, rule.replacement)
	}
	return redacted
}
