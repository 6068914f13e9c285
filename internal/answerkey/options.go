package answerkey

import (
	"regexp"
	"strings"
)

var (
	optionWord = regexp.MustCompile(`(?i)option`)
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// "1." / "2)" / "3-" style prefixes, as rendered next to the marked
	// correct answer on structured pages.
	digitPrefix  = regexp.MustCompile(`^\s*([1-4])[\s.)-]`)
	letterPrefix = regexp.MustCompile(`(?i)^\s*([A-D])`)
)

// NormalizeOption canonicalizes any textual representation of an answer
// option into one of A-D, or "" for blank. It strips the word "option" and
// all punctuation, uppercases, and maps the digits 1-4 onto A-D. Unknown
// values pass through uppercased. Pure and total.
func NormalizeOption(raw string) string {
	cleaned := optionWord.ReplaceAllString(raw, "")
	cleaned = nonAlnum.ReplaceAllString(cleaned, "")
	cleaned = strings.ToUpper(cleaned)

	switch cleaned {
	case "1":
		return "A"
	case "2":
		return "B"
	case "3":
		return "C"
	case "4":
		return "D"
	}
	return cleaned
}

// optionLetter resolves a leading "1." / "1)" / "1-" digit prefix, or a
// leading A-D letter, into an option letter. Returns "" when neither rule
// matches; callers fall back to NormalizeOption.
func optionLetter(text string) string {
	if m := digitPrefix.FindStringSubmatch(text); m != nil {
		return string('A' + m[1][0] - '1')
	}
	if m := letterPrefix.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

// resolveOption applies the two-step prefix rule with the normalizer as a
// secondary attempt.
func resolveOption(text string) string {
	if letter := optionLetter(text); letter != "" {
		return letter
	}
	return NormalizeOption(text)
}
