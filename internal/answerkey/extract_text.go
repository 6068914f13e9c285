package answerkey

import (
	"regexp"
	"strings"
)

var (
	questionMarker = regexp.MustCompile(`(?i)Question\s*(?:ID|No\.?)\s*[:\-]`)
	chosenPattern  = regexp.MustCompile(`(?i)Chosen\s*Option\s*:\s*([A-Za-z0-9\-]+)`)
	correctPattern = regexp.MustCompile(`(?i)Correct\s*Option\s*:\s*([A-Za-z0-9\-]+)`)
	statusPattern  = regexp.MustCompile(`(?i)Status\s*:\s*([^\n\r]+)`)
)

// ExtractFromText is the last-resort strategy, operating on the page's plain
// text. It splits the text at question boundary markers ("Question ID:",
// "Question No:") and matches chosen/correct/status lines within each block.
// A block contributes a record only if at least one of the three is present.
//
// When the boundary marker never appears, all chosen/correct/status matches
// are collected globally and zipped positionally up to the longest sequence.
// This zip is best-effort: mismatched counts silently misalign records.
func ExtractFromText(text string) []RawQuestion {
	var parsed []RawQuestion

	blocks := questionMarker.Split(text, -1)
	for _, block := range blocks[1:] {
		var q RawQuestion
		found := false

		if m := chosenPattern.FindStringSubmatch(block); m != nil {
			q.Chosen = m[1]
			found = true
		}
		if m := correctPattern.FindStringSubmatch(block); m != nil {
			q.Correct = m[1]
			found = true
		}
		if m := statusPattern.FindStringSubmatch(block); m != nil {
			q.Status = strings.TrimSpace(m[1])
			found = true
		}

		if found {
			parsed = append(parsed, q)
		}
	}

	if len(parsed) > 0 {
		return parsed
	}

	chosens := chosenPattern.FindAllStringSubmatch(text, -1)
	corrects := correctPattern.FindAllStringSubmatch(text, -1)
	statuses := statusPattern.FindAllStringSubmatch(text, -1)

	count := len(chosens)
	if len(corrects) > count {
		count = len(corrects)
	}
	if len(statuses) > count {
		count = len(statuses)
	}

	for i := 0; i < count; i++ {
		var q RawQuestion
		if i < len(chosens) {
			q.Chosen = chosens[i][1]
		}
		if i < len(corrects) {
			q.Correct = corrects[i][1]
		}
		if i < len(statuses) {
			q.Status = strings.TrimSpace(statuses[i][1])
		}
		parsed = append(parsed, q)
	}

	return parsed
}
