package answerkey

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DetectSections finds section containers in document order. A section's
// name comes from its label element, or "Section N" when the label is
// missing; its question count is the number of question panels it encloses.
// Sections without questions are dropped.
func DetectSections(doc *goquery.Document) []SectionInfo {
	var sections []SectionInfo

	doc.Find(".section-cntnr").Each(func(i int, container *goquery.Selection) {
		name := strings.TrimSpace(container.Find(".section-lbl .bold").First().Text())
		if name == "" {
			name = fmt.Sprintf("Section %d", i+1)
		}
		count := container.Find(".question-pnl").Length()
		if count > 0 {
			sections = append(sections, SectionInfo{Name: name, Questions: count})
		}
	})

	return sections
}

// AssignSections stamps section names onto the question list by walking both
// sequences in lock-step: each section claims its declared number of
// questions. Count mismatches degrade leniently rather than erroring: extra
// sections go unused, and leftover questions keep their own section label or
// fall back to the first section's name ("Overall" when none exist).
func AssignSections(questions []RawQuestion, sections []SectionInfo) []RawQuestion {
	if len(sections) == 0 || len(questions) == 0 {
		return questions
	}

	out := make([]RawQuestion, len(questions))
	copy(out, questions)

	idx := 0
	for _, sec := range sections {
		for i := 0; i < sec.Questions && idx < len(out); i++ {
			out[idx].Section = sec.Name
			idx++
		}
	}

	for i := range out {
		if out[i].Section == "" {
			out[i].Section = sections[0].Name
		}
	}
	return out
}
