package answerkey

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one extraction approach. Strategies are pure functions of the
// document; they are tried in priority order and never merged.
type Strategy struct {
	Name    string
	Extract func(doc *goquery.Document) []RawQuestion
}

// Strategies returns the fallback chain in priority order: structured DOM
// markup, then raw-text regex matching, then table rows.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "dom", Extract: ExtractFromDOM},
		{Name: "text", Extract: func(doc *goquery.Document) []RawQuestion {
			return ExtractFromText(doc.Text())
		}},
		{Name: "table", Extract: ExtractFromTable},
	}
}

// ExtractQuestions runs the strategy chain, returning the first non-empty
// question list and the name of the strategy that produced it.
func ExtractQuestions(doc *goquery.Document) ([]RawQuestion, string) {
	for _, strategy := range Strategies() {
		if questions := strategy.Extract(doc); len(questions) > 0 {
			return questions, strategy.Name
		}
	}
	return nil, ""
}

// ExtractFromDOM parses structured answer-key markup: one panel per question
// with a highlighted correct answer, and label/value table rows for the
// candidate's chosen option and attempt status.
func ExtractFromDOM(doc *goquery.Document) []RawQuestion {
	var questions []RawQuestion

	doc.Find("div.question-pnl").Each(func(_ int, panel *goquery.Selection) {
		section := strings.TrimSpace(panel.
			Closest(".section-cntnr").
			Find(".section-lbl .bold").
			First().
			Text())

		rightText := strings.TrimSpace(panel.Find(".rightAns").First().Text())
		chosenText := strings.TrimSpace(boldCellAfterLabel(panel, "Chosen Option").Text())
		status := strings.ToLower(strings.TrimSpace(boldCellAfterLabel(panel, "Status").Text()))

		correct := resolveOption(rightText)
		chosen := ""
		if chosenText != "--" {
			chosen = resolveOption(chosenText)
		}

		questions = append(questions, RawQuestion{
			Chosen:  chosen,
			Correct: correct,
			Status:  status,
			Section: section,
		})
	})

	return questions
}

// boldCellAfterLabel finds the first value cell whose preceding cell carries
// the given label text.
func boldCellAfterLabel(panel *goquery.Selection, label string) *goquery.Selection {
	return panel.Find("td.bold").FilterFunction(func(_ int, td *goquery.Selection) bool {
		return strings.Contains(td.Prev().Text(), label)
	}).First()
}
