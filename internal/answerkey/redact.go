package answerkey

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RedactionMarker replaces personal values in archived documents.
const RedactionMarker = "[redacted]"

// personalLabels are key-cell prefixes whose rows identify the candidate.
var personalLabels = []string{
	"registration number",
	"roll number",
	"candidate name",
	"candidate",
	"community",
	"category",
	"test center name",
	"test centre name",
	"application number",
	"dob",
	"date of birth",
	"father name",
	"mother name",
}

var (
	keepLabel    = regexp.MustCompile(`(?i)test date|test time|subject`)
	personalImg  = regexp.MustCompile(`(?i)photo|photograph|candidate|signature`)
	personalMeta = func(m Meta) []string {
		return []string{m.Name, m.RollNumber, m.Registration, m.TestCentre, m.Community}
	}
)

// Redact strips personally identifying information from a fetched answer-key
// document and returns the sanitized serialization. Rows whose key cell (td
// or th) starts with a personal-field label are removed outright, candidate photos
// and signatures are dropped, and any captured meta value longer than two
// characters is scrubbed from the remaining markup. Date, time, and subject
// rows are always preserved unchanged.
func Redact(doc *goquery.Document, meta Meta) (string, error) {
	doc.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(cell.Text()))
		if !hasPersonalLabel(label) || keepLabel.MatchString(label) {
			return
		}
		cell.NextFiltered("td").SetText(RedactionMarker)
		cell.Parent().Remove()
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		alt, _ := img.Attr("alt")
		if personalImg.MatchString(src) || personalImg.MatchString(alt) {
			img.Remove()
		}
	})

	html, err := doc.Html()
	if err != nil {
		return "", err
	}

	// Personal values repeat outside the key/value rows (headers, footers,
	// inline text), so scrub the serialized markup as well.
	for _, value := range personalMeta(meta) {
		value = strings.TrimSpace(value)
		if len(value) > 2 {
			html = strings.ReplaceAll(html, value, RedactionMarker)
		}
	}

	return html, nil
}

func hasPersonalLabel(label string) bool {
	for _, prefix := range personalLabels {
		if strings.HasPrefix(label, prefix) {
			return true
		}
	}
	return false
}
