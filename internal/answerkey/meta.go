package answerkey

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxExamImages caps how many header image references are captured.
const maxExamImages = 3

// ExtractMeta scans two-cell label/value rows for known candidate and exam
// fields. Labels must match exactly after trimming and lowercasing; the value
// is the adjacent cell's text. If a label repeats, the last non-empty value
// wins. Missing fields are simply left empty.
func ExtractMeta(doc *goquery.Document) Meta {
	meta := Meta{ExamImages: []string{}}

	doc.Find("td").Each(func(_ int, cell *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(cell.Text()))
		value := strings.TrimSpace(cell.NextFiltered("td").Text())
		if value == "" {
			return
		}

		switch label {
		case "registration number":
			meta.Registration = value
		case "roll number":
			meta.RollNumber = value
		case "candidate name":
			meta.Name = value
		case "community":
			meta.Community = value
		case "test center name", "test centre name":
			meta.TestCentre = value
		case "test date":
			meta.TestDate = value
		case "test time":
			meta.TestTime = value
		case "subject", "subjects":
			meta.Subject = value
		}
	})

	meta.ExamImages = ExtractImages(doc)
	return meta
}

// ExtractImages collects up to three distinct image references in document
// order. Protocol-relative URLs are normalized to https; data URIs and
// absolute URLs pass through unchanged.
func ExtractImages(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	imgs := []string{}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}

		ref := src
		if !strings.HasPrefix(src, "http") && !strings.HasPrefix(src, "data:") && strings.HasPrefix(src, "//") {
			ref = "https:" + src
		}

		if seen[ref] {
			return
		}
		seen[ref] = true
		imgs = append(imgs, ref)
	})

	if len(imgs) > maxExamImages {
		imgs = imgs[:maxExamImages]
	}
	return imgs
}
