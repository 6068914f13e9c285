package answerkey

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
)

// ExtractFromTable scans table rows for a header row containing "chosen" and
// "correct" cells. The matching cell positions become fixed column indices
// for every following row; rows before the header are ignored, and with no
// header at all nothing is collected. The status column is optional.
func ExtractFromTable(doc *goquery.Document) []RawQuestion {
	if len(doc.Nodes) == 0 {
		return nil
	}

	var parsed []RawQuestion
	chosenIdx, correctIdx, statusIdx := -1, -1, -1

	for _, row := range htmlquery.Find(doc.Nodes[0], "//tr") {
		cellNodes := htmlquery.Find(row, ".//th|.//td")
		if len(cellNodes) == 0 {
			continue
		}

		cells := make([]string, len(cellNodes))
		for i, cell := range cellNodes {
			cells[i] = strings.TrimSpace(htmlquery.InnerText(cell))
		}

		if chosenIdx == -1 && cellIndex(cells, "chosen") >= 0 && cellIndex(cells, "correct") >= 0 {
			chosenIdx = cellIndex(cells, "chosen")
			correctIdx = cellIndex(cells, "correct")
			statusIdx = cellIndex(cells, "status")
			continue
		}

		if chosenIdx >= 0 && len(cells) > maxIdx(chosenIdx, correctIdx) {
			q := RawQuestion{
				Chosen:  cells[chosenIdx],
				Correct: cells[correctIdx],
			}
			if statusIdx >= 0 && statusIdx < len(cells) {
				q.Status = cells[statusIdx]
			}
			parsed = append(parsed, q)
		}
	}

	return parsed
}

// cellIndex returns the position of the first cell containing the substring,
// case-insensitively, or -1.
func cellIndex(cells []string, substr string) int {
	for i, cell := range cells {
		if strings.Contains(strings.ToLower(cell), substr) {
			return i
		}
	}
	return -1
}

func maxIdx(a, b int) int {
	if a > b {
		return a
	}
	return b
}
