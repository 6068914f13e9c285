package answerkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const candidateHeaderHTML = `
<table>
	<tr><td>Roll Number</td><td>220045678</td></tr>
	<tr><td>Candidate Name</td><td>John Doe</td></tr>
	<tr><td>Registration Number</td><td>REG-9981</td></tr>
	<tr><td>Test Centre Name</td><td>Central School Hall</td></tr>
	<tr><td>Test Date</td><td>01/03/2024</td></tr>
	<tr><td>Test Time</td><td>9:00 AM - 12:00 PM</td></tr>
	<tr><td>Subject</td><td>General Studies</td></tr>
	<tr><td>Community</td><td>OBC</td></tr>
</table>`

// TestExtractMeta tests label/value extraction from header rows
func TestExtractMeta(t *testing.T) {
	doc := parseDoc(t, candidateHeaderHTML)

	meta := ExtractMeta(doc)

	assert.Equal(t, "220045678", meta.RollNumber)
	assert.Equal(t, "John Doe", meta.Name)
	assert.Equal(t, "REG-9981", meta.Registration)
	assert.Equal(t, "Central School Hall", meta.TestCentre)
	assert.Equal(t, "01/03/2024", meta.TestDate)
	assert.Equal(t, "9:00 AM - 12:00 PM", meta.TestTime)
	assert.Equal(t, "General Studies", meta.Subject)
	assert.Equal(t, "OBC", meta.Community)
}

// TestExtractMetaMissingFields tests that absent fields stay empty
func TestExtractMetaMissingFields(t *testing.T) {
	doc := parseDoc(t, `<table><tr><td>Test Date</td><td>01/03/2024</td></tr></table>`)

	meta := ExtractMeta(doc)

	assert.Equal(t, "01/03/2024", meta.TestDate)
	assert.Empty(t, meta.Name)
	assert.Empty(t, meta.Subject)
	assert.NotNil(t, meta.ExamImages)
	assert.Empty(t, meta.ExamImages)
}

// TestExtractMetaLastValueWins tests the repeated-label rule
func TestExtractMetaLastValueWins(t *testing.T) {
	doc := parseDoc(t, `
		<table>
			<tr><td>Subject</td><td>Paper I</td></tr>
			<tr><td>Subjects</td><td>Paper II</td></tr>
			<tr><td>Subject</td><td></td></tr>
		</table>`)

	meta := ExtractMeta(doc)
	assert.Equal(t, "Paper II", meta.Subject)
}

// TestExtractImages tests image capture, normalization, dedup and the cap
func TestExtractImages(t *testing.T) {
	doc := parseDoc(t, `
		<img src="//cdn.example.org/logo.png">
		<img src="//cdn.example.org/logo.png">
		<img src="https://example.org/banner.jpg">
		<img src="data:image/png;base64,AAAA">
		<img src="https://example.org/extra.jpg">`)

	images := ExtractImages(doc)

	assert.Equal(t, []string{
		"https://cdn.example.org/logo.png",
		"https://example.org/banner.jpg",
		"data:image/png;base64,AAAA",
	}, images)
}
