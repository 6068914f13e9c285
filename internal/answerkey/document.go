package answerkey

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// MaxDocumentSize limits HTML input to 10MB to prevent memory exhaustion.
const MaxDocumentSize = 10 * 1024 * 1024

// ValidateHTML checks HTML size and returns an error if empty or too large.
func ValidateHTML(html string) error {
	if len(html) == 0 {
		return fmt.Errorf("html content required")
	}
	if len(html) > MaxDocumentSize {
		return fmt.Errorf("html exceeds maximum size of %d bytes", MaxDocumentSize)
	}
	return nil
}

// DetectCharset detects and returns the charset of HTML bytes.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadHTML parses HTML with automatic charset detection. Published answer
// keys are occasionally served in legacy encodings without a charset header.
func LoadHTML(htmlStr string) (*goquery.Document, error) {
	if err := ValidateHTML(htmlStr); err != nil {
		return nil, err
	}

	data := []byte(htmlStr)
	detected := DetectCharset(data)

	utf8Reader, err := charset.NewReader(bytes.NewReader(data), detected)
	if err != nil {
		// Fallback to direct parsing
		return goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	}

	return goquery.NewDocumentFromReader(utf8Reader)
}
