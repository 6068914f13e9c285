package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSlugify tests lowercasing and hyphen collapsing
func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"General Studies", "general-studies"},
		{"01/03/2024", "01-03-2024"},
		{"9:00 AM - 12:00 PM", "9-00-am-12-00-pm"},
		{"  spaced  out  ", "spaced-out"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}

	// Long values are capped
	assert.Len(t, Slugify(strings.Repeat("a", 200)), 80)
}

// TestFilenameFor tests exam-slot naming and the URL-hash fallback
func TestFilenameFor(t *testing.T) {
	name := FilenameFor("General Studies", "01/03/2024", "9:00 AM", "https://example.org/key")
	assert.Equal(t, "exam-general-studies-01-03-2024-9-00-am.html", name)

	// Any missing component falls back to a hash of the URL
	hashed := FilenameFor("", "01/03/2024", "9:00 AM", "https://example.org/key")
	assert.Regexp(t, `^key-[a-f0-9]{12}\.html$`, hashed)

	// The hash is stable per URL
	assert.Equal(t, hashed, FilenameFor("", "01/03/2024", "9:00 AM", "https://example.org/key"))
	assert.NotEqual(t, hashed, FilenameFor("", "", "", "https://example.org/other"))
}

// TestAllowed tests the serving allow-list
func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("exam-general-studies-01-03-2024-9-00-am.html"))
	assert.True(t, Allowed("key-0123456789ab.html"))
	assert.True(t, Allowed("key-0123456789ab-2.html"))

	assert.False(t, Allowed("../etc/passwd"))
	assert.False(t, Allowed("key-short.html"))
	assert.False(t, Allowed("exam-UPPER.html"))
	assert.False(t, Allowed("random.html"))
	assert.False(t, Allowed("exam-ok.txt"))
}
