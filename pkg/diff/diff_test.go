package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("<p>one</p>\n<p>two</p>\n")
	assert.Empty(t, Unified(content, content, "before", "after"))
}

func TestUnified_ChangedLine(t *testing.T) {
	t.Parallel()

	before := []byte("<html>\n<body>\n<p>text</p>\n</body>\n</html>\n")
	after := []byte("<html>\n<body style=\"filter: saturate(50%);\">\n<p>text</p>\n</body>\n</html>\n")

	result := Unified(before, after, "page.html", "page.html (accommodated)")
	require.NotEmpty(t, result)

	assert.True(t, strings.HasPrefix(result, "--- page.html\n+++ page.html (accommodated)\n"))
	assert.Contains(t, result, "@@ -1,5 +1,5 @@")
	assert.Contains(t, result, "-<body>\n")
	assert.Contains(t, result, "+<body style=\"filter: saturate(50%);\">\n")
	assert.Contains(t, result, " <p>text</p>\n")
}

func TestUnified_AddedLines(t *testing.T) {
	t.Parallel()

	before := []byte("<head>\n</head>\n")
	after := []byte("<head>\n<style id=\"a11y-style-readable-font\"></style>\n</head>\n")

	result := Unified(before, after, "a", "b")
	assert.Contains(t, result, "+<style id=\"a11y-style-readable-font\"></style>\n")
	assert.NotContains(t, result, "-<head>")
}

func TestUnified_Truncates(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("a\n")
		after.WriteString("b\n")
	}

	result := Unified([]byte(before.String()), []byte(after.String()), "a", "b")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
