package resume

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var reSpaceRuns = regexp.MustCompile(`[ \t\r\f\v]+`)

// ExtractText converts raw PDF bytes to plain text. Horizontal whitespace is
// collapsed but newlines are preserved; the section splitter does its own
// newline cleanup.
func ExtractText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

// normalizeWhitespace collapses runs of horizontal whitespace and replaces
// non-breaking spaces with plain ones, keeping newlines intact.
func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = reSpaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
