package utils

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	codeBlockRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*`")
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	formattingRe = regexp.MustCompile(`[#*_~]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ExtractExcerpt produces a plain-text excerpt from a markdown body.
// MDX/HTML tags, code blocks and markdown formatting are stripped, links
// are reduced to their text, and the result is cut at the last complete
// word within maxLen.
func ExtractExcerpt(content string, maxLen int) string {
	plain := codeBlockRe.ReplaceAllString(content, "")
	plain = htmlTagRe.ReplaceAllString(plain, "")
	plain = inlineCodeRe.ReplaceAllString(plain, "")
	plain = linkRe.ReplaceAllString(plain, "$1")
	plain = formattingRe.ReplaceAllString(plain, "")
	plain = whitespaceRe.ReplaceAllString(plain, " ")
	plain = strings.TrimSpace(plain)

	if len(plain) <= maxLen {
		return plain
	}

	truncated := plain[:maxLen]
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}

	return truncated + "..."
}
