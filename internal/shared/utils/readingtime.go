package utils

import (
	"fmt"
	"strings"
)

// Reading speed used for the estimate. Same figure the frontend used to
// show next to each post.
const wordsPerMinute = 200

// ReadingTime returns a human-readable reading-time estimate for a
// markdown body, e.g. "3 min read". Derived purely from word count;
// markup is counted as words, which is close enough for prose posts.
func ReadingTime(content string) string {
	words := len(strings.Fields(content))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}
