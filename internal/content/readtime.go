// Package content derives display metadata for blog posts at write time.
package content

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const wordsPerMinute = 200

var tagRe = regexp.MustCompile(`<[^>]*>`)

// ReadTime estimates reading time for rich text content: markup is stripped,
// whitespace-delimited words are counted and divided by 200 wpm, rounded up.
// The result is stored on the post, not recomputed on read.
func ReadTime(content string) string {
	plain := tagRe.ReplaceAllString(content, " ")
	words := len(strings.Fields(plain))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
