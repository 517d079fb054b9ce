package util

import (
	"regexp"
	"strings"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将标题转换为 URL slug，非英数字符折叠为连字符
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
