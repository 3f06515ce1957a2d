package spoonacular

import "regexp"

var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// StripTags removes markup tags from provider summary and instruction
// text. It is a plain tag-stripping transform, not an HTML parser.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
