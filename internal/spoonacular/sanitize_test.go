package spoonacular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> text", "bold text"},
		{"<ol><li>Step one</li><li>Step two</li></ol>", "Step oneStep two"},
		{"a < b still holds", "a < b still holds"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StripTags(tc.in), "input %q", tc.in)
	}
}
