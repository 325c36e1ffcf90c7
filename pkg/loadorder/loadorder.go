// Package loadorder reads Mod Organizer load-order listings.
//
// A listing is plain text with one plugin per line. Blank lines and lines
// starting with '#' or '/' are ignored; everything else is trimmed and kept
// in file order.
package loadorder

import (
	"io"
	"strings"
)

// CommentPrefixes mark lines that carry no plugin.
var CommentPrefixes = []string{"#", "/"}

// PluginList is the ordered sequence of plugin names, as loaded.
// Duplicates are kept.
type PluginList []string

// Len returns the number of plugins
func (l PluginList) Len() int {
	return len(l)
}

// IsComment reports whether an already trimmed line is a comment
func IsComment(line string) bool {
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Filter trims each line and drops blanks and comments.
func Filter(lines []string) PluginList {
	plugins := make(PluginList, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || IsComment(line) {
			continue
		}
		plugins = append(plugins, line)
	}
	return plugins
}

// Parse reads a whole listing from r. Lines have no length limit.
func Parse(r io.Reader) (PluginList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data)), nil
}

// ParseString is Parse for in-memory listings.
func ParseString(s string) PluginList {
	// \r left behind by CRLF endings is whitespace and gets trimmed
	return Filter(strings.Split(s, "\n"))
}
