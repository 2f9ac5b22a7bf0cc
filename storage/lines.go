package storage

import "strings"

// SplitContent turns file content into document lines. One trailing newline
// is dropped and "\r\n" line endings are accepted. The result always holds
// at least one line.
func SplitContent(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	parts := strings.Split(content, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
