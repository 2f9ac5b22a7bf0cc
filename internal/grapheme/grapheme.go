// Package grapheme defines the column addressing unit shared by the buffer
// and the renderer: one column is one grapheme cluster.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// LeadingSpace returns the whitespace prefix of a line.
func LeadingSpace(clusters []string) []string {
	n := 0
	for n < len(clusters) && IsSpace(clusters[n]) {
		n++
	}
	return clusters[:n]
}

// Width returns the terminal cell width of one cluster. Clusters that
// occupy no cells on their own, such as a tab, count as one cell and are
// drawn as a space.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w <= 0 {
		w = 1
	}
	return w
}

// Printable reports whether cluster can be drawn as is.
func Printable(cluster string) bool {
	return runewidth.StringWidth(cluster) > 0 || uniseg.StringWidth(cluster) > 0
}

// Cells returns the cell offset of column col within clusters.
// Columns past the end count one cell each.
func Cells(clusters []string, col int) int {
	cells := 0
	for i := 0; i < col; i++ {
		if i < len(clusters) {
			cells += Width(clusters[i])
			continue
		}
		cells++
	}
	return cells
}
