package vtcore

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// clusterWidth returns the display width of a grapheme cluster: 2 for a
// wide cluster (CJK, emoji, fullwidth forms), 1 for normal, 0 for
// zero-width (combining marks, most control characters).
func clusterWidth(cluster string) int {
	return runewidth.StringWidth(cluster)
}

// isWideRune reports whether r occupies 2 columns on its own.
func isWideRune(r rune) bool {
	return runewidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of s, measured cluster by
// cluster rather than rune by rune so combining marks don't inflate it.
func StringWidth(s string) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += clusterWidth(cluster)
	}
	return width
}

// graphemeClusters splits s into grapheme clusters, the unit
// Terminal.printCluster writes one per cell (two for wide clusters).
func graphemeClusters(s string) []string {
	var clusters []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}
