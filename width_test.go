package vtcore

import "testing"

func TestIsWideRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{'A', false},
		{'a', false},
		{' ', false},
		{'中', true},
		{'日', true},
		{'한', true},
		{'가', true},
		{'Ａ', true}, // fullwidth A
		{'0', false},
	}

	for _, tt := range tests {
		got := isWideRune(tt.r)
		if got != tt.expected {
			t.Errorf("isWideRune(%q) = %v, want %v", tt.r, got, tt.expected)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
		{"한글", 4},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestGraphemeClustersCombiningMark(t *testing.T) {
	// "e" + combining acute accent (U+0301) is one cluster.
	s := "é"
	clusters := graphemeClusters(s)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d: %v", len(clusters), clusters)
	}
	if clusterWidth(clusters[0]) != 1 {
		t.Errorf("expected combining-mark cluster to have width 1, got %d", clusterWidth(clusters[0]))
	}
}

func TestGraphemeClustersPlainASCII(t *testing.T) {
	clusters := graphemeClusters("hi")
	if len(clusters) != 2 || clusters[0] != "h" || clusters[1] != "i" {
		t.Errorf("expected [h i], got %v", clusters)
	}
}
