package teaui

import "testing"

func TestFitKeepsStringsThatFit(t *testing.T) {
	tests := []struct {
		in     string
		width  int
		expect string
	}{
		{"abc", 3, "abc"},
		{"abc", 10, "abc"},
		{"abcd", 3, "ab…"},
		{"Physical Activities", 19, "Physical Activities"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := fit(tt.in, tt.width); got != tt.expect {
			t.Fatalf("fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.expect)
		}
	}
}

func TestWindowKeepsSelectionVisible(t *testing.T) {
	parts := []string{"aaa", "bbb", "ccc", "ddd"}
	tests := []struct {
		sel    int
		width  int
		expect string
	}{
		{0, 9, "aaa bbb …"},
		{3, 9, "… ccc ddd"},
		{2, 9, "… bbb ccc"},
		{1, 40, "aaa bbb ccc ddd"},
	}
	for _, tt := range tests {
		if got := window(parts, tt.sel, tt.width); got != tt.expect {
			t.Fatalf("window(sel=%d, width=%d) = %q, want %q", tt.sel, tt.width, got, tt.expect)
		}
	}
}
