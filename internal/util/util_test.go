// internal/util/util_test.go
package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "Q9.rq", max: 10, want: "Q9.rq"},
		{name: "ascii truncation", in: "NotAdaptive", max: 5, want: "NotAd…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
		{name: "no limit", in: "Selective", max: 0, want: "Selective"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestColumnWidth(t *testing.T) {
	t.Parallel()

	cells := []string{"Random", "NotAdaptive", "Selective"}
	if got := ColumnWidth("approach", cells, 0); got != 11 {
		t.Fatalf("ColumnWidth uncapped = %d, want 11", got)
	}
	if got := ColumnWidth("approach", cells, 9); got != 9 {
		t.Fatalf("ColumnWidth capped = %d, want 9", got)
	}
	if got := ColumnWidth("invtotaltime", nil, 0); got != 12 {
		t.Fatalf("ColumnWidth header only = %d, want 12", got)
	}
	if got := ColumnWidth("n", []string{"世界"}, 0); got != 2 {
		t.Fatalf("ColumnWidth runes = %d, want 2", got)
	}
}
