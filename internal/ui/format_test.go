package ui

import (
	"strings"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "2 KB"}, // rounds to nearest
		{10 * 1024, "10 KB"},
		{1024 * 1024, "1 MB"},
		{5*1024*1024 + 300*1024, "5 MB"},
		{3 << 30, "3 GB"},
		{2 << 40, "2 TB"},
		{5000 << 40, "5000 TB"}, // TB is the ceiling unit
	}
	for _, tt := range tests {
		if got := formatSize(tt.bytes); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatSize_UnitNeverShrinksAsInputGrows(t *testing.T) {
	unitRank := func(s string) int {
		for i, u := range sizeUnits {
			if strings.HasSuffix(s, " "+u) {
				return i
			}
		}
		t.Fatalf("no unit in %q", s)
		return -1
	}

	prev := -1
	for bytes := int64(1); bytes < 1<<50; bytes *= 7 {
		rank := unitRank(formatSize(bytes))
		if rank < prev {
			t.Fatalf("unit rank shrank at %d bytes: %d -> %d", bytes, prev, rank)
		}
		prev = rank
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 5); got != "ab..." {
		t.Fatalf("truncate = %q, want ab...", got)
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("truncate = %q, want abc", got)
	}
	if got := truncate("abc", 0); got != "" {
		t.Fatalf("truncate = %q, want empty", got)
	}
}
