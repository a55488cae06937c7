package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/skipcount/internal/catalog"
)

func TestMoveCursor(t *testing.T) {
	cases := []struct {
		idx, dx, dy, count, cols, want int
	}{
		{0, -1, 0, 10, 5, 0},
		{4, 1, 0, 10, 5, 4},
		{4, 0, 1, 10, 5, 9},
		{2, 0, 1, 10, 5, 7},
		{7, 0, -1, 10, 5, 2},
		{8, 0, 1, 10, 3, 9},
		{3, 1, 0, 10, 2, 3},
		{0, 1, 0, 0, 5, 0},
	}
	for _, tc := range cases {
		if got := moveCursor(tc.idx, tc.dx, tc.dy, tc.count, tc.cols); got != tc.want {
			t.Fatalf("moveCursor(%d,%d,%d,%d,%d): expected %d, got %d", tc.idx, tc.dx, tc.dy, tc.count, tc.cols, tc.want, got)
		}
	}
}

func TestRenderGridRows(t *testing.T) {
	mode, _ := catalog.Lookup("two")
	order := []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
	out := renderGrid(order, func(int) bool { return false }, 0, 5, mode)
	lines := strings.Split(out, "\n")
	// Two rows of bordered tiles, three lines each.
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "2") || !strings.Contains(lines[4], "20") {
		t.Fatalf("unexpected tile placement:\n%s", out)
	}
}
