package reversi

import (
	"errors"
	"sort"
	"testing"
)

func newInitialBoard(t *testing.T, edge int) *Board {
	t.Helper()
	b, err := NewBoard(edge)
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", edge, err)
	}
	b.PlaceInitialFour()
	return b
}

func positions(cells []*Cell) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.String())
	}
	sort.Strings(out)
	return out
}

func TestNewBoardRejectsInvalidEdge(t *testing.T) {
	for _, edge := range []int{-2, 0, 1, 3, 7} {
		_, err := NewBoard(edge)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("edge %d: expected ConfigError, got %v", edge, err)
		}
		if cfgErr.Edge != edge {
			t.Fatalf("edge %d: error reports edge %d", edge, cfgErr.Edge)
		}
	}
}

func TestNewBoardCells(t *testing.T) {
	b, err := NewBoard(6)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Cells()) != 36 {
		t.Fatalf("expected 36 cells, got %d", len(b.Cells()))
	}
	seen := map[[2]int]bool{}
	for _, c := range b.Cells() {
		key := [2]int{c.Row(), c.Col()}
		if seen[key] {
			t.Fatalf("duplicate cell %v", key)
		}
		seen[key] = true
		if c.HasDisc() {
			t.Fatalf("cell %s should start empty", c)
		}
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	b := newInitialBoard(t, 8)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}} {
		if c, ok := b.CellAt(p[0], p[1]); ok || c != nil {
			t.Fatalf("CellAt(%d, %d) should be absent", p[0], p[1])
		}
	}
	c, ok := b.CellAt(3, 5)
	if !ok || c.Row() != 3 || c.Col() != 5 {
		t.Fatalf("CellAt(3, 5) returned %v, %v", c, ok)
	}
}

func TestPlaceInitialFour(t *testing.T) {
	for _, edge := range []int{4, 6, 8, 10, 12} {
		b := newInitialBoard(t, edge)
		if got := b.DiscCount(); got != 4 {
			t.Fatalf("edge %d: expected 4 discs, got %d", edge, got)
		}
		lo, hi := edge/2-1, edge/2
		at := func(row, col int) Color {
			c, _ := b.CellAt(row, col)
			return c.Color()
		}
		if at(lo, lo) != Black || at(hi, hi) != Black {
			t.Fatalf("edge %d: main diagonal should be black", edge)
		}
		if at(lo, hi) != White || at(hi, lo) != White {
			t.Fatalf("edge %d: anti diagonal should be white", edge)
		}
		if at(lo, lo) == at(lo, hi) {
			t.Fatalf("edge %d: adjacent starting discs share a colour", edge)
		}
	}
}

func TestInitialCandidates(t *testing.T) {
	b := newInitialBoard(t, 8)

	black := positions(b.Candidates(Black))
	want := []string{"c5", "d6", "e3", "f4"} // (4,2) (5,3) (2,4) (3,5)
	if len(black) != len(want) {
		t.Fatalf("black candidates: got %v, want %v", black, want)
	}
	for i := range want {
		if black[i] != want[i] {
			t.Fatalf("black candidates: got %v, want %v", black, want)
		}
	}

	white := positions(b.Candidates(White))
	want = []string{"c4", "d3", "e6", "f5"} // (3,2) (2,3) (5,4) (4,5)
	if len(white) != len(want) {
		t.Fatalf("white candidates: got %v, want %v", white, want)
	}
	for i := range want {
		if white[i] != want[i] {
			t.Fatalf("white candidates: got %v, want %v", white, want)
		}
	}
}

func TestCandidatesAreLegalAndEmpty(t *testing.T) {
	b := newInitialBoard(t, 8)
	moves := []struct {
		row, col int
		color    Color
	}{
		{3, 5, Black}, {2, 5, White}, {2, 4, Black}, {4, 5, White}, {5, 4, Black},
	}
	for _, m := range moves {
		if !b.Place(m.row, m.col, m.color) {
			t.Fatalf("move %s at (%d, %d) should be legal\n%s", m.color, m.row, m.col, b)
		}
		for _, color := range []Color{Black, White} {
			for _, c := range b.Candidates(color) {
				if c.HasDisc() {
					t.Fatalf("candidate %s is occupied", c)
				}
				if !c.LegalityCheck(color) {
					t.Fatalf("candidate %s fails LegalityCheck", c)
				}
			}
		}
	}
}

func TestPlaceFlipsOneDisc(t *testing.T) {
	b := newInitialBoard(t, 8)
	if !b.Place(3, 5, Black) {
		t.Fatal("black at (3,5) should be legal")
	}
	if got := b.DiscCount(); got != 5 {
		t.Fatalf("expected 5 discs, got %d", got)
	}
	if got := b.DiscCount(Black); got != 4 {
		t.Fatalf("expected 4 black discs, got %d", got)
	}
	if got := b.DiscCount(White); got != 1 {
		t.Fatalf("expected 1 white disc, got %d", got)
	}
	flipped, _ := b.CellAt(3, 4)
	if flipped.Color() != Black {
		t.Fatalf("(3,4) should have been flipped to black, got %s", flipped.Color())
	}
}

func TestPlaceOffBoard(t *testing.T) {
	b := newInitialBoard(t, 8)
	if b.Place(8, 0, Black) {
		t.Fatal("placing off the board should fail")
	}
}

func TestIsFull(t *testing.T) {
	b, err := FromRows(
		"XO",
		"OX",
	)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsFull() {
		t.Fatal("2x2 board with four discs should be full")
	}
	if b.DiscCount() != 4 {
		t.Fatalf("expected 4 discs, got %d", b.DiscCount())
	}

	b = newInitialBoard(t, 4)
	if b.IsFull() {
		t.Fatal("4x4 board with four discs should not be full")
	}
}

func TestIsSingleColor(t *testing.T) {
	empty, _ := NewBoard(4)
	if empty.IsSingleColor() {
		t.Fatal("empty board should not be single colour")
	}

	b, err := FromRows(
		"....",
		".XX.",
		".X..",
		"....",
	)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsSingleColor() {
		t.Fatal("board with only black should be single colour")
	}

	b = newInitialBoard(t, 4)
	if b.IsSingleColor() {
		t.Fatal("initial board has both colours")
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Color
	}{
		{"black", []string{"XX", "XO"}, Black},
		{"white", []string{"OO", ".X"}, White},
		{"draw", []string{"XO", "OX"}, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromRows(tt.rows...)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.Winner(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFromRowsErrors(t *testing.T) {
	if _, err := FromRows("XO", "O"); err == nil {
		t.Fatal("short row should fail")
	}
	if _, err := FromRows("X?", "OX"); err == nil {
		t.Fatal("unknown character should fail")
	}
	if _, err := FromRows("XOX", "OXO", "XOX"); err == nil {
		t.Fatal("odd edge should fail")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	b := newInitialBoard(t, 4)
	grid := b.Snapshot()
	if grid[1][1] != Black || grid[1][2] != White {
		t.Fatalf("unexpected snapshot %v", grid)
	}
	grid[0][0] = White
	c, _ := b.CellAt(0, 0)
	if c.HasDisc() {
		t.Fatal("modifying a snapshot must not change the board")
	}
}

func TestString(t *testing.T) {
	b := newInitialBoard(t, 4)
	want := "   a b c d\n" +
		" 1 . . . .\n" +
		" 2 . X O .\n" +
		" 3 . O X .\n" +
		" 4 . . . .\n"
	if got := b.String(); got != want {
		t.Fatalf("unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}
