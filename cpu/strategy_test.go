package cpu

import (
	"math/rand"
	"sort"
	"testing"

	"termreversi/reversi"
)

func mustBoard(t *testing.T, rows ...string) *reversi.Board {
	t.Helper()
	b, err := reversi.FromRows(rows...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func emptyBoard(t *testing.T) *reversi.Board {
	t.Helper()
	b, err := reversi.NewBoard(8)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func cellsAt(t *testing.T, b *reversi.Board, points ...[2]int) []*reversi.Cell {
	t.Helper()
	cells := make([]*reversi.Cell, 0, len(points))
	for _, p := range points {
		c, ok := b.CellAt(p[0], p[1])
		if !ok {
			t.Fatalf("no cell at %v", p)
		}
		cells = append(cells, c)
	}
	return cells
}

func coords(cells []*reversi.Cell) [][2]int {
	out := make([][2]int, 0, len(cells))
	for _, c := range cells {
		out = append(out, [2]int{c.Row(), c.Col()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func expectCoords(t *testing.T, got []*reversi.Cell, want ...[2]int) {
	t.Helper()
	gc := coords(got)
	if len(gc) != len(want) {
		t.Fatalf("expected %v, got %v", want, gc)
	}
	for i := range want {
		if gc[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gc)
		}
	}
}

// reversableBoard has black on (4,2)-(4,4) and white on (3,2)-(3,4).
// Black can play (2,1)..(2,5): columns 2 and 4 flip two discs, the rest one.
func reversableBoard(t *testing.T) *reversi.Board {
	return mustBoard(t,
		"........",
		"........",
		"........",
		"..OOO...",
		"..XXX...",
		"........",
		"........",
		"........",
	)
}

func TestPositionalOps(t *testing.T) {
	b := emptyBoard(t)
	mixed := cellsAt(t, b, [2]int{0, 4}, [2]int{5, 7}, [2]int{0, 7}, [2]int{6, 1}, [2]int{1, 0}, [2]int{5, 5})
	s := NewStrategy(b, reversi.Black, mixed)

	tests := []struct {
		name string
		op   Op
		want [][2]int
	}{
		{"edge", Edge, [][2]int{{0, 4}, {0, 7}, {1, 0}, {5, 7}}},
		{"not edge", NotEdge, [][2]int{{5, 5}, {6, 1}}},
		{"corner", Corner, [][2]int{{0, 7}}},
		{"around corner", AroundCorner, [][2]int{{1, 0}, {6, 1}}},
		{"star position", StarPosition, [][2]int{{6, 1}}},
		{"negate edge", Negate(Edge), [][2]int{{5, 5}, {6, 1}}},
		{"negate around corner", Negate(AroundCorner), [][2]int{{0, 4}, {0, 7}, {5, 5}, {5, 7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectCoords(t, s.Apply(tt.op).Cells(), tt.want...)
		})
	}
	if s.Len() != len(mixed) {
		t.Fatalf("operations must not narrow the receiver, len is %d", s.Len())
	}
}

func TestReversableOps(t *testing.T) {
	b := reversableBoard(t)
	candidates := b.Candidates(reversi.Black)
	expectCoords(t, candidates, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{2, 5})

	s := NewStrategy(b, reversi.Black, candidates)
	expectCoords(t, s.Apply(MostReversable).Cells(), [2]int{2, 2}, [2]int{2, 4})
	expectCoords(t, s.Apply(LeastReversable).Cells(), [2]int{2, 1}, [2]int{2, 3}, [2]int{2, 5})
	expectCoords(t, s.Apply(Negate(MostReversable)).Cells(), [2]int{2, 1}, [2]int{2, 3}, [2]int{2, 5})

	if b.DiscCount() != 6 {
		t.Fatal("strategy operations must not touch the board")
	}
}

func TestChaining(t *testing.T) {
	b := reversableBoard(t)
	s := NewStrategy(b, reversi.Black, b.Candidates(reversi.Black))
	got := s.Apply(LeastReversable).Apply(FilterBy(func(c *reversi.Cell) bool { return c.Col() > 2 }))
	expectCoords(t, got.Cells(), [2]int{2, 3}, [2]int{2, 5})
}

func TestSelectEmpty(t *testing.T) {
	b := emptyBoard(t)
	s := NewStrategy(b, reversi.Black, nil)
	called := false
	op := func(s Strategy) Strategy {
		called = true
		return s
	}
	if c := s.Select(rand.New(rand.NewSource(1)), op); c != nil {
		t.Fatalf("expected nil, got %s", c)
	}
	if called {
		t.Fatal("ops must not run on an empty set")
	}
}

func TestSelectSkipsEmptyingOps(t *testing.T) {
	b := mustBoard(t,
		"........",
		"..OOO...",
		"..XXXO..",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	s := NewStrategy(b, reversi.Black, b.Candidates(reversi.Black))
	rng := rand.New(rand.NewSource(1))

	// No corner is available, so Corner must not wipe out the candidates.
	c := s.Select(rng, Corner, LeastReversable, NotEdge)
	if c == nil {
		t.Fatal("expected a cell")
	}
	if c.Row() != 2 || c.Col() != 6 {
		t.Fatalf("expected (2,6), got (%d,%d)", c.Row(), c.Col())
	}
}

func TestSelectIsSeedable(t *testing.T) {
	b := emptyBoard(t)
	s := NewStrategy(b, reversi.Black, b.Cells())
	first := s.Select(rand.New(rand.NewSource(42)))
	for i := 0; i < 5; i++ {
		if again := s.Select(rand.New(rand.NewSource(42))); !again.Equals(first) {
			t.Fatalf("same seed picked %s then %s", first, again)
		}
	}
}

func TestSelectUsesWholeSet(t *testing.T) {
	b := emptyBoard(t)
	s := NewStrategy(b, reversi.Black, cellsAt(t, b, [2]int{0, 0}, [2]int{7, 7}))
	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[s.Select(rng).String()] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both cells to be picked, saw %v", seen)
	}
}
