package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// A locally valid board with no completion: row 0 pins cell (0,0) to 1,
// while column 0 already holds a 1.
func unsolvable() domain.Board {
	var b domain.Board
	for c := 1; c < 9; c++ {
		b.Values[0][c] = uint8(c + 1)
	}
	b.Values[8][0] = 1
	return b
}

func TestSolveClassic(t *testing.T) {
	in := &domain.Board{Values: sample}
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Values[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
			if sample[r][c] != 0 && out.Values[r][c] != sample[r][c] {
				t.Fatalf("clue overwritten at r=%d c=%d", r, c)
			}
		}
	}
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveLeavesInputUntouched(t *testing.T) {
	in := &domain.Board{Values: sample}
	want := *in
	s := NewBacktracking()
	ctx := context.Background()

	if _, _, err := s.Solve(ctx, in); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if diff := cmp.Diff(want, *in); diff != "" {
		t.Errorf("input board modified by Solve (-want+got);\n%s", diff)
	}
}

func TestSolveUnsolvable(t *testing.T) {
	in := unsolvable()
	want := in
	s := NewBacktracking()
	ctx := context.Background()

	out, _, err := s.Solve(ctx, &in)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got out=%v err=%v", out, err)
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("board modified by failed Solve (-want+got);\n%s", diff)
	}
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewBacktracking()
	_, _, err := s.Solve(ctx, &domain.Board{Values: sample})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
