package solver

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/validator"
)

func TestCountClassicIsUnique(t *testing.T) {
	in := &domain.Board{Values: sample}
	want := *in
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sols, st, err := s.Count(ctx, in, 2)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("classic fixture: want exactly 1 solution, got %d (nodes=%d)", len(sols), st.Nodes)
	}
	ok, conf, _ := validator.New().Validate(ctx, &sols[0])
	if !ok {
		t.Fatalf("recorded solution invalid: %v", conf)
	}
	if diff := cmp.Diff(want, *in); diff != "" {
		t.Errorf("input board modified by Count (-want+got);\n%s", diff)
	}
}

func TestCountRespectsLimit(t *testing.T) {
	in := &domain.Board{} // empty board: astronomically many completions
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sols, _, err := s.Count(ctx, in, 3)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if len(sols) != 3 {
		t.Fatalf("want 3 recorded solutions, got %d", len(sols))
	}
	v := validator.New()
	for i := range sols {
		if ok, conf, _ := v.Validate(ctx, &sols[i]); !ok {
			t.Fatalf("solution %d invalid: %v", i, conf)
		}
		if sols[i].Clues() != 81 {
			t.Fatalf("solution %d incomplete", i)
		}
	}
	if diff := cmp.Diff(sols[0], sols[1]); diff == "" {
		t.Error("recorded solutions are not distinct")
	}
}

func TestCountUnboundedOnNearCompleteBoard(t *testing.T) {
	s := NewBacktracking()
	ctx := context.Background()

	full, _, err := s.Solve(ctx, &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// Blank the last row: each column determines its missing value, so
	// exactly one completion remains.
	in := *full
	for c := 0; c < 9; c++ {
		in.Values[8][c] = 0
	}
	sols, _, err := s.Count(ctx, &in, 0)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("want 1 solution with unbounded count, got %d", len(sols))
	}
	if diff := cmp.Diff(*full, sols[0]); diff != "" {
		t.Errorf("re-derived solution differs (-want+got);\n%s", diff)
	}
}

func TestUnique(t *testing.T) {
	s := NewBacktracking()
	ctx := context.Background()

	uniq, _, err := s.Unique(ctx, &domain.Board{Values: sample})
	if err != nil || !uniq {
		t.Fatalf("classic fixture should be unique: uniq=%v err=%v", uniq, err)
	}
	uniq, _, err = s.Unique(ctx, &domain.Board{})
	if err != nil || uniq {
		t.Fatalf("empty board should not be unique: uniq=%v err=%v", uniq, err)
	}
}
