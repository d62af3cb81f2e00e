package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/csp/internal/domain"
)

func samplePuzzle(id string, clues int) *domain.Puzzle {
	p := &domain.Puzzle{ID: id, Seed: 7, Clues: clues, CreatedAt: 1700000000}
	// Storage does not validate boards, so any cell pattern will do.
	for n := 0; n < clues; n++ {
		r, c := n/9, n%9
		p.Board.Values[r][c] = uint8(n%9 + 1)
		p.Board.Fixed[r][c] = true
	}
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	want := samplePuzzle("p1", 30)
	if err := fs.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := fs.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want+got);\n%s", diff)
	}
}

func TestListAcrossBuckets(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	for _, tc := range []struct {
		id    string
		clues int
	}{
		{"a", 17}, // sparse
		{"b", 30}, // medium
		{"c", 45}, // dense
	} {
		if err := fs.Save(ctx, samplePuzzle(tc.id, tc.clues)); err != nil {
			t.Fatalf("Save(%s) failed: %v", tc.id, err)
		}
	}
	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("want 3 entries, got %d: %v", len(metas), metas)
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	if _, err := fs.Load(context.Background(), "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want os.ErrNotExist, got %v", err)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("want error for puzzle without ID")
	}
}
