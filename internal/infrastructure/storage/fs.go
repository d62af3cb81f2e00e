package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/csp/internal/domain"
)

// FS persists puzzles as indented JSON under <dir>/<bucket>/<id>.json,
// bucketed by clue count.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var buckets = []string{"sparse", "medium", "dense"}

// bucketFor groups puzzles by how constrained they are: sparse boards
// (few clues) solve into many completions, dense ones into few.
func bucketFor(clues int) string {
	switch {
	case clues <= 24:
		return "sparse"
	case clues <= 39:
		return "medium"
	default:
		return "dense"
	}
}

func (s *FS) pathFor(id string, clues int) string {
	return filepath.Join(s.dir, bucketFor(clues), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Clues)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	paths := make([]string, 0, len(buckets)+1)
	for _, b := range buckets {
		paths = append(paths, filepath.Join(s.dir, b, id+".json"))
	}
	paths = append(paths, filepath.Join(s.dir, id+".json")) // legacy flat layout

	var data []byte
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err == nil {
			data = b
			break
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Clues == 0 {
		out.Clues = out.Board.Clues()
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, b := range buckets {
		dir := filepath.Join(s.dir, b)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil {
				continue
			}
			if p.ID == "" {
				p.ID = strings.TrimSuffix(e.Name(), ".json")
			}
			out = append(out, domain.PuzzleMeta{
				ID:        p.ID,
				Name:      p.Name,
				Clues:     p.Clues,
				CreatedAt: p.CreatedAt,
			})
		}
	}
	return out, nil
}
