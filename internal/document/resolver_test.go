package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFileNotFound(t *testing.T) {
	r := NewResolver()
	_, err := r.Resolve(filepath.Join(t.TempDir(), "no_such_paper.pdf"), 0)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("want ErrFileNotFound, got %v", err)
	}
}

func TestResolveDirectory(t *testing.T) {
	r := NewResolver()
	_, err := r.Resolve(t.TempDir(), 0)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("want ErrInvalidDocument, got %v", err)
	}
}

func TestResolveInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver()
	_, err := r.Resolve(path, 0)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("want ErrInvalidDocument, got %v", err)
	}
}

func TestClampPageLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		total int
		want  int
	}{
		{"no limit", 0, 12, 12},
		{"limit below total", 5, 12, 5},
		{"limit equals total", 12, 12, 12},
		{"limit above total", 30, 12, 12},
		{"negative limit treated as no limit", -1, 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPageLimit(tt.limit, tt.total); got != tt.want {
				t.Errorf("clampPageLimit(%d, %d) = %d, want %d", tt.limit, tt.total, got, tt.want)
			}
		})
	}
}
