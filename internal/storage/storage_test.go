package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Choco Cookies", "choco_cookies"},
		{"My-Product_2", "my_product_2"},
		{"Café au Lait!", "caf_au_lait"},
		{"   ", "pamphlet"},
		{"!!!", "pamphlet"},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveWritesUniqueFiles(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Save("Choco Cookies", []byte("png-a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := s.Save("Choco Cookies", []byte("png-b"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Fatalf("two saves produced the same filename %q", a)
	}
	if !strings.HasPrefix(a, "pamphlet_choco_cookies_") || !strings.HasSuffix(a, ".png") {
		t.Fatalf("filename = %q, want pamphlet_choco_cookies_*.png", a)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir(), a))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "png-a" {
		t.Fatalf("saved data = %q", data)
	}
}

func TestPathResolvesSavedFile(t *testing.T) {
	s := newTestStore(t)
	name, err := s.Save("widget", []byte("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	path, err := s.Path(name)
	if err != nil {
		t.Fatalf("Path(%q): %v", name, err)
	}
	if filepath.Dir(path) != s.Dir() {
		t.Fatalf("path %q escapes store dir %q", path, s.Dir())
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"", "../secret", "a/b.png", ".hidden", "..", "missing.png"} {
		if _, err := s.Path(name); err != ErrNotFound {
			t.Fatalf("Path(%q) error = %v, want ErrNotFound", name, err)
		}
	}
}
