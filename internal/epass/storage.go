package epass

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Storage owns the public asset directory and the pass output directory.
type Storage struct {
	publicDir string
	pdfDir    string
}

func NewStorage(publicDir, pdfDir string) *Storage {
	return &Storage{publicDir: publicDir, pdfDir: pdfDir}
}

func (s *Storage) PublicDir() string { return s.publicDir }

func (s *Storage) PDFDir() string { return s.pdfDir }

// AssetPath resolves a file under the public directory (logo.png, map.png).
func (s *Storage) AssetPath(name string) string {
	return filepath.Join(s.publicDir, name)
}

// EnsureDir creates the pass directory. Safe to call repeatedly.
func (s *Storage) EnsureDir() error {
	if err := os.MkdirAll(s.pdfDir, 0o755); err != nil {
		return fmt.Errorf("create pass dir %s: %w", s.pdfDir, err)
	}
	return nil
}

// Write streams a pass into a temp file and renames it into place, so readers never see a
// half-written pass. An existing file with the same name is replaced.
func (s *Storage) Write(filename string, fn func(w io.Writer) error) (string, int64, error) {
	if !validName(filename) {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	if err := s.EnsureDir(); err != nil {
		return "", 0, err
	}

	tmp, err := os.CreateTemp(s.pdfDir, ".epass-*.tmp")
	if err != nil {
		return "", 0, fmt.Errorf("create temp pass: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := fn(tmp); err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("write pass: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("sync pass: %w", err)
	}
	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("stat pass: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("close pass: %w", err)
	}

	final := filepath.Join(s.pdfDir, filename)
	if err := os.Rename(tmpName, final); err != nil {
		return "", 0, fmt.Errorf("move pass into place: %w", err)
	}
	return final, info.Size(), nil
}

// Open returns the pass file for reading. Names that are not plain pass filenames are
// reported as not found rather than touching the filesystem.
func (s *Storage) Open(filename string) (*os.File, fs.FileInfo, error) {
	if !validName(filename) {
		return nil, nil, ErrArtifactNotFound
	}
	f, err := os.Open(filepath.Join(s.pdfDir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, ErrArtifactNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, ErrArtifactNotFound
	}
	return f, info, nil
}

func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return false
	}
	if name != filepath.Base(name) {
		return false
	}
	return strings.HasSuffix(name, FileSuffix) && len(name) > len(FileSuffix)
}
