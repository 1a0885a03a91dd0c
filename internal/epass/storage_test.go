package epass

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	public := t.TempDir()
	return NewStorage(public, filepath.Join(public, "pdfs"))
}

func TestValidName(t *testing.T) {
	ok := []string{"01HZX0000000000000000000AB-epass.pdf", "abc-epass.pdf"}
	bad := []string{"", "-epass.pdf", "../x-epass.pdf", "a/b-epass.pdf", `a\b-epass.pdf`, ".hidden-epass.pdf", "x.pdf", "x-epass.pdf.tmp"}

	for _, n := range ok {
		assert.True(t, validName(n), n)
	}
	for _, n := range bad {
		assert.False(t, validName(n), n)
	}
}

func TestStorageWriteAndOpen(t *testing.T) {
	s := newTestStorage(t)
	name := FilenameFor("01HZX0000000000000000000AB")

	path, size, err := s.Write(name, func(w io.Writer) error {
		_, err := io.WriteString(w, "%PDF-first")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.PDFDir(), name), path)
	assert.EqualValues(t, len("%PDF-first"), size)

	// same name again replaces the file
	_, _, err = s.Write(name, func(w io.Writer) error {
		_, err := io.WriteString(w, "%PDF-second")
		return err
	})
	require.NoError(t, err)

	f, info, err := s.Open(name)
	require.NoError(t, err)
	defer f.Close()
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-second", string(body))
	assert.Equal(t, name, info.Name())

	entries, err := os.ReadDir(s.PDFDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStorageWriteFailureLeavesNothing(t *testing.T) {
	s := newTestStorage(t)
	boom := errors.New("boom")

	_, _, err := s.Write("x-epass.pdf", func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(s.PDFDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStorageWriteRejectsBadName(t *testing.T) {
	s := newTestStorage(t)
	_, _, err := s.Write("../evil-epass.pdf", func(io.Writer) error { return nil })
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestStorageWriteDirUnavailable(t *testing.T) {
	public := t.TempDir()
	// a regular file where the pass directory should be
	blocker := filepath.Join(public, "pdfs")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	s := NewStorage(public, blocker)

	_, _, err := s.Write("x-epass.pdf", func(io.Writer) error { return nil })
	assert.Error(t, err)
}

func TestStorageOpenMissing(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.EnsureDir())
	require.NoError(t, s.EnsureDir())

	for _, name := range []string{"nope-epass.pdf", "../pdfs-epass.pdf", "secret.txt"} {
		_, _, err := s.Open(name)
		assert.ErrorIs(t, err, ErrArtifactNotFound, name)
	}

	// a directory with a pass-like name is not a pass
	require.NoError(t, os.Mkdir(filepath.Join(s.PDFDir(), "dir-epass.pdf"), 0o755))
	_, _, err := s.Open("dir-epass.pdf")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestPDFText(t *testing.T) {
	assert.Equal(t, "Jos\xe9", pdfText("José"))
	assert.Equal(t, "Asha ??", pdfText("Asha 日本"))
	assert.True(t, strings.HasPrefix(pdfText("Visitor"), "Visitor"))
}
