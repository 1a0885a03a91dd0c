package epass

import "errors"

// FileSuffix is appended to the record id to name its pass.
const FileSuffix = "-epass.pdf"

var (
	ErrArtifactNotFound = errors.New("pass file not found")
	ErrInvalidFilename  = errors.New("invalid pass filename")
)

// PassArtifact is a rendered pass on disk.
type PassArtifact struct {
	RecordID string
	Filename string
	Path     string
	Size     int64
}

// FilenameFor maps a record id to its pass filename. Same id, same name.
func FilenameFor(recordID string) string {
	return recordID + FileSuffix
}
