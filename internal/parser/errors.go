package parser

import (
	"errors"
	"fmt"
)

var errNotText = errors.New("file is not valid UTF-8 text")

// UnreadableError marks a single document that could not be parsed
// (corrupt or unsupported). The batch must continue without it.
type UnreadableError struct {
	Filename string
	Err      error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("unreadable document %s: %v", e.Filename, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

// ArchiveError marks an uploaded archive that could not be expanded. Only
// the archive's contents are lost; other uploads in the batch are unaffected.
type ArchiveError struct {
	Filename string
	Err      error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("cannot expand archive %s: %v", e.Filename, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }
