package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
)

// MemberFile is one file pulled out of an uploaded archive.
type MemberFile struct {
	Name string
	Data []byte
}

// IsArchive reports whether the filename looks like a ZIP upload.
func IsArchive(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".zip")
}

// ExpandArchive unpacks a ZIP upload into its member files, in archive
// order. Directories and OS metadata entries are skipped. A corrupt archive
// returns an *ArchiveError; the caller loses only this archive's contents.
func ExpandArchive(data []byte, filename string) ([]MemberFile, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ArchiveError{Filename: filename, Err: err}
	}

	var members []MemberFile
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := path.Base(f.Name)
		if strings.HasPrefix(name, ".") || strings.HasPrefix(f.Name, "__MACOSX/") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, &ArchiveError{Filename: filename, Err: fmt.Errorf("open %s: %w", f.Name, err)}
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &ArchiveError{Filename: filename, Err: fmt.Errorf("read %s: %w", f.Name, err)}
		}

		members = append(members, MemberFile{Name: name, Data: content})
	}
	return members, nil
}
