// Package storage stages uploaded résumé files on disk for the lifetime of a
// single request.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxResumeSize is the résumé size limit in bytes. The limit is inclusive: a
// file of exactly this size is accepted.
const MaxResumeSize = 5 << 20

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// AllowedResumeExt reports whether the filename carries an accepted résumé
// extension. The check is case-insensitive.
func AllowedResumeExt(filename string) bool {
	return allowedResumeExts[strings.ToLower(filepath.Ext(filename))]
}

// Staging owns the on-disk directory where uploads live while a request is
// being processed. The directory is created before the first request.
type Staging struct {
	dir string
}

func NewStaging(dir string) (*Staging, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Staging{dir: dir}, nil
}

// StagedFile is an uploaded file owned exclusively by the request that staged
// it. Callers must arrange for Remove to run on every exit path. A StagedFile
// without a Path carries upload metadata only and owns nothing on disk.
type StagedFile struct {
	Path         string
	OriginalName string
	Size         int64

	removed bool
}

// Save writes the upload under a unique name and hands ownership of the
// staged file to the caller.
func (s *Staging) Save(fh *multipart.FileHeader) (*StagedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := "resume-" + uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			log.Error().Err(rmErr).Str("path", path).Msg("failed to remove partial staged file")
		}
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	return &StagedFile{Path: path, OriginalName: fh.Filename, Size: written}, nil
}

// Remove deletes the staged file. Safe to call more than once. A failed
// deletion is logged and never surfaced, so it cannot mask the response
// already decided for the request.
func (f *StagedFile) Remove() {
	if f == nil || f.removed || f.Path == "" {
		return
	}
	f.removed = true
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("path", f.Path).Msg("failed to remove staged resume")
	}
}
