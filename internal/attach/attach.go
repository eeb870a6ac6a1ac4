// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package attach describes files the operator picks for sending.
//
// Only file system metadata is used: name, size and a MIME type guessed from
// the extension. File contents are never opened.
package attach

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/supportdesk-tui/internal/model"
)

// ErrIsDirectory is returned when a directory is picked instead of a file.
var ErrIsDirectory = errors.New("path is a directory")

// DefaultExtensions is the file picker filter used when the config does not
// override it.
var DefaultExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

// knownTypes pins the MIME types of the default extensions. The system MIME
// database is not consulted for them, so labels do not depend on the host.
var knownTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// File is a picked file.
type File struct {
	Path      string
	Name      string
	SizeBytes int64
	MIMEType  string // empty when unknown
}

// Stat builds a File from path without reading its content.
func Stat(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return File{
		Path:      path,
		Name:      info.Name(),
		SizeBytes: info.Size(),
		MIMEType:  TypeByName(info.Name()),
	}, nil
}

// TypeByName guesses a MIME type from the file extension.
func TypeByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if t, ok := knownTypes[ext]; ok {
		return t
	}
	return mime.TypeByExtension(ext)
}

// SizeLabel returns the size shown on the composer chip.
func (f File) SizeLabel() string {
	return model.FormatKB(f.SizeBytes)
}

// Attachment derives the metadata stored on a sent message.
func (f File) Attachment() *model.Attachment {
	att := model.NewAttachment(f.Name, f.SizeBytes, f.MIMEType)
	return &att
}

// NormalizeExtensions lower-cases extensions and adds the leading dot the
// file picker expects. Empty entries are dropped.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
