// Package validation enforces the upload policy for resume files before
// they reach the extraction pipeline.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxFileSize is the upload size ceiling.
const DefaultMaxFileSize = 10 << 20 // 10MB

// maxFilenameLength caps accepted filename lengths.
const maxFilenameLength = 255

// dangerousFragments are rejected anywhere in a filename: path
// separators, traversal sequences, and shell-hostile characters.
var dangerousFragments = []string{
	"../", "..\\", "/", "\\", ":", "*", "?", `"`, "<", ">", "|",
}

// allowedExtensions maps accepted suffixes to the MIME prefixes the
// actual content may carry. DOC/DOCX share zip/ole containers, so the
// sniffed type is checked loosely there.
var allowedExtensions = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".png":  {"image/png"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".tiff": {"image/tiff"},
	".bmp":  {"image/bmp", "image/x-ms-bmp"},
}

// Policy is the configured upload policy.
type Policy struct {
	MaxFileSize int
}

// DefaultPolicy returns the standard policy.
func DefaultPolicy() Policy {
	return Policy{MaxFileSize: DefaultMaxFileSize}
}

// ValidateUpload checks filename, size, extension, and sniffed content
// type. It returns a *PolicyError describing the first violation found.
func (p Policy) ValidateUpload(filename string, content []byte) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}

	if len(content) == 0 {
		return &PolicyError{Filename: filename, Reason: "file is empty"}
	}
	if p.MaxFileSize > 0 && len(content) > p.MaxFileSize {
		return &PolicyError{
			Filename: filename,
			Reason:   fmt.Sprintf("file size %d exceeds limit %d", len(content), p.MaxFileSize),
		}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowedMIMEs, ok := allowedExtensions[ext]
	if !ok {
		return &PolicyError{
			Filename: filename,
			Reason:   fmt.Sprintf("extension %q is not allowed", ext),
		}
	}

	// Sniff the actual bytes; the extension alone is attacker-controlled.
	detected := mimetype.Detect(content)
	for _, allowed := range allowedMIMEs {
		if detected.Is(allowed) {
			return nil
		}
	}
	return &PolicyError{
		Filename: filename,
		Reason:   fmt.Sprintf("content type %s does not match extension %q", detected.String(), ext),
	}
}

// ValidateFilename rejects empty, oversized, and path-hostile filenames.
func ValidateFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return &PolicyError{Reason: "filename is required"}
	}
	if len(filename) > maxFilenameLength {
		return &PolicyError{Filename: filename, Reason: "filename too long"}
	}
	for _, fragment := range dangerousFragments {
		if strings.Contains(filename, fragment) {
			return &PolicyError{
				Filename: filename,
				Reason:   fmt.Sprintf("filename contains invalid sequence %q", fragment),
			}
		}
	}
	return nil
}
