package util

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename keeps letters, digits, dots and dashes; everything else
// becomes an underscore. Matches the public URL charset used for uploads.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		}
		return '_'
	}, name)
}

// AllowedUploadType checks the declared MIME type against the allow-list,
// falling back to the file extension for clients that send octet-stream.
func AllowedUploadType(mimeType, filename string) bool {
	for _, allowed := range AllowedUploadMimeTypes {
		if mimeType == allowed {
			return true
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedUploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// FileTypeFromName maps an upload's extension to the section fileType enum.
func FileTypeFromName(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".doc", ".docx":
		return "word"
	case ".ppt", ".pptx":
		return "ppt"
	}
	return ""
}
