package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "lecture_1.pdf", SanitizeFilename("lecture 1.pdf"))
	assert.Equal(t, "a-b.c_d_.pdf", SanitizeFilename("a-b.c/d%.pdf"))
	assert.Equal(t, "____.pdf", SanitizeFilename("课程资料.pdf"))
}

func TestAllowedUploadType(t *testing.T) {
	assert.True(t, AllowedUploadType("application/pdf", "x.bin"))
	assert.True(t, AllowedUploadType("application/octet-stream", "slides.pptx"))
	assert.True(t, AllowedUploadType("", "notes.DOCX"))
	assert.False(t, AllowedUploadType("application/octet-stream", "malware.exe"))
	assert.False(t, AllowedUploadType("video/mp4", "lecture.mp4"))
}

func TestFileTypeFromName(t *testing.T) {
	assert.Equal(t, "pdf", FileTypeFromName("a.pdf"))
	assert.Equal(t, "word", FileTypeFromName("a.doc"))
	assert.Equal(t, "word", FileTypeFromName("a.docx"))
	assert.Equal(t, "ppt", FileTypeFromName("a.PPTX"))
	assert.Equal(t, "", FileTypeFromName("a.mp4"))
}
