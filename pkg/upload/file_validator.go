package upload

import (
	"bytes"
	"path/filepath"
	"strings"

	"go-jobboard-backend/pkg/apperror"
)

// Magic byte signatures per allowed extension. Extension alone is never
// trusted; the payload must match one of the signatures for its extension.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},                           // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
	".txt":  {},                                                                           // no magic bytes
}

var documentExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MaxUploadSize bounds a single uploaded payload.
const MaxUploadSize = 10 << 20 // 10 MiB

func matchesMagic(ext string, content []byte) bool {
	signatures := magicBytes[ext]
	if len(signatures) == 0 {
		return true
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(content, sig) {
			return true
		}
	}
	return false
}

func validate(filename string, content []byte, allowed map[string]string) (ext, contentType string, err *apperror.AppError) {
	if len(content) == 0 {
		return "", "", apperror.BadRequest("Uploaded file is empty")
	}
	if len(content) > MaxUploadSize {
		return "", "", apperror.BadRequest("Uploaded file exceeds the size limit")
	}
	ext = strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowed[ext]
	if !ok {
		return "", "", apperror.BadRequest("File type is not allowed")
	}
	if !matchesMagic(ext, content) {
		return "", "", apperror.BadRequest("File content does not match its extension")
	}
	return ext, contentType, nil
}

// ValidateDocument checks a resume-style document upload (pdf/doc/docx/txt).
func ValidateDocument(filename string, content []byte) (ext, contentType string, err *apperror.AppError) {
	return validate(filename, content, documentExtensions)
}

// DocumentContentType returns the MIME type for a stored document handle,
// falling back to octet-stream for unknown extensions.
func DocumentContentType(name string) string {
	if contentType, ok := documentExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return contentType
	}
	return "application/octet-stream"
}

// ValidateImage checks an image upload (jpg/jpeg/png/gif/webp).
func ValidateImage(filename string, content []byte) (ext, contentType string, err *apperror.AppError) {
	return validate(filename, content, imageExtensions)
}
