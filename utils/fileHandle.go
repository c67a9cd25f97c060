package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PDFMediaType is the only media type accepted for certificate uploads.
const PDFMediaType = "application/pdf"

// ErrUnsupportedMediaType is returned when an upload is not a PDF.
var ErrUnsupportedMediaType = errors.New("only PDF files are allowed")

// uploadFieldName is the fixed token stored file names start with.
const uploadFieldName = "certificate"

// ValidateMediaType checks the declared media type of an uploaded file
// before anything is written to disk.
func ValidateMediaType(file *multipart.FileHeader) error {
	if file.Header.Get("Content-Type") != PDFMediaType {
		return ErrUnsupportedMediaType
	}
	return nil
}

// SaveUploadedFile persists an uploaded certificate under destDir with a
// collision-resistant name and returns the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// field token + nanosecond timestamp + original extension, so
	// concurrent submissions never contend on the same path
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%d%s", uploadFieldName, time.Now().UnixNano(), ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// ResolveUploadPath maps a stored-file reference onto an absolute path
// under the upload root. Only the base name of the reference is used, so
// a client-supplied reference can never escape the store.
func ResolveUploadPath(destDir, ref string) string {
	base := filepath.Base(strings.TrimSpace(ref))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return filepath.Join(destDir, base)
}

// GetFileURL returns the public URL for a stored file.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/uploads/" + filepath.Base(filePath)
}
