package utils

import (
	"archive/zip"
	"compress/flate"
	"io"
	"os"
	"path/filepath"
)

// WriteZipArchive streams a compressed archive of the given stored-file
// references to w. References that do not resolve to a regular file under
// destDir are skipped; a partial archive is acceptable. Entries are named
// by base name only, so the layout of the store is not exposed.
func WriteZipArchive(w io.Writer, destDir string, refs []string) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	// filter down to resolvable files before writing any entry
	var paths []string
	for _, ref := range refs {
		fullPath := ResolveUploadPath(destDir, ref)
		if fullPath == "" {
			continue
		}
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		paths = append(paths, fullPath)
	}

	for _, fullPath := range paths {
		if err := addFileToZip(zw, fullPath); err != nil {
			zw.Close()
			return err
		}
	}

	// finalization flushes remaining buffered bytes and closes the stream
	return zw.Close()
}

func addFileToZip(zw *zip.Writer, fullPath string) error {
	src, err := os.Open(fullPath)
	if err != nil {
		return err
	}
	defer src.Close()

	entry, err := zw.Create(filepath.Base(fullPath))
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, src)
	return err
}
