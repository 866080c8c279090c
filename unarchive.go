package main

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
	uuid "github.com/satori/go.uuid"
)

// unpackArchive extracts a zip/gz/lz4 input into a per-run scratch
// directory and returns the extracted file path. Non-archive inputs return
// "" and the caller keeps the original path. The source file is left
// untouched.
func unpackArchive(filePath string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return unpackZipArchive(filePath)
	case ".gz":
		return unpackStreamArchive(filePath, ".gz", func(r io.Reader) (io.Reader, error) {
			gr, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			return gr, nil
		})
	case ".lz4":
		return unpackStreamArchive(filePath, ".lz4", func(r io.Reader) (io.Reader, error) {
			return lz4.NewReader(r), nil
		})
	}
	return "", nil
}

func scratchDir() (string, error) {
	dir := filepath.Join(os.TempDir(), "aviation_accidents", uuid.NewV4().String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func unpackZipArchive(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// The spreadsheet is the largest entry, everything else in user
	// archives tends to be junk (__MACOSX, previews).
	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", nil
	}

	dir, err := scratchDir()
	if err != nil {
		return "", err
	}
	destPath := filepath.Join(dir, filepath.Base(largestFile.Name))
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	if _, err = io.Copy(outFile, rc); err != nil {
		return "", err
	}
	return destPath, nil
}

func unpackStreamArchive(filePath, ext string, open func(io.Reader) (io.Reader, error)) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader, err := open(file)
	if err != nil {
		return "", err
	}
	if c, ok := reader.(io.Closer); ok {
		defer c.Close()
	}

	dir, err := scratchDir()
	if err != nil {
		return "", err
	}
	destPath := filepath.Join(dir, strings.TrimSuffix(filepath.Base(filePath), ext))
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	if _, err = io.Copy(outFile, reader); err != nil {
		return "", err
	}
	return destPath, nil
}
