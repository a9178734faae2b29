// Package darchive unpacks application archives so their DEX files can be
// decoded.
package darchive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dex-chunker/dex/derror"
	"github.com/go-stdlog/stdlog"
	"github.com/pkg/errors"
)

var ErrUnsafePath = errors.New("archive entry escapes the output directory")

// Extract writes every entry of the archive under outputDir and returns the
// paths of the extracted files in archive order.
func Extract(archivePath string, outputDir string, log stdlog.Logger) ([]string, error) {
	if log == nil {
		log = stdlog.Discard
	}

	archive, err := zip.OpenReader(archivePath)
	// insecure names are still readable and get rejected per entry below
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && archive != nil) {
		return nil, derror.IOError{Op: "open", Path: archivePath, Err: err}
	}
	defer func() { _ = archive.Close() }()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, derror.IOError{Op: "mkdir", Path: outputDir, Err: err}
	}

	paths := make([]string, 0, len(archive.File))
	for _, file := range archive.File {
		target, err := entryPath(outputDir, file.Name)
		if err != nil {
			return paths, err
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return paths, derror.IOError{Op: "mkdir", Path: target, Err: err}
			}
			continue
		}
		if err := extractFile(file, target); err != nil {
			return paths, err
		}
		log.Debug("Extracted archive entry", "name", file.Name, "path", target)
		paths = append(paths, target)
	}

	log.Info("Extracted archive contents", "archive", archivePath, "output_dir", outputDir, "files", len(paths))
	return paths, nil
}

func entryPath(outputDir string, name string) (string, error) {
	target := filepath.Join(outputDir, name)
	rel, err := filepath.Rel(outputDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(ErrUnsafePath, `entry "%s"`, name)
	}
	return target, nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return derror.IOError{Op: "mkdir", Path: filepath.Dir(target), Err: err}
	}

	src, err := file.Open()
	if err != nil {
		return derror.IOError{Op: "read", Path: file.Name, Err: err}
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return derror.IOError{Op: "open", Path: target, Err: err}
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return derror.IOError{Op: "write", Path: target, Err: err}
	}
	if err := dst.Close(); err != nil {
		return derror.IOError{Op: "close", Path: target, Err: err}
	}
	return nil
}
