package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("i/o failure")
)

// Read returns the content of path decoded as UTF-8 text.
func Read(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fileError("open", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fileError("stat", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: read %s: is a directory", ErrIO, path)
	}

	var dest strings.Builder
	src := bufio.NewReader(file)
	if _, err = io.Copy(&dest, src); err != nil {
		return "", fileError("read", path, err)
	}

	return dest.String(), nil
}

// Write replaces the content of path with everything read from src.
func Write(path string, src io.Reader) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return fileError("open", path, err)
	}

	w := bufio.NewWriter(file)
	if _, err = io.Copy(w, src); err != nil {
		file.Close()
		return fileError("write", path, err)
	}
	if err = w.Flush(); err != nil {
		file.Close()
		return fileError("write", path, err)
	}
	if err = file.Close(); err != nil {
		return fileError("close", path, err)
	}

	return nil
}

func fileError(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s %s: %w", ErrFileNotFound, op, path, err)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
