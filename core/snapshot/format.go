package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a snapshot encoding.
type Format string

const (
	JSON    Format = "json"
	Msgpack Format = "msgpack"
)

// ErrUnknownFormat is returned for encodings the codec does not handle.
var ErrUnknownFormat = errors.New("snapshot: unknown format")

// ParseFormat accepts a format name, case insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "msgpack", "mpk":
		return Msgpack, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	return f, nil
}
