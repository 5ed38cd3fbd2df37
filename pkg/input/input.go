// Package input reads concept-graph documents from disk.
package input

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/mmap"
)

// SnappySuffix marks inputs stored in the snappy block format.
const SnappySuffix = ".snappy"

var (
	// ErrUnreadable is returned when the input file cannot be opened or read.
	ErrUnreadable = errors.New("cannot read input file")

	// ErrInvalidJSON is returned when the input is not well-formed JSON.
	ErrInvalidJSON = errors.New("input is not valid JSON")
)

// File is a loaded input document.
type File struct {
	Path string

	// Doc holds generic JSON values (map[string]any, []any, float64, string,
	// bool, nil), ready for validation.ValidateDocument.
	Doc any

	// Size is the decoded JSON size in bytes.
	Size int

	// Digest is the hex BLAKE2b-256 of the decoded JSON, identifying the
	// input in logs independently of its path or compression.
	Digest string
}

// Open maps the file read-only, inflates it when the name ends in
// SnappySuffix, and decodes the JSON.
func Open(path string) (*File, error) {
	data, err := readMapped(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, SnappySuffix) {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: snappy: %w", ErrUnreadable, path, err)
		}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidJSON, path, err)
	}

	sum := blake2b.Sum256(data)
	return &File{
		Path:   path,
		Doc:    doc,
		Size:   len(data),
		Digest: hex.EncodeToString(sum[:]),
	}, nil
}

func readMapped(path string) ([]byte, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer reader.Close()

	data := make([]byte, reader.Len())
	if _, err := reader.ReadAt(data, 0); err != nil && len(data) > 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	return data, nil
}
