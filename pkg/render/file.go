package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dd0wney/cluso-kg/pkg/analysis"
	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// ErrUnsafePath is returned for output paths containing a ".." segment.
var ErrUnsafePath = errors.New("unsafe output path")

// CheckOutputPath rejects empty paths and any path with a parent-directory
// segment, whichever separator it uses.
func CheckOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, seg := range segments {
		if seg == ".." {
			return fmt.Errorf("%w: %q contains a parent directory segment", ErrUnsafePath, path)
		}
	}
	return nil
}

// WriteHTMLFile renders the HTML page into path. The page is written to a
// temporary file in the same directory and renamed into place, so a failed
// render never leaves a partial file behind.
func WriteHTMLFile(path string, report *analysis.Report, g *graph.Graph, opts HTMLOptions) error {
	if err := CheckOutputPath(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kg-*.html.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := HTML(tmp, report, g, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
