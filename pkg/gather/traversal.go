// File: pkg/gather/traversal.go
package gather

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"globclip/pkg/ignore"

	"go.uber.org/zap"
)

// CollectFiles walks the tree rooted at root and returns the slash-form
// relative paths of every regular file selected by the include/exclude matcher
// pair, in the walker's lexical emission order. The walk honors per-directory
// .gitignore files, skips hidden entries, does not follow symlinks, and prunes
// below maxDepth when it is non-negative. Any traversal error is fatal for the
// whole run.
func CollectFiles(root string, maxDepth int, include, exclude MatcherSet, logger *zap.Logger) ([]string, error) {
	eng := ignore.NewEngine()

	var selected []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("traversal failed at %s: %w", path, walkErr)
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			// Defensive fallback for entries outside the root prefix; should
			// not happen under normal traversal.
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if relPath == "." {
			if d.IsDir() {
				return eng.LoadDir(path, "")
			}
			return nil
		}

		if maxDepth >= 0 && pathDepth(relPath) > maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(filepath.Base(path), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if eng.Ignored(relPath, true) {
				logger.Debug("Skipping ignored directory", zap.String("path", relPath))
				return filepath.SkipDir
			}
			return eng.LoadDir(path, relPath)
		}

		if eng.Ignored(relPath, false) {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !include.Matches(relPath) || exclude.Matches(relPath) {
			return nil
		}

		logger.Debug("Matched file", zap.String("path", relPath))
		selected = append(selected, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Total matching files", zap.Int("count", len(selected)))
	return selected, nil
}

// pathDepth counts how many directory levels below the root a slash-form
// relative path sits; direct children of the root are at depth 1.
func pathDepth(relPath string) int {
	return strings.Count(relPath, "/") + 1
}
