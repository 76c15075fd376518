// File: pkg/gather/patterns.go
package gather

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	homedir "github.com/mitchellh/go-homedir"
)

// MatcherSet is an immutable disjunction of compiled glob patterns: a path
// matches the set when it matches at least one pattern.
type MatcherSet struct {
	patterns []string
}

// Matches reports whether the relative path matches any pattern in the set.
// Paths are normalized to forward slashes before matching.
func (m MatcherSet) Matches(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range m.patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// Len returns the number of compiled patterns in the set.
func (m MatcherSet) Len() int { return len(m.patterns) }

// BuildMatcherSets routes the raw command-line patterns into an include set and
// an exclude set. A leading '!' sends a pattern to the exclude set; a bare '!'
// is a no-op. Patterns without a path separator are prefixed with '**/' so a
// plain file name matches at any depth. Each pattern is shell-expanded and
// validated before it is admitted. If no include pattern was supplied at all,
// the include set is seeded with a single '**' catch-all so that exclude
// patterns alone can prune an otherwise-total selection.
func BuildMatcherSets(raw []string) (include, exclude MatcherSet, err error) {
	var includes, excludes []string

	for _, pattern := range raw {
		pattern = strings.TrimSpace(pattern)

		negate := strings.HasPrefix(pattern, "!")
		if negate {
			pattern = strings.TrimLeft(pattern, "!")
		}
		if pattern == "" {
			continue
		}

		pattern = normalizePattern(pattern)

		expanded, expandErr := expandPattern(pattern)
		if expandErr != nil {
			return MatcherSet{}, MatcherSet{}, fmt.Errorf("failed to expand pattern %q: %w", pattern, expandErr)
		}

		if !doublestar.ValidatePattern(expanded) {
			return MatcherSet{}, MatcherSet{}, fmt.Errorf("invalid glob pattern after expansion: %q", expanded)
		}

		if negate {
			excludes = append(excludes, expanded)
		} else {
			includes = append(includes, expanded)
		}
	}

	if len(includes) == 0 {
		includes = append(includes, "**")
	}

	return MatcherSet{patterns: includes}, MatcherSet{patterns: excludes}, nil
}

// normalizePattern prefixes bare file name patterns with a recursive wildcard
// so they match that name at any directory depth. Patterns that already carry
// a path separator are treated as anchored to the search root and left alone.
func normalizePattern(pattern string) string {
	if strings.ContainsRune(pattern, '/') || strings.ContainsRune(pattern, os.PathSeparator) {
		return pattern
	}
	return "**/" + pattern
}

// expandPattern resolves a leading '~' and any $VAR or ${VAR} references in
// the pattern. A reference to an unset environment variable is an error rather
// than a silent empty substitution.
func expandPattern(pattern string) (string, error) {
	expanded, err := homedir.Expand(pattern)
	if err != nil {
		return "", err
	}

	var expandErr error
	expanded = os.Expand(expanded, func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok && expandErr == nil {
			expandErr = fmt.Errorf("environment variable %q is not set", name)
		}
		return value
	})
	if expandErr != nil {
		return "", expandErr
	}
	return expanded, nil
}
