// Package ignore implements gitignore-style exclusion rules for the directory
// walker. Each directory visited during a walk may contribute a .gitignore
// file; its patterns apply to everything beneath that directory, and '!' lines
// re-admit previously ignored paths.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IgnoreFileName is the per-directory rules file honored by the walker.
const IgnoreFileName = ".gitignore"

// Pattern is one compiled rule line.
type Pattern struct {
	re       *regexp.Regexp // Compiled matcher for the rule.
	Negate   bool           // True for '!' lines that re-admit a path.
	RootOnly bool           // True for lines anchored with a leading '/'.
	Line     string         // Original rule text.
	LineNo   int            // 1-based line number in the source file.
}

// group holds the rules loaded from one directory's ignore file.
type group struct {
	dir      string // Slash-form path of the directory relative to the walk root; "" for the root itself.
	patterns []*Pattern
}

// Engine accumulates ignore rules as a walk descends the tree. Rules are
// scoped: a group loaded for a directory only applies to paths beneath it.
type Engine struct {
	groups []group
}

// NewEngine returns an empty engine that ignores nothing.
func NewEngine() *Engine {
	return &Engine{}
}

// LoadDir reads the ignore file inside dirAbs, if one exists, and registers
// its rules scoped to relDir (slash form, "" for the walk root). A missing
// ignore file is not an error.
func (e *Engine) LoadDir(dirAbs, relDir string) error {
	content, err := os.ReadFile(filepath.Join(dirAbs, IgnoreFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read ignore file in %s: %w", dirAbs, err)
	}

	g := group{dir: relDir}
	for i, line := range strings.Split(string(content), "\n") {
		pattern := compileLine(line, i+1)
		if pattern != nil {
			g.patterns = append(g.patterns, pattern)
		}
	}
	if len(g.patterns) > 0 {
		e.groups = append(e.groups, g)
	}
	return nil
}

// AddLines registers extra rule lines scoped to the walk root, for rules that
// do not come from a file.
func (e *Engine) AddLines(lines ...string) {
	g := group{}
	for i, line := range lines {
		pattern := compileLine(line, i+1)
		if pattern != nil {
			g.patterns = append(g.patterns, pattern)
		}
	}
	if len(g.patterns) > 0 {
		e.groups = append(e.groups, g)
	}
}

// Ignored reports whether the slash-form path relative to the walk root is
// excluded by the rules loaded so far. Directories are matched with a trailing
// slash so that directory-only rules ("build/") apply. The last matching rule
// wins, so a negation can re-admit a path an earlier rule excluded.
func (e *Engine) Ignored(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	if isDir && !strings.HasSuffix(relPath, "/") {
		relPath += "/"
	}

	ignored := false
	for _, g := range e.groups {
		local := relPath
		if g.dir != "" {
			if !strings.HasPrefix(relPath, g.dir+"/") {
				continue
			}
			local = strings.TrimPrefix(relPath, g.dir+"/")
		}
		for _, pattern := range g.patterns {
			if pattern.re.MatchString(local) {
				ignored = !pattern.Negate
			}
		}
	}
	return ignored
}

// compileLine turns one ignore file line into a compiled Pattern. Blank lines
// and '#' comments yield nil, as do lines whose translated regex fails to
// compile; malformed rules are skipped rather than fatal, matching the
// tolerance version-control tools show for their own ignore files.
func compileLine(line string, lineNo int) *Pattern {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	rootOnly := strings.HasPrefix(trimmed, "/")
	body := strings.TrimPrefix(trimmed, "/")
	if body == "" {
		return nil
	}

	expr := anchorExpr(translateBody(body), body, rootOnly)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}

	return &Pattern{
		re:       re,
		Negate:   negate,
		RootOnly: rootOnly,
		Line:     line,
		LineNo:   lineNo,
	}
}

// translateBody converts an ignore rule body into a regular expression in one
// pass. '**' bounded by separators spans any number of directory levels,
// including zero; a single '*' or '?' never crosses a separator; every other
// character is matched literally.
func translateBody(body string) string {
	var b strings.Builder
	for i := 0; i < len(body); {
		switch body[i] {
		case '*':
			atSegmentStart := i == 0 || body[i-1] == '/'
			if atSegmentStart && strings.HasPrefix(body[i:], "**/") {
				b.WriteString(`(|([^/]+/)*)`)
				i += 3
				continue
			}
			if atSegmentStart && body[i:] == "**" {
				b.WriteString(`.*`)
				i += 2
				continue
			}
			b.WriteString(`[^/]*`)
			i++
		case '?':
			b.WriteString(`[^/]`)
			i++
		default:
			b.WriteString(regexp.QuoteMeta(body[i : i+1]))
			i++
		}
	}
	return b.String()
}

// anchorExpr anchors the translated expression to whole relative paths.
// Directory rules (trailing '/') match the directory and everything under it;
// other rules also match when the named entry turns out to be a directory.
// Root-anchored rules match only at the top of their scope; everything else
// matches at any depth beneath it.
func anchorExpr(expr, original string, rootOnly bool) string {
	if strings.HasSuffix(original, "/") {
		expr += `(.*)?$`
	} else {
		expr += `(|/.*)?$`
	}
	if rootOnly {
		return "^" + expr
	}
	return `^(|.*/)` + expr
}
