package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const sourceExt = ".html"

// collectHTMLPaths resolves Go-like patterns relative to cwd into absolute,
// de-duplicated *.html paths in pattern order.
func collectHTMLPaths(cwd string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	add := func(p string) error {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
		return nil
	}

	for _, raw := range patterns {
		pat := strings.TrimSpace(raw)
		if pat == "" {
			continue
		}
		target, recursive := splitPattern(pat)
		target, err := filepath.Abs(resolve(cwd, target))
		if err != nil {
			return nil, err
		}

		if recursive {
			if err := scanDir(target, true, add); err != nil {
				return nil, err
			}
			continue
		}
		st, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		switch {
		case st.IsDir():
			err = scanDir(target, false, add)
		case strings.HasSuffix(target, sourceExt):
			err = add(target)
		default:
			err = fmt.Errorf("fritz2html: not a %s file: %s", sourceExt, target)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// splitPattern strips a trailing "/..." (or a bare "...") and reports whether
// the pattern asked for recursion.
func splitPattern(pat string) (string, bool) {
	if pat == "..." {
		return ".", true
	}
	if base, ok := strings.CutSuffix(pat, "/..."); ok {
		if base == "" {
			base = "/"
		}
		return base, true
	}
	return pat, false
}

func resolve(cwd, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}

// scanDir adds every *.html file in root. Subdirectories are visited only
// when recursive, and never vendor, node_modules, build or dot directories.
func scanDir(root string, recursive bool, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if path == root {
				return nil
			}
			name := de.Name()
			if !recursive || name == "vendor" || name == "node_modules" || name == "build" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(de.Name(), sourceExt) {
			return add(path)
		}
		return nil
	})
}
