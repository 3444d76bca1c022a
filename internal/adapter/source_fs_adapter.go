// Package adapter contains filesystem and configuration adapters for the cpre CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/cpre/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when filtering user files. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get expands the roots into a flat, de-duplicated list of files.
	// Directories are walked recursively, depth-first, in lexical order.
	// A root or directory that cannot be read becomes a Source with Err set,
	// and the remaining roots are still expanded.
	Get(roots []m.Path, filter m.SourceFilter) ([]m.Source, error)

	// Walk traverses root and every directory beneath it.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file contents, keeping its permissions.
	WriteFile(path m.Path, content []byte) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, filter m.SourceFilter) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	match, err := newSourceMatcher(filter)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	add := func(root m.Path, path string, info os.FileInfo) {
		if !match(path) {
			return
		}

		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		sources = append(sources, m.Source{Origin: m.Path(path), Root: root, Size: info.Size()})
	}

	fail := func(root m.Path, path string, err error) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		sources = append(sources, m.Source{Origin: m.Path(path), Root: root, Err: err})
	}

	for _, root := range roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			fail(root, string(root), fmt.Errorf("root path error: %w", err))

			continue
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			fail(root, rootPath, fmt.Errorf("root path error: %w", err))

			continue
		}

		if !info.IsDir() {
			add(root, rootPath, info)

			continue
		}

		err = a.Walk(m.Path(rootPath), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				fail(root, path, err)

				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if info.Mode().IsRegular() {
				add(root, path, info)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over every entry under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected files is the purpose of the tool
	return os.ReadFile(string(path))
}

// WriteFile overwrites the file at path, keeping its existing mode.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	info, err := os.Stat(string(path))
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), content, info.Mode().Perm())
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func newSourceMatcher(filter m.SourceFilter) (func(path string) bool, error) {
	excludes := make([]*regexp.Regexp, 0, len(filter.Exclude))

	for _, pattern := range filter.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return func(path string) bool {
		for _, re := range excludes {
			if re.MatchString(path) {
				return false
			}
		}

		if len(filter.Extensions) == 0 {
			return true
		}

		for _, ext := range filter.Extensions {
			if strings.HasSuffix(path, normalizeExt(ext)) {
				return true
			}
		}

		return false
	}, nil
}

func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}

func normalizeRootPath(root string) (string, error) {
	rootStr := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}

// parseRootPath strips the Go-style "/..." suffix. Directories are always
// walked recursively, so the suffix is accepted for familiarity only.
func parseRootPath(rootStr string) string {
	if rootStr == "..." {
		return "."
	}

	return strings.TrimSuffix(rootStr, "/...")
}
