// Package completers provides stock candidate sources for arguments whose
// values come from the filesystem or a fixed set.
package completers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesCompleter completes file and directory paths. When Allowed is
// non-empty, plain files must match at least one of the glob patterns;
// directories are always offered, with a trailing slash so completion can
// continue into them.
type FilesCompleter struct {
	Allowed []string
}

// Complete lists entries under the directory portion of prefix.
func (c FilesCompleter) Complete(prefix string, _ map[string]string) []string {
	return listDir(prefix, func(name string, isDir bool) bool {
		if isDir {
			return true
		}
		if len(c.Allowed) == 0 {
			return true
		}
		for _, pattern := range c.Allowed {
			if ok, err := filepath.Match(pattern, name); err == nil && ok {
				return true
			}
		}
		return false
	})
}

// DirectoriesCompleter completes directory paths only.
type DirectoriesCompleter struct{}

// Complete lists directories under the directory portion of prefix.
func (DirectoriesCompleter) Complete(prefix string, _ map[string]string) []string {
	return listDir(prefix, func(_ string, isDir bool) bool {
		return isDir
	})
}

func listDir(prefix string, keep func(name string, isDir bool) bool) []string {
	dir := "."
	if i := strings.LastIndexByte(prefix, '/'); i >= 0 {
		dir = prefix[:i+1]
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		isDir := entry.IsDir()
		if !isDir && entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		if !keep(entry.Name(), isDir) {
			continue
		}
		name := entry.Name()
		if dir != "." {
			name = dir + name
		}
		if isDir {
			name += "/"
		}
		out = append(out, name)
	}
	return out
}

// ChoicesCompleter returns a completer that always offers the given values,
// stringified the same way choice lists are.
func ChoicesCompleter(choices ...any) func(prefix string, parsed map[string]string) []string {
	values := make([]string, len(choices))
	for i, c := range choices {
		values[i] = fmt.Sprint(c)
	}
	return func(string, map[string]string) []string {
		return values
	}
}
