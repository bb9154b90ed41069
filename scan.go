package jsonconf

import (
	"io/fs"
	"os"
	"path"
	"strings"
)

// SecretsGroup is the reserved group name the secrets overlay file maps to.
// The file itself is named SecretsGroup plus the configured suffix,
// ".env.json" by default.
const SecretsGroup = ".env"

// fileGroups maps group names to the files discovered for them, preserving
// first-seen group order and per-group discovery order. Built per load
// pass, consumed once.
type fileGroups struct {
	order []string
	files map[string][]string
}

func newFileGroups() *fileGroups {
	return &fileGroups{files: map[string][]string{}}
}

func (g *fileGroups) add(name, file string) {
	if _, ok := g.files[name]; !ok {
		g.order = append(g.order, name)
	}
	g.files[name] = append(g.files[name], file)
}

// take removes a group from the map and returns its file list.
func (g *fileGroups) take(name string) []string {
	files := g.files[name]
	delete(g.files, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i:i], g.order[i+1:]...)
			break
		}
	}
	return files
}

func (c *Config) secretsFile() string { return SecretsGroup + c.Suffix }

// scanDir lists the entries directly inside dir (non-recursive) and appends
// every file matching the configured suffix to its group's file list, in
// directory-listing order. The group name is the filename with the suffix
// stripped; the reserved secrets filename maps to SecretsGroup.
func (c *Config) scanDir(dir string, groups *fileGroups) error {
	readDir := os.ReadDir
	if c.FS != nil {
		readDir = func(name string) ([]os.DirEntry, error) {
			return fs.ReadDir(c.FS, name)
		}
	}

	entries, err := readDir(dir)
	if err != nil {
		return &LoadError{Path: dir, Err: err}
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), c.Suffix) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), c.Suffix)
		if entry.Name() == c.secretsFile() {
			name = SecretsGroup
		}
		if name == "" {
			continue
		}
		groups.add(name, path.Join(dir, entry.Name()))
	}
	return nil
}

// dirExists reports whether name exists and is a directory.
func (c *Config) dirExists(name string) bool {
	stat := os.Stat
	if c.FS != nil {
		stat = func(name string) (os.FileInfo, error) {
			return fs.Stat(c.FS, name)
		}
	}
	info, err := stat(name)
	return err == nil && info.IsDir()
}
