package jsonconf

import (
	"io/fs"
	"os"
	"path"
	"strings"
)

// Load runs one load pass over the base directory from Option.Dir with the
// active environment names. See LoadDir.
func (c *Config) Load() error { return c.LoadDir(c.Dir) }

// LoadDir runs one load pass: scan dir, then dir/<environment> for each
// active environment name in order, parse every discovered file and fold it
// into the store group by group. Base files precede environment files in
// each group's list, so an environment file's keys override the base file's
// keys for the same group. The secrets overlay is applied last.
//
// Missing environment subdirectories are skipped. The pass aborts on the
// first read or parse failure and returns a *LoadError; groups merged
// before the failure remain in the store (no rollback). LoadDir may be
// called repeatedly, later passes merge into existing groups.
func (c *Config) LoadDir(dir string) error {
	groups := newFileGroups()
	if err := c.scanDir(dir, groups); err != nil {
		return err
	}
	for _, env := range c.Environments() {
		sub := path.Join(dir, env)
		if !c.dirExists(sub) {
			continue
		}
		if err := c.scanDir(sub, groups); err != nil {
			return err
		}
	}

	// The secrets group is handled after every regular group.
	secretFiles := groups.take(SecretsGroup)

	for _, name := range groups.order {
		for _, file := range groups.files[name] {
			v, err := c.readValue(file)
			if err != nil {
				return err
			}
			c.log.Debug().Str("group", name).Str("file", file).Msg("loaded configuration file")
			c.store.fold(name, v)
		}
	}
	return c.applySecrets(secretFiles)
}

// applySecrets parses each secrets file and merges its top-level fields
// into the groups they name. A document whose top level is not an object
// cannot fan out and is skipped; the skip is logged but, by contract, not
// an error.
func (c *Config) applySecrets(files []string) error {
	for _, file := range files {
		v, err := c.readValue(file)
		if err != nil {
			return err
		}
		if v.Kind() != KindObject {
			c.log.Warn().Str("file", file).Stringer("kind", v.Kind()).Msg("secrets document is not an object, skipping")
			continue
		}
		for name, overlay := range v.Fields() {
			c.store.fold(name, overlay)
		}
		c.log.Debug().Str("file", file).Int("groups", v.Len()).Msg("applied secrets overlay")
	}
	return nil
}

// readValue reads and parses one file into a Value using the driver
// registered for the file's extension.
func (c *Config) readValue(file string) (Value, error) {
	readFile := os.ReadFile
	if c.FS != nil {
		readFile = func(name string) ([]byte, error) {
			return fs.ReadFile(c.FS, name)
		}
	}
	data, err := readFile(file)
	if err != nil {
		return Value{}, &LoadError{Path: file, Err: err}
	}

	var raw any
	if err := c.driverFor(file).Decode(data, &raw); err != nil {
		return Value{}, &LoadError{Path: file, Err: err}
	}
	v, err := FromAny(raw)
	if err != nil {
		return Value{}, &LoadError{Path: file, Err: err}
	}
	return v, nil
}

// driverFor picks a registered driver by file extension, resolving aliases.
// JSON is the fallback.
func (c *Config) driverFor(file string) Driver {
	ext := strings.TrimPrefix(path.Ext(file), ".")
	if d, ok := c.drivers[c.resolveFormat(ext)]; ok {
		return d
	}
	return JSONDriver
}
