// Package jsonconf resolves application configuration from a hierarchy of
// JSON documents into a single queryable store.
//
// A load pass scans a base directory for <group>.json files, then one
// subdirectory per active environment name in priority order, and folds
// every document into the per-group store with overlay-wins deep-merge
// semantics. A reserved secrets file (".env.json") is applied last; its
// top-level object fans overrides out across groups. Callers query the
// store with dotted key paths ("app.port") and typed accessors.
package jsonconf

import (
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/linxlib/jsonconf/internal/unreachable"
)

type Config struct {
	*Option
	store    *Store
	drivers  map[string]Driver
	aliasMap map[string]string
	log      zerolog.Logger
}

type Option struct {
	// Dir is the base configuration directory. Default "Config".
	Dir string
	// Environments lists the active environment names, in override
	// priority order (later names win). When empty the list is resolved
	// from CONFIG_ENV, see Environments.
	Environments []string
	// Suffix selects which files the scanner picks up. Default ".json".
	Suffix string
	// Seed pre-populates the store with initial group trees.
	Seed map[string]Value
	// Logger overrides the logger built from the Debug/Verbose/Silent
	// switches.
	Logger  *zerolog.Logger
	Debug   bool
	Verbose bool
	Silent  bool
	// You can use embed.FS or any other fs.FS to load configs from. Default - use "os" package
	FS fs.FS
}

// envOption mirrors the Option switches that can be driven by the process
// environment.
type envOption struct {
	Environment string `env:"CONFIG_ENV"`
	Debug       bool   `env:"CONFIG_DEBUG_MODE"`
	Verbose     bool   `env:"CONFIG_VERBOSE_MODE"`
	Silent      bool   `env:"CONFIG_SILENT_MODE"`
}

func defaultOption() Option {
	return Option{
		Dir:    "Config",
		Suffix: ".json",
	}
}

// New initialize a Config
func New(opt *Option) (*Config, error) {
	if opt == nil {
		opt = &Option{}
	}

	var envOpt envOption
	err := env.Parse(&envOpt)
	err = multierr.Append(err, mergo.Merge(opt, defaultOption()))

	if envOpt.Debug {
		opt.Debug = true
	}
	if envOpt.Verbose {
		opt.Verbose = true
	}
	if envOpt.Silent {
		opt.Silent = true
	}
	if len(opt.Environments) == 0 && envOpt.Environment != "" {
		opt.Environments = splitEnvList(envOpt.Environment)
	}

	err = multierr.Append(err, opt.validate())
	if err != nil {
		return nil, fmt.Errorf("invalid option: %w", err)
	}

	c := &Config{
		Option:   opt,
		store:    NewStore(opt.Seed),
		drivers:  map[string]Driver{},
		aliasMap: map[string]string{},
		log:      newLogger(opt),
	}
	c.RegisterDriver(JSONDriver)
	c.RegisterDriver(YamlDriver)
	return c, nil
}

func (o *Option) validate() error {
	var err error
	if !strings.HasPrefix(o.Suffix, ".") || len(o.Suffix) < 2 {
		err = multierr.Append(err, fmt.Errorf("suffix %q must start with a dot", o.Suffix))
	}
	for _, name := range o.Environments {
		if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			err = multierr.Append(err, fmt.Errorf("invalid environment name %q", name))
		}
	}
	return err
}

func newLogger(opt *Option) zerolog.Logger {
	if opt.Logger != nil {
		return *opt.Logger
	}
	if opt.Silent {
		return zerolog.Nop()
	}
	level := zerolog.WarnLevel
	if opt.Verbose {
		level = zerolog.InfoLevel
	}
	if opt.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

var testRegexp = regexp.MustCompile("_test|(\\.test$)")

// Environments returns the active environment names, in override priority
// order: Option.Environments when set, else a comma-separated CONFIG_ENV,
// else "test" when running under a test binary, else "development".
func (c *Config) Environments() []string {
	if len(c.Option.Environments) > 0 {
		return c.Option.Environments
	}
	if env := os.Getenv("CONFIG_ENV"); env != "" {
		return splitEnvList(env)
	}
	if testRegexp.MatchString(os.Args[0]) {
		return []string{"test"}
	}
	return []string{"development"}
}

func splitEnvList(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// RegisterDriver adds a serialization driver and its aliases to the registry.
func (c *Config) RegisterDriver(d Driver) {
	c.drivers[d.Name()] = d
	for _, alias := range d.Aliases() {
		c.aliasMap[alias] = d.Name()
	}
}

// Name implements Provider.
func (c *Config) Name() string { return "jsonconf:" + c.Dir }

// Has reports whether key resolves to a value.
func (c *Config) Has(key string) bool { return c.store.Has(key) }

// Get resolves a dotted key path, see Store.Get.
func (c *Config) Get(key string) (Value, error) { return c.store.Get(key) }

// Set assigns a value at a dotted key path, in memory only, see Store.Set.
func (c *Config) Set(key string, v Value) { c.store.Set(key, v) }

// Groups returns the group names currently in the store, sorted.
func (c *Config) Groups() []string { return c.store.Groups() }

// Unmarshal decodes the subtree at key into target, which must be a
// pointer. String leaves go through the env-expansion and duration decode
// hook; struct fields are matched by their json tags.
func (c *Config) Unmarshal(key string, target any) error {
	v, err := c.Get(key)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(decoderConfig(target))
	if err != nil {
		return err
	}
	if err := dec.Decode(v.Interface()); err != nil {
		return &ConversionError{Key: key, Target: fmt.Sprintf("%T", target), Err: err}
	}
	return nil
}

// Get resolves key through c and converts the result to T. It fails with
// ErrNotFound when the path is absent and with *ConversionError when the
// value cannot represent a T.
func Get[T any](c *Config, key string) (T, error) {
	var out T
	v, err := c.Get(key)
	if err != nil {
		return out, err
	}
	if direct, ok := any(v).(T); ok {
		return direct, nil
	}
	dec, err := mapstructure.NewDecoder(decoderConfig(&out))
	if err != nil {
		// &out is always a non-nil pointer.
		return out, unreachable.Wrap(err)
	}
	if err := dec.Decode(v.Interface()); err != nil {
		return out, &ConversionError{Key: key, Target: fmt.Sprintf("%T", out), Err: err}
	}
	return out, nil
}

// GetOr is Get with a fallback: any error, absent path or failed
// conversion, yields fallback.
func GetOr[T any](c *Config, key string, fallback T) T {
	out, err := Get[T](c, key)
	if err != nil {
		return fallback
	}
	return out
}

func decoderConfig(target any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       ValDecodeHookFunc(true, true),
	}
}
