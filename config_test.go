package jsonconf

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "")

	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "Config", c.Dir)
	assert.Equal(t, ".json", c.Suffix)
	assert.Equal(t, "jsonconf:Config", c.Name())
}

func TestNew_InvalidOption(t *testing.T) {
	_, err := New(&Option{Suffix: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with a dot")

	_, err = New(&Option{Environments: []string{"prod/../../etc"}})
	require.Error(t, err)

	// Option problems are collected, not reported one at a time.
	_, err = New(&Option{Suffix: "json", Environments: []string{""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with a dot")
	assert.Contains(t, err.Error(), "invalid environment name")
}

func TestNew_EnvironmentSwitches(t *testing.T) {
	t.Setenv("CONFIG_ENV", "staging, production")
	t.Setenv("CONFIG_DEBUG_MODE", "true")

	c, err := New(nil)
	require.NoError(t, err)
	assert.True(t, c.Debug)
	assert.Equal(t, []string{"staging", "production"}, c.Environments())
}

func TestEnvironments_ExplicitWins(t *testing.T) {
	t.Setenv("CONFIG_ENV", "staging")

	c, err := New(&Option{Environments: []string{"production"}, Silent: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"production"}, c.Environments())
}

func TestEnvironments_TestBinaryDefault(t *testing.T) {
	t.Setenv("CONFIG_ENV", "")

	c, err := New(&Option{Silent: true})
	require.NoError(t, err)
	// os.Args[0] is a test binary here.
	assert.Equal(t, []string{"test"}, c.Environments())
}

// typedFixture loads a store with one "app" group for accessor tests.
func typedFixture(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json"), `{
		"port": 443,
		"host": "example.com",
		"debug": true,
		"timeout": "30s",
		"ratio": 0.25,
		"tls": {"cert": "a.pem", "key": "a.key"},
		"tags": ["x", "y"]
	}`)

	c := newTestConfig(t, dir, "production")
	require.NoError(t, c.Load())
	return c
}

func TestGet_TypedConversions(t *testing.T) {
	c := typedFixture(t)

	port, err := Get[int](c, "app.port")
	require.NoError(t, err)
	assert.Equal(t, 443, port)

	host, err := Get[string](c, "app.host")
	require.NoError(t, err)
	assert.Equal(t, "example.com", host)

	debug, err := Get[bool](c, "app.debug")
	require.NoError(t, err)
	assert.True(t, debug)

	timeout, err := Get[time.Duration](c, "app.timeout")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)

	ratio, err := Get[float64](c, "app.ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.25, ratio)

	tags, err := Get[[]string](c, "app.tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tags)

	// T = Value returns the resolved tree as-is.
	tls, err := Get[Value](c, "app.tls")
	require.NoError(t, err)
	assert.Equal(t, KindObject, tls.Kind())
}

func TestGet_NotFound(t *testing.T) {
	c := typedFixture(t)

	_, err := Get[string](c, "nonexistent.key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_ConversionError(t *testing.T) {
	c := typedFixture(t)

	_, err := Get[int](c, "app.host")
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "app.host", convErr.Key)
	assert.Equal(t, "int", convErr.Target)
}

func TestGetOr_Fallbacks(t *testing.T) {
	c := typedFixture(t)

	// Present key: fallback unused.
	assert.Equal(t, 443, GetOr(c, "app.port", 8080))
	// Absent key.
	assert.Equal(t, "default", GetOr(c, "nonexistent.key", "default"))
	// Present but unconvertible: fallback as well.
	assert.Equal(t, 7, GetOr(c, "app.host", 7))
}

func TestConfig_EmptyKey(t *testing.T) {
	c := typedFixture(t)

	v, err := c.Get(Root)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.True(t, c.Has(Root))
}

func TestConfig_SetIsInMemoryOnly(t *testing.T) {
	c := typedFixture(t)

	c.Set("app.port", NumberValue(9999))
	port, err := Get[int](c, "app.port")
	require.NoError(t, err)
	assert.Equal(t, 9999, port)

	// A fresh load of the same directory sees the file value again.
	c2 := newTestConfig(t, c.Dir, "production")
	require.NoError(t, c2.Load())
	assert.Equal(t, 443, GetOr(c2, "app.port", 0))
}

func TestUnmarshal_Struct(t *testing.T) {
	c := typedFixture(t)

	type TLS struct {
		Cert string `json:"cert"`
		Key  string `json:"key"`
	}
	type App struct {
		Port    int           `json:"port"`
		Host    string        `json:"host"`
		Timeout time.Duration `json:"timeout"`
		TLS     TLS           `json:"tls"`
	}

	var app App
	require.NoError(t, c.Unmarshal("app", &app))
	assert.Equal(t, 443, app.Port)
	assert.Equal(t, "example.com", app.Host)
	assert.Equal(t, 30*time.Second, app.Timeout)
	assert.Equal(t, TLS{Cert: "a.pem", Key: "a.key"}, app.TLS)
}

func TestUnmarshal_NotFound(t *testing.T) {
	c := typedFixture(t)

	var out struct{}
	assert.ErrorIs(t, c.Unmarshal("nope", &out), ErrNotFound)
}

func TestUnmarshal_ExpandsEnvVars(t *testing.T) {
	t.Setenv("JSONCONF_TEST_SECRET", "s3cr3t")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json"), `{"secret": "${JSONCONF_TEST_SECRET}"}`)

	c := newTestConfig(t, dir, "production")
	require.NoError(t, c.Load())

	var app struct {
		Secret string `json:"secret"`
	}
	require.NoError(t, c.Unmarshal("app", &app))
	assert.Equal(t, "s3cr3t", app.Secret)
}

func TestGetenv_Default(t *testing.T) {
	t.Setenv("JSONCONF_TEST_UNSET", "")
	assert.Equal(t, "fallback", Getenv("JSONCONF_TEST_UNSET", "fallback"))

	t.Setenv("JSONCONF_TEST_SET", "v")
	assert.Equal(t, "v", GetEnv("JSONCONF_TEST_SET", "fallback"))
}
