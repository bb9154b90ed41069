package jsonconf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetAndHas(t *testing.T) {
	s := NewStore(map[string]Value{
		"app": mustParse(t, `{"port": 80, "tls": {"cert": "a.pem"}, "empty": null}`),
	})

	v, err := s.Get("app.port")
	require.NoError(t, err)
	assert.Equal(t, 80.0, v.Float())

	v, err = s.Get("app.tls.cert")
	require.NoError(t, err)
	assert.Equal(t, "a.pem", v.Str())

	// Whole-group lookup.
	v, err = s.Get("app")
	require.NoError(t, err)
	assert.Equal(t, KindObject, v.Kind())

	// Has agrees with Get on every path.
	for _, key := range []string{"app", "app.port", "app.tls.cert", "app.missing", "nope", "app.port.deeper"} {
		_, err := s.Get(key)
		assert.Equal(t, err == nil, s.Has(key), "key %q", key)
	}
}

func TestStore_GetNotFound(t *testing.T) {
	s := NewStore(map[string]Value{"app": mustParse(t, `{"port": 80}`)})

	_, err := s.Get("nonexistent.key")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// Indexing into a non-object value fails.
	_, err = s.Get("app.port.deeper")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_NullCountsAsAbsent(t *testing.T) {
	s := NewStore(map[string]Value{
		"app":  mustParse(t, `{"mid": null, "leaf": {"x": null}}`),
		"gone": NullValue(),
	})

	// A null anywhere along resolution reports not found, final segment
	// included, and a null group entry behaves the same way.
	for _, key := range []string{"app.mid", "app.mid.deeper", "app.leaf.x", "gone", "gone.x"} {
		_, err := s.Get(key)
		assert.ErrorIs(t, err, ErrNotFound, "key %q", key)
		assert.False(t, s.Has(key), "key %q", key)
	}
}

func TestStore_EmptyKeyResolvesToNull(t *testing.T) {
	s := NewStore(nil)

	v, err := s.Get("")
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.True(t, s.Has(""))

	// Set with an empty key is a no-op.
	s.Set("", StringValue("x"))
	assert.Empty(t, s.Groups())
}

func TestStore_SetSingleSegmentReplacesGroup(t *testing.T) {
	s := NewStore(map[string]Value{"app": mustParse(t, `{"port": 80}`)})

	s.Set("app", mustParse(t, `{"host": "example.com"}`))

	assert.False(t, s.Has("app.port"))
	v, err := s.Get("app.host")
	require.NoError(t, err)
	assert.Equal(t, "example.com", v.Str())
}

func TestStore_SetNestedPersists(t *testing.T) {
	s := NewStore(map[string]Value{"app": mustParse(t, `{"port": 80, "tls": {"cert": "a.pem"}}`)})

	s.Set("app.tls.cert", StringValue("b.pem"))

	v, err := s.Get("app.tls.cert")
	require.NoError(t, err)
	assert.Equal(t, "b.pem", v.Str())

	// Siblings along the rebuilt spine are untouched.
	v, err = s.Get("app.port")
	require.NoError(t, err)
	assert.Equal(t, 80.0, v.Float())
}

func TestStore_SetCreatesIntermediateObjects(t *testing.T) {
	s := NewStore(nil)

	s.Set("app.a.b.c", NumberValue(1))

	v, err := s.Get("app.a.b.c")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Float())

	// A non-object in the way is replaced by an object.
	s.Set("app.a.b", StringValue("leaf"))
	s.Set("app.a.b.d", NumberValue(2))
	v, err = s.Get("app.a.b.d")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Float())
	_, err = s.Get("app.a.b.c")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_Groups(t *testing.T) {
	s := NewStore(map[string]Value{
		"b": ObjectValue(nil),
		"a": ObjectValue(nil),
	})
	s.Set("c", ObjectValue(nil))

	assert.Equal(t, []string{"a", "b", "c"}, s.Groups())
}

func TestStore_KeyWhitespaceTrimmed(t *testing.T) {
	s := NewStore(map[string]Value{"app": mustParse(t, `{"port": 80}`)})

	v, err := s.Get(" app.port ")
	require.NoError(t, err)
	assert.Equal(t, 80.0, v.Float())

	_, err = s.Get("app..port")
	assert.ErrorIs(t, err, ErrNotFound)
}
