package jsonconf

import (
	"errors"
)

type scopedProvider struct {
	Provider

	prefix string
}

var _ Provider = (*scopedProvider)(nil)

func (s *scopedProvider) Get(key string) (Value, error) {
	return s.Provider.Get(s.scope(key))
}

func (s *scopedProvider) Has(key string) bool {
	return s.Provider.Has(s.scope(key))
}

func (s *scopedProvider) scope(key string) string {
	if key == Root {
		return s.prefix
	}
	return s.prefix + KeySeparator + key
}

// NewScopedProvider wraps a provider and adds a prefix to all Get calls.
func NewScopedProvider(prefix string, provider Provider) Provider {
	if prefix == "" {
		return provider
	}
	return &scopedProvider{provider, prefix}
}

type providerGroup struct {
	name      string
	providers []Provider
}

var _ Provider = (*providerGroup)(nil)

// NewProviderGroup composes multiple providers, with later providers
// overriding earlier ones. Lookup walks the providers back to front and
// returns the first value found: whole-key precedence, not a deep merge of
// the underlying trees. Use a single Config with environment layering when
// merge semantics are wanted.
func NewProviderGroup(name string, providers ...Provider) (Provider, error) {
	if len(providers) == 0 {
		return nil, errors.New("provider group needs at least one provider")
	}
	return &providerGroup{name: name, providers: providers}, nil
}

// Name implements Provider.
func (g *providerGroup) Name() string { return g.name }

// Has implements Provider.
func (g *providerGroup) Has(key string) bool {
	_, err := g.Get(key)
	return err == nil
}

// Get implements Provider.
func (g *providerGroup) Get(key string) (Value, error) {
	for i := len(g.providers) - 1; i >= 0; i-- {
		if v, err := g.providers[i].Get(key); err == nil {
			return v, nil
		}
	}
	return Value{}, notFound(key)
}
