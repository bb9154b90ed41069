package jsonconf

// Root is the empty key. Under the empty-path policy it resolves to a found
// null Value rather than the whole store; it exists mainly as the neutral
// prefix for NewScopedProvider.
const Root = ""

// Provider is a read-only view over a configuration store, such as a
// *Config populated from merged JSON files. Components should accept a
// Provider instead of reaching for process-wide state.
type Provider interface {
	Name() string                  // name of the configuration store
	Has(key string) bool           // reports whether key resolves to a value
	Get(key string) (Value, error) // retrieves a portion of the configuration
}

var _ Provider = (*Config)(nil)
