package jsonconf

// NopProvider is a no-op provider.
type NopProvider struct{}

var _ Provider = NopProvider{}

// Name implements Provider.
func (NopProvider) Name() string {
	return "no-op"
}

// Has returns false, no configuration is available.
func (NopProvider) Has(_ string) bool { return false }

// Get fails with ErrNotFound for every key.
func (NopProvider) Get(key string) (Value, error) {
	return Value{}, notFound(key)
}
