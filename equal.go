package jsonconf

// Equal reports whether two Values represent the same configuration data.
// Objects compare by key set and recursive field equality; field order is
// irrelevant. Numbers compare as float64.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.a) != len(other.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(other.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.o) != len(other.o) {
			return false
		}
		for k, f := range v.o {
			of, ok := other.o[k]
			if !ok || !f.Equal(of) {
				return false
			}
		}
		return true
	}
	return false
}
