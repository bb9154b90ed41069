package jsonconf

// Merge combines two Value trees. When both sides are objects the result
// contains the union of their keys, recursing for keys present in both.
// In every other case the overlay replaces the base entirely, including an
// overlay scalar replacing a base object and an explicit overlay null
// replacing whatever the base held.
//
// Neither input is modified; subtrees taken unchanged from either side are
// shared with the result.
func Merge(base, overlay Value) Value {
	if base.kind != KindObject || overlay.kind != KindObject {
		return overlay
	}
	fields := make(map[string]Value, len(base.o)+len(overlay.o))
	for k, bv := range base.o {
		fields[k] = bv
	}
	for k, ov := range overlay.o {
		if bv, ok := fields[k]; ok {
			fields[k] = Merge(bv, ov)
		} else {
			fields[k] = ov
		}
	}
	return ObjectValue(fields)
}
