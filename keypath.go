package jsonconf

import "strings"

// KeySeparator separates the segments of a key path, e.g. "app.port".
const KeySeparator = "."

// splitKey turns a dotted key path into its segments. Surrounding
// whitespace and separators are trimmed first; the empty key yields no
// segments.
func splitKey(key string) []string {
	key = formatKey(key, KeySeparator)
	if key == "" {
		return nil
	}
	return strings.Split(key, KeySeparator)
}

// resolveValue walks segs through v. A lookup fails when the current value
// is not an object, the field is absent, or the field holds null: a null
// anywhere along the path, final segment included, counts as not found.
func resolveValue(v Value, segs []string) (Value, bool) {
	cur := v
	if cur.IsNull() {
		return Value{}, false
	}
	for _, seg := range segs {
		next, ok := cur.Field(seg)
		if !ok || next.IsNull() {
			return Value{}, false
		}
		cur = next
	}
	return cur, true
}

// setValue returns a copy of obj with the value at segs replaced by newVal.
// Intermediate objects are created where a segment is absent or holds a
// non-object; each ancestor along the path is rebuilt bottom-up so the
// assignment is visible from the returned root. Subtrees off the path are
// shared with obj, never copied.
func setValue(obj Value, segs []string, newVal Value) Value {
	fields := make(map[string]Value, obj.Len()+1)
	for k, f := range obj.Fields() {
		fields[k] = f
	}
	seg := segs[0]
	if len(segs) == 1 {
		fields[seg] = newVal
	} else {
		child, ok := fields[seg]
		if !ok || child.Kind() != KindObject {
			child = ObjectValue(nil)
		}
		fields[seg] = setValue(child, segs[1:], newVal)
	}
	return ObjectValue(fields)
}
