// Package screen extracts, caches, and queries the on-device UI hierarchy.
package screen

// Element is one widget's attribute set as reported by the hierarchy dump.
// Keys are open: any attribute present on the source node becomes a key.
// Values are either bool (for the literal tokens "true"/"false") or string
// (everything else, including "True" and "1").
type Element map[string]any

// Condition is a partial attribute-equality predicate. A record matches iff
// every condition key exists on it with an exactly equal (type and value)
// value. Keys absent from the condition impose no constraint, so the empty
// condition matches every record.
type Condition map[string]any

// Matches reports whether e satisfies cond.
// A record lacking a condition key never matches, even if no record in the
// hierarchy has that key.
func (e Element) Matches(cond Condition) bool {
	for key, want := range cond {
		got, ok := e[key]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Project returns a copy of e reduced to the requested attribute keys.
// Keys absent on e are omitted from the projection, not filled with defaults.
func (e Element) Project(attrs []string) Element {
	out := make(Element, len(attrs))
	for _, attr := range attrs {
		if v, ok := e[attr]; ok {
			out[attr] = v
		}
	}
	return out
}

// Str returns the named attribute as a string.
// ok is false when the attribute is absent or boolean.
func (e Element) Str(attr string) (string, bool) {
	s, ok := e[attr].(string)
	return s, ok
}

// Bool returns the named attribute as a bool.
// ok is false when the attribute is absent or not boolean.
func (e Element) Bool(attr string) (bool, bool) {
	b, ok := e[attr].(bool)
	return b, ok
}

// Filter returns the records in els that satisfy cond, preserving order.
// An empty result is the ordinary "no match" outcome, not an error.
func Filter(els []Element, cond Condition) []Element {
	var result []Element
	for _, el := range els {
		if el.Matches(cond) {
			result = append(result, el)
		}
	}
	return result
}
