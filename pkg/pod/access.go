package pod

import "unicode/utf8"

// SeqAccess is a forward-only cursor over the elements of an array Pod.
// It borrows the underlying slice; it must not outlive the Pod it was
// created from.
type SeqAccess struct {
	elems []Pod
	next  int
}

// Next returns the next element, or false when the sequence is exhausted.
func (a *SeqAccess) Next() (Pod, bool) {
	if a.next >= len(a.elems) {
		return Null, false
	}
	e := a.elems[a.next]
	a.next++
	return e, true
}

// Remaining returns the number of unread elements.
func (a *SeqAccess) Remaining() int { return len(a.elems) - a.next }

// MapAccess is a forward-only cursor over the entries of a mapping Pod.
// Keys and values are read in alternation; requesting a value before its
// key is an error.
type MapAccess struct {
	keys    []string
	vals    []Pod
	next    int
	pending bool
}

// NextKey returns the next entry's key, or false when the mapping is
// exhausted.
func (a *MapAccess) NextKey() (string, bool) {
	if a.next >= len(a.keys) {
		return "", false
	}
	a.pending = true
	return a.keys[a.next], true
}

// NextValue returns the value belonging to the key most recently returned
// by NextKey.
func (a *MapAccess) NextValue() (Pod, error) {
	if !a.pending {
		return Null, &DecodeError{Msg: "value requested before key"}
	}
	v := a.vals[a.next]
	a.next++
	a.pending = false
	return v, nil
}

// Remaining returns the number of unread entries.
func (a *MapAccess) Remaining() int { return len(a.keys) - a.next }

// EnumAccess exposes a Pod interpreted as an enum variant. Two shapes are
// accepted by [Pod.Enum]: a bare string names a unit variant, and a
// single-entry mapping names a variant carrying the entry's value as its
// payload.
type EnumAccess struct {
	variant string
	payload Pod
}

// Variant returns the variant name.
func (a *EnumAccess) Variant() string { return a.variant }

// Payload returns the raw payload; Null for unit variants.
func (a *EnumAccess) Payload() Pod { return a.payload }

// Unit validates that the variant carries no payload.
func (a *EnumAccess) Unit() error {
	if !a.payload.IsNull() {
		return &TypeError{Expected: "null for unit variant", Actual: a.payload.kind}
	}
	return nil
}

// Tuple returns a sequence cursor over the payload, which must be an
// array.
func (a *EnumAccess) Tuple() (*SeqAccess, error) {
	if a.payload.kind != KindArray {
		return nil, &TypeError{Expected: "array for tuple variant", Actual: a.payload.kind}
	}
	return &SeqAccess{elems: a.payload.arr}, nil
}

// Struct returns a mapping cursor over the payload, which must be a
// mapping.
func (a *EnumAccess) Struct() (*MapAccess, error) {
	if a.payload.kind != KindMapping {
		return nil, &TypeError{Expected: "mapping for struct variant", Actual: a.payload.kind}
	}
	return a.payload.mapAccess(), nil
}

// Seq returns a cursor over an array Pod's elements.
func (p Pod) Seq() (*SeqAccess, error) {
	if p.kind != KindArray {
		return nil, &TypeError{Expected: KindArray.String(), Actual: p.kind}
	}
	return &SeqAccess{elems: p.arr}, nil
}

// Map returns a cursor over a mapping Pod's entries.
func (p Pod) Map() (*MapAccess, error) {
	if p.kind != KindMapping {
		return nil, &TypeError{Expected: KindMapping.String(), Actual: p.kind}
	}
	return p.mapAccess(), nil
}

func (p Pod) mapAccess() *MapAccess {
	a := &MapAccess{
		keys: make([]string, 0, len(p.obj)),
		vals: make([]Pod, 0, len(p.obj)),
	}
	for k, v := range p.obj {
		a.keys = append(a.keys, k)
		a.vals = append(a.vals, v)
	}
	return a
}

// Enum interprets p as an enum variant. A string Pod names a unit variant
// with a Null payload; a mapping Pod with exactly one entry names the
// variant by its key with the entry's value as payload. A mapping with any
// other entry count is ambiguous, and all remaining tags are rejected.
func (p Pod) Enum() (*EnumAccess, error) {
	switch p.kind {
	case KindString:
		return &EnumAccess{variant: p.str, payload: Null}, nil
	case KindMapping:
		if len(p.obj) != 1 {
			return nil, decodeErrorf("ambiguous enum representation: mapping with %d entries, want exactly 1", len(p.obj))
		}
		for k, v := range p.obj {
			return &EnumAccess{variant: k, payload: v}, nil
		}
	}
	return nil, &TypeError{Expected: "string or single-entry mapping for enum", Actual: p.kind}
}

// Char returns the single code point of a one-character string Pod.
func (p Pod) Char() (rune, error) {
	if p.kind != KindString {
		return 0, &TypeError{Expected: KindString.String(), Actual: p.kind}
	}
	r, size := utf8.DecodeRuneInString(p.str)
	if p.str == "" || size != len(p.str) || (r == utf8.RuneError && size == 1) {
		return 0, decodeErrorf("expected single character, got %q", p.str)
	}
	return r, nil
}

// Bytes returns the raw bytes of a string Pod.
func (p Pod) Bytes() ([]byte, error) {
	if p.kind != KindString {
		return nil, &TypeError{Expected: KindString.String(), Actual: p.kind}
	}
	return []byte(p.str), nil
}
