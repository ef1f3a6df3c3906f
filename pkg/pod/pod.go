package pod

// Kind identifies the shape a Pod currently holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindArray
	KindMapping
)

// String returns the lower-case tag name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// Pod is a dynamic, recursively defined value. The zero value is null.
//
// Pods are cheap to copy; array and mapping payloads are shared between
// copies, so treat a Pod as immutable once it leaves the engine that built
// it. The mutating helpers (SetIndex, SetKey, Push, ...) exist for
// programmatic construction and are not used on the parse path.
type Pod struct {
	kind Kind
	str  string
	num  int64
	fnum float64
	flag bool
	arr  []Pod
	obj  map[string]Pod
}

// Null is the null Pod.
var Null = Pod{}

// StringVal returns a string Pod.
func StringVal(s string) Pod { return Pod{kind: KindString, str: s} }

// IntegerVal returns an integer Pod.
func IntegerVal(i int64) Pod { return Pod{kind: KindInteger, num: i} }

// FloatVal returns a float Pod.
func FloatVal(f float64) Pod { return Pod{kind: KindFloat, fnum: f} }

// BooleanVal returns a boolean Pod.
func BooleanVal(b bool) Pod { return Pod{kind: KindBoolean, flag: b} }

// NewArray returns an empty array Pod.
func NewArray() Pod { return Pod{kind: KindArray, arr: []Pod{}} }

// ArrayVal returns an array Pod holding elems.
func ArrayVal(elems ...Pod) Pod { return Pod{kind: KindArray, arr: elems} }

// NewMapping returns an empty mapping Pod.
func NewMapping() Pod { return Pod{kind: KindMapping, obj: map[string]Pod{}} }

// MappingVal returns a mapping Pod holding entries. The map is used as-is,
// not copied.
func MappingVal(entries map[string]Pod) Pod {
	if entries == nil {
		entries = map[string]Pod{}
	}
	return Pod{kind: KindMapping, obj: entries}
}

// Kind returns the tag of p.
func (p Pod) Kind() Kind { return p.kind }

// IsNull reports whether p is the null Pod.
func (p Pod) IsNull() bool { return p.kind == KindNull }

// AsString returns the stored string, or a *TypeError for any other tag.
func (p Pod) AsString() (string, error) {
	if p.kind != KindString {
		return "", &TypeError{Expected: KindString.String(), Actual: p.kind}
	}
	return p.str, nil
}

// AsInt64 returns the stored integer, or a *TypeError for any other tag.
func (p Pod) AsInt64() (int64, error) {
	if p.kind != KindInteger {
		return 0, &TypeError{Expected: KindInteger.String(), Actual: p.kind}
	}
	return p.num, nil
}

// AsFloat64 returns the stored float, or a *TypeError for any other tag.
// Integers are not widened here; use Decode for coercing conversions.
func (p Pod) AsFloat64() (float64, error) {
	if p.kind != KindFloat {
		return 0, &TypeError{Expected: KindFloat.String(), Actual: p.kind}
	}
	return p.fnum, nil
}

// AsBool returns the stored boolean, or a *TypeError for any other tag.
func (p Pod) AsBool() (bool, error) {
	if p.kind != KindBoolean {
		return false, &TypeError{Expected: KindBoolean.String(), Actual: p.kind}
	}
	return p.flag, nil
}

// AsArray returns the stored element slice, or a *TypeError for any other
// tag. The slice is shared with p.
func (p Pod) AsArray() ([]Pod, error) {
	if p.kind != KindArray {
		return nil, &TypeError{Expected: KindArray.String(), Actual: p.kind}
	}
	return p.arr, nil
}

// AsMapping returns the stored map, or a *TypeError for any other tag. The
// map is shared with p.
func (p Pod) AsMapping() (map[string]Pod, error) {
	if p.kind != KindMapping {
		return nil, &TypeError{Expected: KindMapping.String(), Actual: p.kind}
	}
	return p.obj, nil
}

// Len returns the element count for arrays and mappings, 0 for everything
// else.
func (p Pod) Len() int {
	switch p.kind {
	case KindArray:
		return len(p.arr)
	case KindMapping:
		return len(p.obj)
	}
	return 0
}

// IsEmpty reports whether Len is zero.
func (p Pod) IsEmpty() bool { return p.Len() == 0 }

// Index returns the i-th element of an array Pod. Out-of-bounds indexes
// and non-array receivers yield Null.
func (p Pod) Index(i int) Pod {
	if p.kind != KindArray || i < 0 || i >= len(p.arr) {
		return Null
	}
	return p.arr[i]
}

// SetIndex stores v at position i, padding with Null as needed. A
// non-array receiver is replaced by a fresh array first.
func (p *Pod) SetIndex(i int, v Pod) {
	if i < 0 {
		return
	}
	if p.kind != KindArray {
		*p = NewArray()
	}
	for len(p.arr) <= i {
		p.arr = append(p.arr, Null)
	}
	p.arr[i] = v
}

// Key returns the value stored under k in a mapping Pod. Missing keys and
// non-mapping receivers yield Null.
func (p Pod) Key(k string) Pod {
	if p.kind != KindMapping {
		return Null
	}
	return p.obj[k]
}

// SetKey stores v under k. A non-mapping receiver is replaced by a fresh
// mapping first.
func (p *Pod) SetKey(k string, v Pod) {
	if p.kind != KindMapping {
		*p = NewMapping()
	}
	p.obj[k] = v
}

// Push appends v to an array Pod. Returns a *TypeError for any other tag.
func (p *Pod) Push(v Pod) error {
	if p.kind != KindArray {
		return &TypeError{Expected: KindArray.String(), Actual: p.kind}
	}
	p.arr = append(p.arr, v)
	return nil
}

// Pop removes and returns the last element of an array Pod, or Null when
// the array is empty or the receiver is not an array.
func (p *Pod) Pop() Pod {
	if p.kind != KindArray || len(p.arr) == 0 {
		return Null
	}
	last := p.arr[len(p.arr)-1]
	p.arr = p.arr[:len(p.arr)-1]
	return last
}

// Remove deletes k from a mapping Pod and returns the removed value, or
// Null when the key is absent or the receiver is not a mapping.
func (p *Pod) Remove(k string) Pod {
	if p.kind != KindMapping {
		return Null
	}
	v, ok := p.obj[k]
	if !ok {
		return Null
	}
	delete(p.obj, k)
	return v
}

// Take returns the current value and resets the receiver to Null.
func (p *Pod) Take() Pod {
	v := *p
	*p = Null
	return v
}

// Equal reports deep structural equality.
func (p Pod) Equal(o Pod) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case KindNull:
		return true
	case KindString:
		return p.str == o.str
	case KindInteger:
		return p.num == o.num
	case KindFloat:
		return p.fnum == o.fnum
	case KindBoolean:
		return p.flag == o.flag
	case KindArray:
		if len(p.arr) != len(o.arr) {
			return false
		}
		for i := range p.arr {
			if !p.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(p.obj) != len(o.obj) {
			return false
		}
		for k, v := range p.obj {
			ov, ok := o.obj[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface returns the canonical native rendering of p: nil, string,
// int64, float64, bool, []any or map[string]any.
func (p Pod) Interface() any {
	switch p.kind {
	case KindString:
		return p.str
	case KindInteger:
		return p.num
	case KindFloat:
		return p.fnum
	case KindBoolean:
		return p.flag
	case KindArray:
		out := make([]any, len(p.arr))
		for i, e := range p.arr {
			out[i] = e.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(p.obj))
		for k, v := range p.obj {
			out[k] = v.Interface()
		}
		return out
	}
	return nil
}
