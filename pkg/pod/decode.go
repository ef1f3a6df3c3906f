package pod

import (
	"reflect"
	"strings"
)

// Unmarshaler is implemented by types that decode themselves from a Pod.
// It is checked before any reflection-driven decoding.
type Unmarshaler interface {
	UnmarshalPod(p Pod) error
}

// VariantUnmarshaler is implemented by enum-like types. The bridge
// validates the enum shape (see [Pod.Enum]) and hands over the variant
// name and its raw payload.
type VariantUnmarshaler interface {
	UnmarshalVariant(name string, payload Pod) error
}

var podType = reflect.TypeOf(Pod{})

// Decode converts p into out, which must be a non-nil pointer. The
// conversion is direct: no intermediate textual encoding is produced, so
// numeric precision is preserved and each node is visited exactly once.
//
// Decoding rules:
//   - booleans, strings and integers require the matching tag; integer
//     narrowing that would overflow the target width fails instead of
//     truncating, and unsigned targets reject negative values
//   - float targets accept floats and integers
//   - pointer targets treat null as absent (the pointer is set to nil)
//   - slices and fixed-size arrays require an array tag; fixed arrays
//     additionally enforce exact arity; []byte accepts a string
//   - maps require string keys and a mapping tag; structs resolve fields
//     through `pod:` tags, then `yaml:`/`toml:`/`json:` tags, then the
//     field name (exact, then case-insensitive); unknown keys are ignored
//   - interface{} targets receive the canonical native rendering
func Decode(p Pod, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &DecodeError{Msg: "target must be a non-nil pointer"}
	}
	return decodeValue(p, rv.Elem())
}

// As decodes p into a fresh value of type T.
func As[T any](p Pod) (T, error) {
	var out T
	err := Decode(p, &out)
	return out, err
}

func decodeValue(p Pod, rv reflect.Value) error {
	if rv.CanAddr() {
		addr := rv.Addr().Interface()
		if u, ok := addr.(Unmarshaler); ok {
			return u.UnmarshalPod(p)
		}
		if vu, ok := addr.(VariantUnmarshaler); ok {
			access, err := p.Enum()
			if err != nil {
				return err
			}
			return vu.UnmarshalVariant(access.Variant(), access.Payload())
		}
	}

	if rv.Type() == podType {
		rv.Set(reflect.ValueOf(p))
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if p.IsNull() {
			rv.SetZero()
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(p, rv.Elem())

	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return decodeErrorf("cannot decode into non-empty interface %s", rv.Type())
		}
		if p.IsNull() {
			rv.SetZero()
			return nil
		}
		rv.Set(reflect.ValueOf(p.Interface()))
		return nil

	case reflect.Bool:
		b, err := p.AsBool()
		if err != nil {
			return err
		}
		rv.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := p.AsInt64()
		if err != nil {
			return err
		}
		if rv.OverflowInt(i) {
			return decodeErrorf("integer %d overflows %s", i, rv.Type())
		}
		rv.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := p.AsInt64()
		if err != nil {
			return err
		}
		if i < 0 {
			return decodeErrorf("cannot decode negative integer %d into %s", i, rv.Type())
		}
		if rv.OverflowUint(uint64(i)) {
			return decodeErrorf("integer %d overflows %s", i, rv.Type())
		}
		rv.SetUint(uint64(i))
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := p.floatValue()
		if err != nil {
			return err
		}
		if rv.OverflowFloat(f) {
			return decodeErrorf("float %v overflows %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil

	case reflect.String:
		s, err := p.AsString()
		if err != nil {
			return err
		}
		rv.SetString(s)
		return nil

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 && p.kind == KindString {
			b, err := p.Bytes()
			if err != nil {
				return err
			}
			rv.SetBytes(b)
			return nil
		}
		return decodeSlice(p, rv)

	case reflect.Array:
		return decodeArray(p, rv)

	case reflect.Map:
		return decodeMap(p, rv)

	case reflect.Struct:
		return decodeStruct(p, rv)
	}

	return decodeErrorf("unsupported target type %s", rv.Type())
}

// floatValue widens a stored integer into a float; floats pass through.
func (p Pod) floatValue() (float64, error) {
	switch p.kind {
	case KindFloat:
		return p.fnum, nil
	case KindInteger:
		return float64(p.num), nil
	}
	return 0, &TypeError{Expected: "float or integer", Actual: p.kind}
}

func decodeSlice(p Pod, rv reflect.Value) error {
	seq, err := p.Seq()
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(rv.Type(), 0, seq.Remaining())
	for {
		elem, ok := seq.Next()
		if !ok {
			break
		}
		ev := reflect.New(rv.Type().Elem()).Elem()
		if err := decodeValue(elem, ev); err != nil {
			return err
		}
		out = reflect.Append(out, ev)
	}
	rv.Set(out)
	return nil
}

func decodeArray(p Pod, rv reflect.Value) error {
	seq, err := p.Seq()
	if err != nil {
		return err
	}
	if seq.Remaining() != rv.Len() {
		return decodeErrorf("cannot decode array of %d elements into %s", seq.Remaining(), rv.Type())
	}
	for i := 0; i < rv.Len(); i++ {
		elem, _ := seq.Next()
		if err := decodeValue(elem, rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(p Pod, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return decodeErrorf("map keys must be strings, have %s", rv.Type().Key())
	}
	access, err := p.Map()
	if err != nil {
		return err
	}
	out := reflect.MakeMapWithSize(rv.Type(), access.Remaining())
	for {
		key, ok := access.NextKey()
		if !ok {
			break
		}
		val, err := access.NextValue()
		if err != nil {
			return err
		}
		ev := reflect.New(rv.Type().Elem()).Elem()
		if err := decodeValue(val, ev); err != nil {
			return err
		}
		kv := reflect.New(rv.Type().Key()).Elem()
		kv.SetString(key)
		out.SetMapIndex(kv, ev)
	}
	rv.Set(out)
	return nil
}

func decodeStruct(p Pod, rv reflect.Value) error {
	access, err := p.Map()
	if err != nil {
		return err
	}
	exact, folded := fieldIndex(rv.Type())
	for {
		key, ok := access.NextKey()
		if !ok {
			break
		}
		val, err := access.NextValue()
		if err != nil {
			return err
		}
		idx, ok := exact[key]
		if !ok {
			idx, ok = folded[strings.ToLower(key)]
		}
		if !ok {
			continue // unknown key
		}
		fv, err := fieldByIndex(rv, idx)
		if err != nil {
			return err
		}
		if err := decodeValue(val, fv); err != nil {
			return err
		}
	}
	return nil
}

// tag keys consulted for struct field names, in priority order. Accepting
// the format libraries' own tags lets one annotated struct work across
// every engine.
var fieldTags = [...]string{"pod", "yaml", "toml", "json"}

func fieldIndex(t reflect.Type) (exact, folded map[string][]int) {
	exact = make(map[string][]int)
	folded = make(map[string][]int)
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct && tagName(f) == "" {
			continue // container for promoted fields
		}
		name := tagName(f)
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if _, dup := exact[name]; !dup {
			exact[name] = f.Index
		}
		lower := strings.ToLower(name)
		if _, dup := folded[lower]; !dup {
			folded[lower] = f.Index
		}
	}
	return exact, folded
}

func tagName(f reflect.StructField) string {
	for _, key := range fieldTags {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		return name
	}
	return ""
}

// fieldByIndex walks an index path, allocating nil embedded pointers on
// the way.
func fieldByIndex(rv reflect.Value, idx []int) (reflect.Value, error) {
	for i, x := range idx {
		if i > 0 {
			if rv.Kind() == reflect.Pointer {
				if rv.IsNil() {
					rv.Set(reflect.New(rv.Type().Elem()))
				}
				rv = rv.Elem()
			}
		}
		rv = rv.Field(x)
	}
	return rv, nil
}
