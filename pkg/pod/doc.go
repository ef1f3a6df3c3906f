// Package pod defines the canonical dynamic value used between format
// engines and typed front matter structs.
//
// A [Pod] is a tagged union over the seven shapes every supported metadata
// syntax can produce: null, string, integer, float, boolean, array and
// mapping. Engines convert their native document trees into Pods once, at
// the engine boundary; everything downstream operates on Pods only.
//
// # Extraction
//
// Typed extraction is strict: AsString, AsInt64 and friends return the
// stored value only when the tag matches exactly, and a [*TypeError]
// naming the expected tag otherwise. Nothing is coerced or truncated.
//
//	p := pod.StringVal("hello")
//	s, err := p.AsString() // "hello", nil
//	_, err = p.AsInt64()   // *TypeError, expected "integer"
//
// # Decoding
//
// [Decode] converts a Pod into an arbitrary Go value directly, without
// re-encoding through any textual format:
//
//	type Meta struct {
//		Title string   `yaml:"title"`
//		Tags  []string `yaml:"tags"`
//	}
//
//	var meta Meta
//	if err := pod.Decode(p, &meta); err != nil { ... }
//
// Decoding is more permissive than extraction where the shape of the
// target type demands it: floats accept stored integers, pointers treat
// null as absent, and integer narrowing is checked rather than silent.
package pod
