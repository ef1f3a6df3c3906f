// Package engine provides the format adapters that turn raw front matter
// text into the canonical [pod.Pod] value.
//
// Each engine owns the full translation for one metadata syntax, including
// syntax-specific concerns such as comment handling and the
// stringification of non-string mapping keys. Engines are stateless; a
// single instance can be shared freely.
package engine

import "github.com/thoreinstein/graymatter/pkg/pod"

// Engine parses one concrete metadata syntax into a Pod.
//
// A parse failure means the text is not valid in the engine's syntax; the
// scanner converts such failures into "no metadata found". An engine that
// parses an empty or comment-only block successfully should return the
// null Pod.
type Engine interface {
	Parse(raw string) (pod.Pod, error)
}
