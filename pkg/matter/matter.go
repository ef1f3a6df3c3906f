package matter

import (
	"strings"
	"unicode"

	"github.com/thoreinstein/graymatter/pkg/engine"
	"github.com/thoreinstein/graymatter/pkg/pod"
)

// DefaultDelimiter is the delimiter used by New.
const DefaultDelimiter = "---"

// Matter holds the delimiter configuration and the format engine used to
// parse detected front matter.
type Matter struct {
	// Delimiter opens the front matter block. A document starts a block
	// only when its first line equals Delimiter after trailing-whitespace
	// trimming.
	Delimiter string

	// CloseDelimiter closes the block. Empty means "same as Delimiter".
	CloseDelimiter string

	// ExcerptDelimiter separates the excerpt from the body. Empty means
	// "same as Delimiter". Unlike the close delimiter it is matched as a
	// line suffix, so it may share a line with trailing excerpt text.
	ExcerptDelimiter string

	engine engine.Engine
}

// New returns a Matter using eng with the default "---" delimiter.
func New(eng engine.Engine) *Matter {
	return &Matter{Delimiter: DefaultDelimiter, engine: eng}
}

// Result is the outcome of a parse. No field ever reports an error: absent
// and malformed front matter are indistinguishable here by design.
type Result[D any] struct {
	// Data holds the decoded front matter, or nil when none was found or
	// it could not be decoded.
	Data *D

	// Content is the full input with the front matter block and its
	// delimiters stripped. Any excerpt is part of Content.
	Content string

	// Excerpt is non-nil only when an excerpt boundary was found. It may
	// point at an empty string.
	Excerpt *string

	// Orig is the untouched input.
	Orig string

	// Matter is the trimmed raw text of the front matter block, empty
	// when none was found.
	Matter string
}

// Parse scans input and returns the front matter as a Pod.
//
// The scanner itself never fails: engine errors and empty blocks yield a
// result with nil Data.
func (m *Matter) Parse(input string) Result[pod.Pod] {
	res, _ := m.scan(input)
	return res
}

// ParseAs scans input and decodes the front matter into D. Decode
// failures degrade to nil Data like every other absence.
func ParseAs[D any](m *Matter, input string) Result[D] {
	res, _ := ParseAsStrict[D](m, input)
	return res
}

// ParseAsStrict is ParseAs for callers who need to distinguish "no front
// matter" from "front matter present but unusable": when a block was
// found but the engine or the decode step rejected it, the error is
// returned alongside the partial result. A document without front matter
// returns a nil error.
func ParseAsStrict[D any](m *Matter, input string) (Result[D], error) {
	raw, err := m.scan(input)
	res := Result[D]{
		Content: raw.Content,
		Excerpt: raw.Excerpt,
		Orig:    raw.Orig,
		Matter:  raw.Matter,
	}
	if err != nil {
		return res, err
	}
	if raw.Data == nil {
		return res, nil
	}
	var d D
	if err := pod.Decode(*raw.Data, &d); err != nil {
		return res, err
	}
	res.Data = &d
	return res, nil
}

type scanState int

const (
	inMatter scanState = iota
	maybeExcerpt
	inContent
)

// scan runs the delimiter state machine. The returned error is the engine
// failure for a detected-but-unparseable block; the Result is complete
// either way.
func (m *Matter) scan(input string) (Result[pod.Pod], error) {
	res := Result[pod.Pod]{Orig: input}

	// Fast reject: nothing shorter than the open delimiter plus a line
	// break can contain front matter, an excerpt or content boundaries.
	if input == "" || len(input) <= len(m.Delimiter) {
		return res, nil
	}

	closeDelim := m.CloseDelimiter
	if closeDelim == "" {
		closeDelim = m.Delimiter
	}
	excerptDelim := m.ExcerptDelimiter
	if excerptDelim == "" {
		excerptDelim = m.Delimiter
	}

	var lines []string
	state := maybeExcerpt
	if first, rest, ok := strings.Cut(input, "\n"); ok && trimTrailing(first) == m.Delimiter {
		state = inMatter
		lines = splitLines(rest)
	} else {
		lines = splitLines(input)
	}

	var acc strings.Builder
	var engineErr error
	for _, line := range lines {
		trimmed := trimTrailing(line)
		switch state {
		case inMatter:
			// Only a whole line equal to a delimiter closes the block, so
			// delimiter look-alikes inside quoted values never match.
			if trimmed == m.Delimiter || trimmed == closeDelim {
				raw := strings.TrimSpace(acc.String())
				if raw != "" {
					res.Matter = raw
					p, err := m.engine.Parse(raw)
					switch {
					case err != nil:
						engineErr = err
					case !p.IsNull():
						res.Data = &p
					}
				}
				acc.Reset()
				state = maybeExcerpt
				continue
			}

		case maybeExcerpt:
			// Suffix match: the excerpt delimiter may share its line with
			// trailing excerpt text.
			if strings.HasSuffix(trimmed, excerptDelim) {
				prefix := strings.TrimSuffix(trimmed, excerptDelim)
				excerpt := strings.TrimLeft(acc.String(), "\n") + "\n" + prefix
				excerpt = strings.TrimLeft(trimTrailing(excerpt), "\n")
				res.Excerpt = &excerpt
				state = inContent
			}

		case inContent:
			// Lines identical to a delimiter are ordinary content now.
		}

		acc.WriteByte('\n')
		acc.WriteString(line)
	}

	res.Content = strings.TrimLeft(acc.String(), "\n")
	return res, engineErr
}

// splitLines splits on '\n', dropping the trailing empty segment a final
// newline produces and stripping one '\r' from each line end.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
