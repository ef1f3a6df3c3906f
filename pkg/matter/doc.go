// Package matter extracts delimited front matter from the head of a text
// document and splits the remainder into body content and an optional
// excerpt.
//
// A document looks like this:
//
//	---
//	title: My post
//	tags: [a, b]
//	---
//	A short excerpt.
//	---
//	The rest of the document.
//
// The block between the first pair of delimiter lines is handed to a
// format [engine.Engine] and surfaces as a [pod.Pod] (or, via [ParseAs],
// as any Go type). Front matter is optional by nature of the format:
// missing, malformed and mis-shaped metadata all degrade to a nil Data
// field, never to an error. [ParseAsStrict] exists for callers who need to
// tell those cases apart.
//
//	m := matter.New(engine.YAML{})
//	result := matter.ParseAs[Meta](m, input)
//	if result.Data != nil {
//		fmt.Println(result.Data.Title)
//	}
//	fmt.Println(result.Content)
//
// Delimiters are configurable: Delimiter opens the block (default "---"),
// CloseDelimiter closes it (defaults to Delimiter, enabling asymmetric
// pairs such as "<!--" and "-->"), and ExcerptDelimiter separates the
// excerpt from the body (defaults to Delimiter). A Matter value must not
// be mutated while a parse is in flight; distinct values are independent
// and safe to use from separate goroutines.
package matter
