// Package sanitize cleans raw submitted values before they are validated and
// stored.
//
// Sanitizers never fail: they always return a usable value, falling back to an
// empty one when the input cannot be cleaned. Markup is removed with a
// bluemonday strict policy, so sanitized text is plain text; escaping for
// output remains the job of whatever renders it.
//
// Sanitizers can be chained with Compose or applied ad hoc with Apply:
//
//	clean := sanitize.Compose(sanitize.Text, sanitize.Func(strings.ToUpper))
//	value := clean.Sanitize("  <b>hello</b> ") // "HELLO"
package sanitize
