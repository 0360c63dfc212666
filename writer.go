package toon

import "strings"

// writer is the stateful line buffer spec.md section 4.2 describes: it
// accumulates output with an indent cache (a prebuilt run of spaces,
// grown on demand) so repeated indentation at the same depth never
// re-allocates. Each operation writes indent, then content, then a
// single LF; String trims the final trailing LF from the finished
// output, since "the final line has no trailing LF; all others do"
// (spec.md section 6).
type writer struct {
	buf    strings.Builder
	indent []byte // cache of spaces, grown on demand
}

func newWriter() *writer {
	w := &writer{}
	w.indent = make([]byte, 0, 64)
	return w
}

// spaces returns a byte slice of n space characters, growing the cache
// if needed. The returned slice aliases the cache and must not be
// retained past the next call.
func (w *writer) spaces(n int) []byte {
	if n > len(w.indent) {
		grown := make([]byte, n)
		for i := range grown {
			grown[i] = ' '
		}
		w.indent = grown
	}
	return w.indent[:n]
}

func (w *writer) line(indent int, text string) {
	w.buf.Write(w.spaces(indent))
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
}

// lineKV writes "key: value\n" -- exactly one space after the colon,
// per spec.md section 6's wire format.
func (w *writer) lineKV(indent int, key, value string) {
	w.buf.Write(w.spaces(indent))
	w.buf.WriteString(key)
	w.buf.WriteString(": ")
	w.buf.WriteString(value)
	w.buf.WriteByte('\n')
}

// lineKeyOnly writes "key:\n" -- no trailing space before the LF.
func (w *writer) lineKeyOnly(indent int, key string) {
	w.buf.Write(w.spaces(indent))
	w.buf.WriteString(key)
	w.buf.WriteString(":\n")
}

// lineListItem writes "- text\n".
func (w *writer) lineListItem(indent int, text string) {
	w.buf.Write(w.spaces(indent))
	w.buf.WriteString("- ")
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
}

// lineBareHyphen writes "-\n" for a keyless list-item parent with a
// nested block to follow.
func (w *writer) lineBareHyphen(indent int) {
	w.buf.Write(w.spaces(indent))
	w.buf.WriteString("-\n")
}

// String returns the accumulated output with the single trailing LF
// stripped, so the last line carries no terminator (spec.md section 6).
func (w *writer) String() string {
	s := w.buf.String()
	return strings.TrimSuffix(s, "\n")
}
