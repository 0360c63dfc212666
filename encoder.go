package toon

import "strings"

// Encode walks v and emits canonical TOON text per spec.md section 4.3.
// It is fallible only on writer failure (none occur in this in-memory
// implementation; the error return exists so a future streaming writer
// can propagate an I/O error without breaking the signature).
func Encode(v Value, opts Options) (string, error) {
	opts = opts.normalized()
	e := &encoder{w: newWriter(), opts: opts}
	e.encodeRoot(v)
	return e.w.String(), nil
}

type encoder struct {
	w            *writer
	opts         Options
	foldDisabled bool
}

// withFoldDisabled returns an encoder that never attempts key folding,
// used beneath a field whose folded path collided with a sibling key
// (spec.md section 4.3: "folding is abandoned for that field and
// nested folding is disabled beneath it").
func (e *encoder) withFoldDisabled() *encoder {
	if e.foldDisabled {
		return e
	}
	clone := *e
	clone.foldDisabled = true
	return &clone
}

func (e *encoder) encodeRoot(v Value) {
	switch v.Kind() {
	case KindObject:
		fields := v.Fields()
		if len(fields) == 0 {
			// Empty root object is always "{0}:" so a round trip through
			// the decoder yields an empty object, not null (spec.md
			// section 4.3, section 8 boundary behaviors).
			e.w.line(0, "{0}:")
			return
		}
		e.encodeObjectFields(fields, 0)
	case KindArray:
		header, body := e.arrayHeaderAndBody("", v.Elements())
		e.w.line(0, header)
		if body != nil {
			body(e.opts.Indent)
		}
	default:
		e.w.line(0, formatPrimitive(v, e.opts.Delimiter))
	}
}

func (e *encoder) encodeObjectFields(fields []Pair, indent int) {
	siblings := make(map[string]bool, len(fields))
	for _, p := range fields {
		siblings[p.Key] = true
	}
	for _, p := range fields {
		e.encodeFieldWithFolding(p.Key, p.Value, indent, siblings)
	}
}

func (e *encoder) encodeFieldWithFolding(key string, v Value, indent int, siblings map[string]bool) {
	if !e.foldDisabled && e.opts.KeyFolding == KeyFoldingSafe && !keyNeedsQuotes(key) {
		chain, leaf := e.foldChain(key, v)
		if len(chain) > 1 {
			joined := strings.Join(chain, ".")
			if !siblings[joined] {
				e.encodeFoldedLeaf(joined, leaf, indent)
				return
			}
			// Collision with a sibling key at this level: abandon
			// folding for this field and everything beneath it.
			e.withFoldDisabled().encodeField(key, v, indent)
			return
		}
	}
	e.encodeField(key, v, indent)
}

// foldChain walks a chain of single-key objects starting at v, per
// spec.md section 4.3's key-folding rule: every segment after the
// first must itself be a valid unquoted key, and flattenDepth (if set)
// caps how many segments may be joined.
func (e *encoder) foldChain(key string, v Value) (chain []string, leaf Value) {
	chain = []string{key}
	leaf = v
	limit, hasLimit := e.opts.flattenLimit()
	for leaf.Kind() == KindObject && len(leaf.Fields()) == 1 {
		only := leaf.Fields()[0]
		if keyNeedsQuotes(only.Key) {
			break
		}
		if hasLimit && len(chain)+1 > limit {
			break
		}
		chain = append(chain, only.Key)
		leaf = only.Value
	}
	return chain, leaf
}

func (e *encoder) encodeField(key string, v Value, indent int) {
	header, body := e.keyedHeaderAndBody(key, v)
	e.w.line(indent, header)
	if body != nil {
		body(indent + e.opts.Indent)
	}
}

func (e *encoder) encodeFoldedLeaf(joined string, leaf Value, indent int) {
	header, body := e.headerAndBodyForKeyText(joined, leaf)
	e.w.line(indent, header)
	if body != nil {
		body(indent + e.opts.Indent)
	}
}

// keyedHeaderAndBody builds the header line text and (if any) the
// deferred body-writer for an object field, applying spec.md section
// 4.1's key-quoting rule to key.
func (e *encoder) keyedHeaderAndBody(key string, v Value) (string, func(int)) {
	return e.headerAndBodyForKeyText(formatKey(key), v)
}

// headerAndBodyForKeyText is keyedHeaderAndBody's core, parameterized
// on an already-formatted key text so folded dotted paths (which must
// not be re-escaped) share the same dispatch as ordinary keys.
func (e *encoder) headerAndBodyForKeyText(keyText string, v Value) (string, func(int)) {
	switch v.Kind() {
	case KindArray:
		return e.arrayHeaderAndBody(keyText, v.Elements())
	case KindObject:
		fields := v.Fields()
		if len(fields) == 0 {
			// Nested empty object is elided: the "key:" header line is
			// sufficient (spec.md section 4.3).
			return keyText + ":", nil
		}
		return keyText + ":", func(bodyIndent int) {
			e.encodeObjectFields(fields, bodyIndent)
		}
	default:
		return keyText + ": " + formatPrimitive(v, e.opts.Delimiter), nil
	}
}

type arrayForm int

const (
	arrayEmpty arrayForm = iota
	arrayTabular
	arrayInline
	arrayExpanded
)

// classifyArray chooses one of the three array forms per spec.md
// section 4.3's priority order: tabular, then inline-primitive, then
// expanded.
func (e *encoder) classifyArray(elems []Value) (arrayForm, []string) {
	if len(elems) == 0 {
		return arrayEmpty, nil
	}
	if fields, ok := tabularFields(elems); ok {
		return arrayTabular, fields
	}
	allPrimitive := true
	for _, el := range elems {
		if !el.isPrimitive() {
			allPrimitive = false
			break
		}
	}
	if allPrimitive {
		return arrayInline, nil
	}
	return arrayExpanded, nil
}

// tabularFields reports whether elems qualifies for tabular encoding:
// every element is an object with the same key set (order-insensitive)
// and every value at that level is a primitive. The first element's
// key order is used for the header (spec.md section 4.3).
func tabularFields(elems []Value) ([]string, bool) {
	first, ok := objectOfPrimitives(elems[0])
	if !ok {
		return nil, false
	}
	order := make([]string, 0, len(first.Fields()))
	keySet := make(map[string]bool, len(first.Fields()))
	for _, p := range first.Fields() {
		if keySet[p.Key] {
			return nil, false // duplicate key inside one row disqualifies tabular form
		}
		order = append(order, p.Key)
		keySet[p.Key] = true
	}
	for _, el := range elems {
		obj, ok := objectOfPrimitives(el)
		if !ok || len(obj.Fields()) != len(order) {
			return nil, false
		}
		seen := make(map[string]bool, len(order))
		for _, p := range obj.Fields() {
			if !keySet[p.Key] || seen[p.Key] {
				return nil, false
			}
			seen[p.Key] = true
		}
	}
	return order, true
}

func objectOfPrimitives(v Value) (Value, bool) {
	if v.Kind() != KindObject {
		return Value{}, false
	}
	for _, p := range v.Fields() {
		if !p.Value.isPrimitive() {
			return Value{}, false
		}
	}
	return v, true
}

// arrayHeaderAndBody builds the header text and deferred body-writer
// for an array value, with an optional key prefix ("" for a keyless
// array: root, or a bare list item). This is the single place that
// implements all three array forms plus the always-empty "[0]:" case,
// per spec.md section 4.3/4.1.
func (e *encoder) arrayHeaderAndBody(keyText string, elems []Value) (string, func(int)) {
	delim := e.opts.Delimiter
	form, fields := e.classifyArray(elems)
	switch form {
	case arrayEmpty:
		return keyText + formatBracketSegment(0, delim) + ":", nil
	case arrayTabular:
		header := keyText + formatBracketSegment(len(elems), delim) + formatFieldsSegment(fields, delim) + ":"
		return header, func(rowIndent int) {
			for _, el := range elems {
				e.writeTabularRow(rowIndent, fields, el)
			}
		}
	case arrayInline:
		return keyText + formatBracketSegment(len(elems), delim) + ": " + e.joinInlineCells(elems), nil
	default: // arrayExpanded
		header := keyText + formatBracketSegment(len(elems), delim) + ":"
		return header, func(itemIndent int) {
			for _, el := range elems {
				e.encodeListItem(itemIndent, el)
			}
		}
	}
}

func (e *encoder) writeTabularRow(rowIndent int, fields []string, obj Value) {
	cells := make([]string, len(fields))
	for i, f := range fields {
		val, _ := obj.Field(f)
		cells[i] = formatPrimitive(val, e.opts.Delimiter)
	}
	e.w.line(rowIndent, strings.Join(cells, string(e.opts.Delimiter.Rune())))
}

func (e *encoder) joinInlineCells(elems []Value) string {
	cells := make([]string, len(elems))
	for i, el := range elems {
		cells[i] = formatPrimitive(el, e.opts.Delimiter)
	}
	return strings.Join(cells, string(e.opts.Delimiter.Rune()))
}

// encodeListItem writes one element of an expanded-form array at
// itemIndent, per spec.md section 4.3's list-item rules: a primitive
// is "- value"; an empty object is a bare "-"; an object's first field
// shares the hyphen line with the remaining fields one indent level
// below the hyphen line, provided that field's own value can never be
// confused with a sibling field line.
//
// sharesHyphenLine is deliberately broader than spec.md's two named
// examples (a primitive, or a tabular array): an array's body lines are
// always ListItem-kind, which the parser can never mistake for a
// sibling KeyValue/KeyOnly line at the same indent, so any array form
// is safe to share the hyphen line, not just the tabular one. An empty
// object is safe too -- it contributes no body lines at all. A
// non-empty nested object is the one case that is NOT safe: its body
// is itself a run of KeyValue/KeyOnly lines at childIndent, which would
// be indistinguishable from the outer object's remaining sibling
// fields written at that same indent. For that one case the encoder
// falls back to a bare "-" and writes every field, including the
// first, starting at childIndent.
func (e *encoder) encodeListItem(itemIndent int, v Value) {
	switch {
	case v.isPrimitive():
		e.w.line(itemIndent, "- "+formatPrimitive(v, e.opts.Delimiter))
	case v.Kind() == KindArray:
		header, body := e.arrayHeaderAndBody("", v.Elements())
		e.w.line(itemIndent, "- "+header)
		if body != nil {
			body(itemIndent + e.opts.Indent)
		}
	default: // KindObject
		fields := v.Fields()
		if len(fields) == 0 {
			e.w.line(itemIndent, "-")
			return
		}
		first := fields[0]
		childIndent := itemIndent + e.opts.Indent
		if !e.sharesHyphenLine(first.Value) {
			e.w.line(itemIndent, "-")
			e.encodeObjectFields(fields, childIndent)
			return
		}
		header, body := e.keyedHeaderAndBody(first.Key, first.Value)
		e.w.line(itemIndent, "- "+header)
		if body != nil {
			body(childIndent)
		}
		e.encodeObjectFields(fields[1:], childIndent)
	}
}

func (e *encoder) sharesHyphenLine(v Value) bool {
	if v.isPrimitive() || v.Kind() == KindArray {
		return true
	}
	return v.Kind() == KindObject && len(v.Fields()) == 0
}
