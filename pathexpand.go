package toon

import "strings"

// expandPaths implements spec.md section 4.6's inverse of key folding:
// an object key containing unescaped "." segments, none of which came
// from an explicitly quoted token, expands into a chain of nested
// single-key objects which are then deep-merged into their parent.
// Grounded on the original decoder's path_expand.rs reference; ported
// here as a method so it shares the parser's strict-mode error sink
// for merge conflicts.
func (p *parser) expandPaths(v Value) Value {
	switch v.Kind() {
	case KindArray:
		elems := v.Elements()
		out := make([]Value, len(elems))
		for i, el := range elems {
			out[i] = p.expandPaths(el)
		}
		return ArrayOf(out)
	case KindObject:
		fields := v.Fields()
		expanded := make([]Pair, len(fields))
		for i, f := range fields {
			expanded[i] = Pair{Key: f.Key, Value: p.expandPaths(f.Value)}
		}
		return p.expandObjectFields(expanded)
	default:
		return v
	}
}

// expandObjectFields applies key folding's inverse to a single
// object's already-recursively-expanded fields: each key that
// should_expand_key approves is split on "." and deep-merged into the
// running result object, in field order (so a later conflicting key
// overwrites an earlier one's leaf, matching last-wins semantics).
func (p *parser) expandObjectFields(fields []Pair) Value {
	result := EmptyObject()
	for _, f := range fields {
		if !shouldExpandKey(f.Key) {
			result = p.deepMerge(result, ObjectOf([]Pair{{Key: stripQuotedKeyMarker(f.Key), Value: f.Value}}))
			continue
		}
		segments := strings.Split(f.Key, ".")
		nested := buildNestedFromSegments(segments, f.Value)
		result = p.deepMerge(result, nested)
	}
	return result
}

// shouldExpandKey reports whether key should be split into a nested
// path: it must contain an unescaped ".", have at least two segments,
// and every segment must be a valid bare identifier (so a quoted key
// -- marked with quotedKeyMarker by parseKeyToken -- or a segment with
// leading/trailing/double dots never expands).
func shouldExpandKey(key string) bool {
	if strings.ContainsRune(key, quotedKeyMarker) {
		return false
	}
	if !strings.Contains(key, ".") {
		return false
	}
	segments := strings.Split(key, ".")
	if len(segments) < 2 {
		return false
	}
	for _, seg := range segments {
		if !isValidIdentifierSegment(seg) {
			return false
		}
	}
	return true
}

// isValidIdentifierSegment matches spec.md section 4.1's bare-key
// grammar: [A-Za-z_][A-Za-z0-9_]*. Note this excludes '.' itself (a
// segment is what remains between dots), unlike the encoder's
// keyNeedsQuotes which allows '.' inside a whole key.
func isValidIdentifierSegment(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !(first == '_' || ('A' <= first && first <= 'Z') || ('a' <= first && first <= 'z')) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		isAlnum := ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
		if !isAlnum && c != '_' {
			return false
		}
	}
	return true
}

// buildNestedFromSegments builds the chain of single-key objects a
// dotted path expands into: ["a","b","c"], leaf -> {a: {b: {c: leaf}}}.
func buildNestedFromSegments(segments []string, leaf Value) Value {
	v := leaf
	for i := len(segments) - 1; i >= 0; i-- {
		v = ObjectOf([]Pair{{Key: segments[i], Value: v}})
	}
	return v
}

// deepMerge merges b's fields into a, recursing when both sides hold
// an object at the same key (so "a.b.c" and "a.b.d" expanding under
// the same parent combine rather than overwrite each other). A
// non-object/non-object collision at the same key is a strict-mode
// conflict; non-strict mode resolves it last-wins, matching the
// decoder's general duplicate-key policy (spec.md section 3/4.6).
func (p *parser) deepMerge(a, b Value) Value {
	if a.Kind() != KindObject || b.Kind() != KindObject {
		return b
	}
	result := make([]Pair, 0, len(a.Fields())+len(b.Fields()))
	result = append(result, a.Fields()...)
	for _, bp := range b.Fields() {
		merged := false
		for i, rp := range result {
			if rp.Key != bp.Key {
				continue
			}
			if rp.Value.Kind() == KindObject && bp.Value.Kind() == KindObject {
				result[i] = Pair{Key: rp.Key, Value: p.deepMerge(rp.Value, bp.Value)}
			} else {
				p.reportError(0, "conflicting expanded path at key %q", stripQuotedKeyMarker(bp.Key))
				result[i] = Pair{Key: rp.Key, Value: bp.Value}
			}
			merged = true
			break
		}
		if !merged {
			result = append(result, bp)
		}
	}
	return ObjectOf(result)
}

func stripQuotedKeyMarker(key string) string {
	return strings.TrimPrefix(key, string(quotedKeyMarker))
}

// stripQuotedKeyMarkers walks v removing the quoted-key marker from
// every object key without performing any path expansion, used when
// ExpandPaths is Off: callers still must not see the internal sentinel
// rune leak into a returned key (spec.md section 4.6).
func stripQuotedKeyMarkers(v Value) Value {
	switch v.Kind() {
	case KindArray:
		elems := v.Elements()
		out := make([]Value, len(elems))
		for i, el := range elems {
			out[i] = stripQuotedKeyMarkers(el)
		}
		return ArrayOf(out)
	case KindObject:
		fields := v.Fields()
		out := make([]Pair, len(fields))
		for i, f := range fields {
			out[i] = Pair{Key: stripQuotedKeyMarker(f.Key), Value: stripQuotedKeyMarkers(f.Value)}
		}
		return ObjectOf(out)
	default:
		return v
	}
}
