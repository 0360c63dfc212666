package toon

import (
	"strconv"
	"strings"
)

// isControl reports whether r is a C0 control character or DEL, per
// spec.md section 4.1.
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}

// looksLikeLiteral reports whether s, if left unquoted, would be
// indistinguishable from true/false/null or a number (spec.md
// section 4.1's needsQuotes rule).
func looksLikeLiteral(s string) bool {
	switch s {
	case "true", "false", "null":
		return true
	}
	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if body == "" {
		return false
	}
	_, err := strconv.ParseFloat(body, 64)
	return err == nil
}

// needsQuotes implements spec.md section 4.1's needs_quotes(s, delim).
func needsQuotes(s string, delim Delimiter) bool {
	if s == "" {
		return true
	}
	if s == "-" || strings.HasPrefix(s, "-") {
		return true
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return true
	}
	if strings.ContainsRune(s, delim.Rune()) {
		return true
	}
	if strings.ContainsAny(s, ":[]{}\"\\") {
		return true
	}
	for _, r := range s {
		if isControl(r) {
			return true
		}
	}
	return looksLikeLiteral(s)
}

// escapeAndQuote implements spec.md section 4.1's escape_and_quote(s).
func escapeAndQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if isControl(r) {
				b.WriteString("\\u")
				b.WriteString(padHex4(uint32(r)))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func padHex4(v uint32) string {
	const hex = "0123456789ABCDEF"
	out := [4]byte{hex[0], hex[0], hex[0], hex[0]}
	for i := 3; i >= 0 && v > 0; i-- {
		out[i] = hex[v&0xF]
		v >>= 4
	}
	return string(out[:])
}

// formatString implements spec.md section 4.1's format_string.
func formatString(s string, delim Delimiter) string {
	if needsQuotes(s, delim) {
		return escapeAndQuote(s)
	}
	return s
}

// keyNeedsQuotes implements the key grammar of spec.md section 4.1:
// a key may be unquoted iff it matches [A-Za-z_][A-Za-z0-9_.]*.
func keyNeedsQuotes(s string) bool {
	if s == "" {
		return true
	}
	first := s[0]
	if !(first == '_' || ('A' <= first && first <= 'Z') || ('a' <= first && first <= 'z')) {
		return true
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		isAlnum := ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
		if !isAlnum && c != '_' && c != '.' {
			return true
		}
	}
	return false
}

// formatKey implements spec.md section 4.1's format_key.
func formatKey(s string) string {
	if keyNeedsQuotes(s) {
		return escapeAndQuote(s)
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

const formatNull = "null"

// canonicalFloat implements spec.md section 4.1's number
// canonicalization for a finite double: no exponent, no trailing
// fractional zeros, single leading zero, -0 normalized to 0, and an
// integer-valued finite double round-trips as an integer literal when
// it fits. strconv.FormatFloat(f, 'f', -1, 64) already produces the
// shortest round-tripping decimal in fixed-point notation with no
// exponent, so only trailing-zero trimming and -0 remain (see
// SPEC_FULL.md section C.2 for why this isn't a
// reimplementation of the original's manual exponent expansion).
func canonicalFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		end := len(s)
		for end > dot+1 && s[end-1] == '0' {
			end--
		}
		if end == dot+1 {
			end = dot
		}
		s = s[:end]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// formatNumber renders a Number in canonical form per spec.md section
// 4.1/4.3.
func formatNumber(n Number) string {
	switch n.Kind {
	case NumberI64:
		return strconv.FormatInt(n.I64, 10)
	case NumberU64:
		return strconv.FormatUint(n.U64, 10)
	default:
		return canonicalFloat(n.F64)
	}
}

// formatPrimitive renders any primitive Value as its canonical scalar
// token; a string is quoted when needsQuotes requires it under delim.
func formatPrimitive(v Value, delim Delimiter) string {
	switch v.Kind() {
	case KindNull:
		return formatNull
	case KindBool:
		b, _ := v.AsBool()
		return formatBool(b)
	case KindNumber:
		n, _ := v.AsNumber()
		return formatNumber(n)
	case KindString:
		s, _ := v.AsString()
		return formatString(s, delim)
	default:
		return ""
	}
}

// formatBracketSegment implements spec.md section 4.1: "[N]" for comma,
// "[N<d>]" otherwise.
func formatBracketSegment(n int, delim Delimiter) string {
	if sym, ok := delim.headerSymbol(); ok {
		return "[" + strconv.Itoa(n) + string(sym) + "]"
	}
	return "[" + strconv.Itoa(n) + "]"
}

// formatFieldsSegment implements the "{field1<d>field2<d>...}" part of
// a tabular header.
func formatFieldsSegment(fields []string, delim Delimiter) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteRune(delim.Rune())
		}
		b.WriteString(formatKey(f))
	}
	b.WriteByte('}')
	return b.String()
}
