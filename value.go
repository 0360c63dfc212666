package toon

// Kind is the tag of the six-variant Value sum described in spec.md
// section 3.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// NumberKind distinguishes the three Number representations. I64/U64
// preserve full 64-bit integer precision that a generic float parse
// would lose; F64 holds everything else. See spec.md section 9 ("Number
// semantics").
type NumberKind int

const (
	NumberI64 NumberKind = iota
	NumberU64
	NumberF64
)

// Number is one of I64(signed 64-bit), U64(unsigned 64-bit), or
// F64(finite double). F64 never holds NaN or +/-Inf: the Float64
// constructor maps non-finite doubles to Null instead of a Number (spec.md
// section 3 invariants).
type Number struct {
	Kind NumberKind
	I64  int64
	U64  uint64
	F64  float64
}

func NumberFromInt64(v int64) Number   { return Number{Kind: NumberI64, I64: v} }
func NumberFromUint64(v uint64) Number { return Number{Kind: NumberU64, U64: v} }

// NumberFromFloat64 stores a finite double. Non-finite values are the
// caller's responsibility to filter (spec.md section 3); this
// constructor substitutes 0 and reports ok=false instead of silently
// storing a NaN/Inf, so a programmer error here is never mistaken for
// JSON's actual null.
func NumberFromFloat64(v float64) (n Number, ok bool) {
	if v != v || v > maxFiniteFloat || v < -maxFiniteFloat {
		return Number{}, false
	}
	return Number{Kind: NumberF64, F64: v}, true
}

const maxFiniteFloat = 1.7976931348623157e+308

// Pair is one (key, value) entry of an Object, in insertion order.
type Pair struct {
	Key   string
	Value Value
}

// Value is the tagged sum spec.md section 3 describes: Null, Bool,
// Number, String, Array, Object. Objects and arrays preserve
// insertion/declaration order; duplicate object keys are resolved
// last-wins by the decoder and never produced by the encoder.
type Value struct {
	kind   Kind
	b      bool
	num    Number
	str    string
	arr    []Value
	fields []Pair
}

// Null is the zero Value.
func Null() Value { return Value{kind: KindNull} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func FromNumber(n Number) Value { return Value{kind: KindNumber, num: n} }

func Int64(v int64) Value { return Value{kind: KindNumber, num: NumberFromInt64(v)} }

func Uint64(v uint64) Value { return Value{kind: KindNumber, num: NumberFromUint64(v)} }

// Float64 stores v as a Number, mapping non-finite values to Null per
// spec.md section 3's invariant that Number::F64 never holds NaN/Inf.
func Float64(v float64) Value {
	if n, ok := NumberFromFloat64(v); ok {
		return Value{kind: KindNumber, num: n}
	}
	return Null()
}

func Str(s string) Value { return Value{kind: KindString, str: s} }

// ArrayOf builds an Array value from a slice, copying it so later
// mutation of elems does not alias the Value.
func ArrayOf(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

// EmptyArray returns a zero-length Array value.
func EmptyArray() Value { return Value{kind: KindArray, arr: []Value{}} }

// ObjectOf builds an Object from ordered pairs, copying the slice.
// Later pairs with a duplicate key overwrite earlier ones in the
// returned value's lookup, matching the decoder's last-wins rule, but
// the ordered field list keeps every entry (spec.md section 3 says the
// encoder never produces duplicates and the decoder never de-duplicates
// the positional record, only last-wins on lookup).
func ObjectOf(pairs []Pair) Value {
	cp := make([]Pair, len(pairs))
	copy(cp, pairs)
	return Value{kind: KindObject, fields: cp}
}

// EmptyObject returns a zero-field Object value.
func EmptyObject() Value { return Value{kind: KindObject, fields: []Pair{}} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload; ok is false if Kind() != KindBool.
func (v Value) AsBool() (val bool, ok bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsNumber() (val Number, ok bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) AsString() (val string, ok bool) {
	return v.str, v.kind == KindString
}

// Elements returns the array payload. The caller must not mutate the
// returned slice; it aliases the Value's storage.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Fields returns the object's ordered (key, value) pairs. The caller
// must not mutate the returned slice.
func (v Value) Fields() []Pair {
	if v.kind != KindObject {
		return nil
	}
	return v.fields
}

// Field looks up a key by last-wins semantics (a later pair with the
// same key shadows an earlier one), matching the decoder's duplicate
// handling (spec.md section 3).
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	found := false
	var result Value
	for _, p := range v.fields {
		if p.Key == key {
			result = p.Value
			found = true
		}
	}
	return result, found
}

// Len returns the element/field count for Array and Object, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// isPrimitive reports whether v is Null, Bool, Number, or String --
// the leaf kinds the encoder can place directly on a "key: value" or
// tabular-cell line (spec.md section 4.3/4.1).
func (v Value) isPrimitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindNumber, KindString:
		return true
	default:
		return false
	}
}

// Equal reports deep structural equality: same Kind, and recursively
// equal payloads. Two Number values of different NumberKind compare
// unequal even if numerically identical (e.g. I64(1) != U64(1)),
// mirroring exact round-trip equality rather than numeric equality.
// An integer-valued F64 is encoded without a fractional part and so
// decodes as I64 (or U64), which compares unequal to the original F64.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Key != other.fields[i].Key || !v.fields[i].Value.Equal(other.fields[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
