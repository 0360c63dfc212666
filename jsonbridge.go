package toon

import (
	"encoding/json"
	"fmt"
)

// FromJSON converts a tree produced by encoding/json.Unmarshal (into
// an `any`) into a Value, per spec.md section 6's notion of a "value
// interface the core consumes from the embedder" -- encoding/json is
// the embedder here; no third-party JSON library appears anywhere in
// the example corpus, so this boundary is justified as standard
// library (see DESIGN.md).
func FromJSON(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		return numberFromJSONNumber(t)
	case float64:
		return Float64(t), nil
	case []any:
		elems := make([]Value, len(t))
		for i, el := range t {
			cv, err := FromJSON(el)
			if err != nil {
				return Value{}, err
			}
			elems[i] = cv
		}
		return ArrayOf(elems), nil
	case map[string]any:
		pairs := make([]Pair, 0, len(t))
		for k, el := range t {
			cv, err := FromJSON(el)
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: k, Value: cv})
		}
		return ObjectOf(pairs), nil
	default:
		return Value{}, fmt.Errorf("toon: unsupported JSON value of type %T", v)
	}
}

func numberFromJSONNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int64(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("toon: invalid JSON number %q: %w", n.String(), err)
	}
	return Float64(f), nil
}

// ToJSON converts a Value into the plain Go values encoding/json knows
// how to marshal (map[string]any/[]any/string/bool/nil and int64,
// uint64, or float64 for Number), the inverse of FromJSON.
func ToJSON(v Value) any {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		b, _ := v.AsBool()
		return b
	case KindNumber:
		n, _ := v.AsNumber()
		switch n.Kind {
		case NumberI64:
			return n.I64
		case NumberU64:
			return n.U64
		default:
			return n.F64
		}
	case KindString:
		s, _ := v.AsString()
		return s
	case KindArray:
		elems := v.Elements()
		out := make([]any, len(elems))
		for i, el := range elems {
			out[i] = ToJSON(el)
		}
		return out
	case KindObject:
		fields := v.Fields()
		out := make(map[string]any, len(fields))
		for _, p := range fields {
			out[p.Key] = ToJSON(p.Value)
		}
		return out
	default:
		return nil
	}
}
